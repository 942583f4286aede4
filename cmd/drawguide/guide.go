package main

import (
	"fmt"

	"github.com/fwojciec/drawguide"
)

// Run executes the guide command.
func (c *GuideCmd) Run(deps *Dependencies) error {
	guide, err := deps.Service.GetGuide(deps.Ctx, drawguide.GuideRequest{URL: c.URL})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", drawguide.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps, guide)
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\n", guide.Title)
	fmt.Fprintf(deps.Stdout, "Source: %s\nURL: %s\n\n", guide.Source, guide.URL)
	if guide.Content == "" {
		fmt.Fprintln(deps.Stdout, "(no content)")
		return nil
	}
	fmt.Fprintln(deps.Stdout, guide.Content)
	return nil
}
