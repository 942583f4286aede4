package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/drawguide"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	resp, err := deps.Service.Search(deps.Ctx, drawguide.SearchQuery{
		Text:  strings.Join(c.Query, " "),
		Limit: c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", drawguide.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps, resp)
	}

	if len(resp.Results) == 0 {
		fmt.Fprintf(deps.Stdout, "No guides found for %q.\n", resp.Metadata.Query)
		return nil
	}

	for i, r := range resp.Results {
		fmt.Fprintf(deps.Stdout, "%d. %s\n   %s\n", i+1, r.Title, r.URL)
	}
	return nil
}

// writeJSON prints v as indented JSON on stdout.
func writeJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
