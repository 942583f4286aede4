package main

import (
	"fmt"

	"github.com/fwojciec/drawguide"
)

// Run executes the categories command.
func (c *CategoriesCmd) Run(deps *Dependencies) error {
	list, err := deps.Service.ListCategories(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", drawguide.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps, list)
	}

	fmt.Fprintln(deps.Stdout, "Categories:")
	for _, name := range list.Categories {
		fmt.Fprintf(deps.Stdout, "  - %s\n", name)
	}
	fmt.Fprintln(deps.Stdout, "\nPopular search terms:")
	for _, term := range list.SuggestedTerms {
		fmt.Fprintf(deps.Stdout, "  - %s\n", term)
	}
	return nil
}
