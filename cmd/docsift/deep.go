package main

import (
	"fmt"

	"github.com/GongyiChuren/docsift"
	"github.com/GongyiChuren/docsift/harvest"
)

// Run executes the deep command.
func (c *DeepCmd) Run(deps *Dependencies) error {
	on, err := harvest.TogglePreference(deps.Ctx, deps.Settings)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		return err
	}

	if on {
		fmt.Fprintln(deps.Stdout, "Deep discovery on: watch sessions intercept requests and follow DOM changes.")
	} else {
		fmt.Fprintln(deps.Stdout, "Deep discovery off.")
	}
	return nil
}
