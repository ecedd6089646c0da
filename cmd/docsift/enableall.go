package main

import (
	"fmt"

	"github.com/GongyiChuren/docsift"
)

// Run executes the enable-all command.
func (c *EnableAllCmd) Run(deps *Dependencies) error {
	if err := deps.Policy.EnableAll(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Discovery runs on every host. The whitelist is kept for later.")
	return nil
}
