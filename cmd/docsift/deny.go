package main

import (
	"fmt"

	"github.com/GongyiChuren/docsift"
)

// Run executes the deny command.
func (c *DenyCmd) Run(deps *Dependencies) error {
	if err := deps.Policy.DisableHost(deps.Ctx, c.Host); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %s from the whitelist\n", c.Host)
	if deps.Policy.Mode() == docsift.ModeAll {
		fmt.Fprintln(deps.Stdout, "Whitelist is empty; discovery runs on every host.")
	}
	return nil
}
