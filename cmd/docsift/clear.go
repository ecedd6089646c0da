package main

import (
	"fmt"

	"github.com/GongyiChuren/docsift"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if err := deps.Policy.ClearWhitelist(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Whitelist cleared; discovery runs on every host.")
	return nil
}
