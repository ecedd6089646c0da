package main

import (
	"fmt"

	"github.com/GongyiChuren/docsift"
)

// Run executes the allow command.
func (c *AllowCmd) Run(deps *Dependencies) error {
	if err := deps.Policy.EnableHost(deps.Ctx, c.Host); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Whitelisted %s (whitelist mode)\n", c.Host)
	return nil
}
