package main

import (
	"fmt"

	"github.com/GongyiChuren/docsift"
)

// Run executes the mode command.
func (c *ModeCmd) Run(deps *Dependencies) error {
	mode := deps.Policy.Mode()
	fmt.Fprintf(deps.Stdout, "Mode: %s\n", mode)

	if mode != docsift.ModeWhitelist {
		return nil
	}

	for _, host := range deps.Policy.Whitelist() {
		fmt.Fprintf(deps.Stdout, "  %s\n", host)
	}
	return nil
}
