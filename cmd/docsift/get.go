package main

import (
	"fmt"

	"github.com/GongyiChuren/docsift"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	path, err := deps.Downloader.Download(deps.Ctx, c.URL)
	if err == nil {
		fmt.Fprintf(deps.Stdout, "Saved %s\n", path)
		return nil
	}

	// Expired or unreachable links fall back to a visible browser so the
	// user can still get at the document through the page itself.
	if docsift.ErrorCode(err) == docsift.EUNAVAILABLE && deps.OpenURL != nil {
		fmt.Fprintf(deps.Stdout, "Direct download failed; opening %s in the browser.\n", docsift.DisplayName(c.URL))
		if openErr := deps.OpenURL(deps.Ctx, c.URL); openErr != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(openErr))
			return openErr
		}
		return nil
	}

	fmt.Fprintf(deps.Stderr, "error: %s\n", docsift.ErrorMessage(err))
	return err
}
