// Where: internal/app/whoami.go
// What: The whoami command.
// Why: Let users confirm which principal a profile resolves to.
package app

import (
	"context"
	"errors"
	"io"

	"github.com/stsenv/stsenv/internal/ui"
)

func runWhoami(cli CLI, deps Dependencies, out, errOut io.Writer) int {
	if deps.Whoami.Fetch == nil {
		return exitWithError(errOut, errors.New("identity lookup is not available"))
	}

	id, err := deps.Whoami.Fetch(context.Background(), cli.Whoami.Profile)
	if err != nil {
		return exitWithError(errOut, err)
	}

	console := ui.New(out)
	console.Header("👤", "Caller identity:")
	console.Item("Account", id.Account)
	console.Item("Arn", id.Arn)
	console.Item("UserId", id.UserID)
	return 0
}
