// Where: cmd/stsenv/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/stsenv/stsenv/internal/app"
	"github.com/stsenv/stsenv/internal/awscli"
	"github.com/stsenv/stsenv/internal/identity"
	"github.com/stsenv/stsenv/internal/interaction"
	"github.com/stsenv/stsenv/internal/profile"
)

var profilePath = profile.DefaultPath

// buildDependencies constructs all runtime dependencies required by the CLI:
// the profile store over the AWS config file, the stderr/stdin prompter, the
// process runner for the credential tool, and the STS identity fetchers.
func buildDependencies() (app.Dependencies, error) {
	configPath, err := profilePath()
	if err != nil {
		return app.Dependencies{}, err
	}

	store := profile.Store{Path: configPath}
	deps := app.Dependencies{
		Out:      os.Stdout,
		Err:      os.Stderr,
		Store:    store,
		Prompter: interaction.LinePrompter{In: os.Stdin, Err: os.Stderr},
		Profiles: store.Names,
		Select:   interaction.Select,
		Auth: app.AuthDeps{
			Runner: awscli.ExecRunner{},
			Verify: identity.FromCredentials,
		},
		Whoami: app.WhoamiDeps{
			Fetch: identity.FromProfile,
		},
	}

	return deps, nil
}
