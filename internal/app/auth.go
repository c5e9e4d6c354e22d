// Where: internal/app/auth.go
// What: The auth command: resolve, invoke the credential tool, print exports.
// Why: Orchestrate the single resolve→execute→parse→print cycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/stsenv/stsenv/internal/awscli"
	"github.com/stsenv/stsenv/internal/creds"
	"github.com/stsenv/stsenv/internal/interaction"
	"github.com/stsenv/stsenv/internal/resolve"
	"github.com/stsenv/stsenv/internal/ui"
)

var errProfileOrRoleRequired = errors.New("a profile name or --role-arn is required")

func runAuth(cli CLI, deps Dependencies, out, errOut io.Writer) int {
	a := cli.Auth

	// The two input paths are mutually exclusive at the boundary.
	if a.Profile != "" && (a.RoleArn != "" || a.ExternalID != "" || a.SourceProfile != "") {
		return exitWithError(errOut, errors.New(
			"a profile name cannot be combined with --role-arn, --external-id, or --source-profile"))
	}
	if a.ExternalID != "" && a.RoleArn == "" {
		return exitWithError(errOut, errors.New("--external-id requires --role-arn"))
	}

	profileName := a.Profile
	if profileName == "" && a.RoleArn == "" {
		name, err := pickProfile(deps)
		if err != nil {
			return exitWithError(errOut, err)
		}
		profileName = name
	}

	var req resolve.Request
	var err error
	if profileName != "" {
		resolver := resolve.Resolver{Store: deps.Store, Prompter: deps.Prompter}
		req, err = resolver.FromProfile(profileName)
	} else {
		req, err = resolve.FromRole(a.SourceProfile, a.RoleArn, a.ExternalID)
	}
	if err != nil {
		return exitWithError(errOut, err)
	}

	if deps.Auth.Runner == nil {
		return exitWithError(errOut, errors.New("credential tool runner is not configured"))
	}

	cfg := deps.Config()
	binary := cfg.Binary
	if binary == "" {
		binary = awscli.DefaultBinary
	}
	args := awscli.Arguments(req, cfg.SessionName)

	ctx := context.Background()
	output, err := deps.Auth.Runner.Output(ctx, binary, args...)
	if err != nil {
		return exitWithError(errOut, err)
	}

	c, err := creds.Parse(output)
	if err != nil {
		return exitWithError(errOut, err)
	}

	if a.Verify {
		if deps.Auth.Verify == nil {
			return exitWithError(errOut, errors.New("credential verification is not available"))
		}
		id, err := deps.Auth.Verify(ctx, c)
		if err != nil {
			return exitWithError(errOut, fmt.Errorf("credential verification failed: %w", err))
		}
		ui.New(errOut).Success(fmt.Sprintf("Credentials verified as %s", id.Arn))
	}

	rendered := c.Exports()
	if text := outputTemplate(a, cfg.Template); text != "" {
		rendered, err = c.Render(text)
		if err != nil {
			return exitWithError(errOut, err)
		}
	}
	fmt.Fprintln(out, rendered)
	return 0
}

func outputTemplate(a AuthCmd, configured string) string {
	if a.Template != "" {
		return a.Template
	}
	return configured
}

// pickProfile offers an interactive profile choice when stsenv runs without
// arguments on a terminal. Anywhere else the missing input is an error.
func pickProfile(deps Dependencies) (string, error) {
	if deps.Profiles == nil || deps.Select == nil {
		return "", errProfileOrRoleRequired
	}
	if !interaction.IsTerminal(os.Stdin) || !interaction.IsTerminal(os.Stderr) {
		return "", errProfileOrRoleRequired
	}

	names, err := deps.Profiles()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", errProfileOrRoleRequired
	}
	return deps.Select("Choose a profile", names)
}
