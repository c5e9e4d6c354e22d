// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/stsenv/stsenv/internal/awscli"
	"github.com/stsenv/stsenv/internal/config"
	"github.com/stsenv/stsenv/internal/creds"
	"github.com/stsenv/stsenv/internal/identity"
	"github.com/stsenv/stsenv/internal/resolve"
	"github.com/stsenv/stsenv/internal/version"
)

// VerifyFunc checks freshly issued credentials by resolving their identity.
type VerifyFunc func(ctx context.Context, c creds.Credentials) (identity.Identity, error)

// FetchFunc resolves the caller identity of a shared-config profile.
type FetchFunc func(ctx context.Context, profile string) (identity.Identity, error)

// AuthDeps holds the collaborators of the auth command.
type AuthDeps struct {
	Runner awscli.CommandRunner
	Verify VerifyFunc
}

// WhoamiDeps holds the collaborators of the whoami command.
type WhoamiDeps struct {
	Fetch FetchFunc
}

// Dependencies holds all injected dependencies required for CLI command
// execution. Every collaborator is a narrow port so handlers can be tested
// with fakes.
type Dependencies struct {
	Out      io.Writer
	Err      io.Writer
	Store    resolve.Store
	Prompter resolve.Prompter
	Profiles func() ([]string, error)
	Select   func(title string, options []string) (string, error)
	Config   func() config.GlobalConfig
	Auth     AuthDeps
	Whoami   WhoamiDeps
}

// CLI defines the command-line interface structure parsed by Kong. Auth is
// the default command, so `stsenv <profile>` works without a subcommand word.
type CLI struct {
	Auth    AuthCmd    `cmd:"" default:"withargs" help:"Resolve a profile and print temporary credentials as shell exports"`
	Whoami  WhoamiCmd  `cmd:"" help:"Print the caller identity for a profile"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type AuthCmd struct {
	Profile       string `arg:"" optional:"" help:"Profile to assume"`
	SourceProfile string `name:"source-profile" help:"The source profile to assume from"`
	RoleArn       string `name:"role-arn" help:"A specific role ARN to assume"`
	ExternalID    string `name:"external-id" help:"An external ID to use when assuming a specific ARN"`
	Verify        bool   `help:"Check the returned credentials with a caller-identity call"`
	Template      string `help:"Render credentials through a custom template instead of export lines"`
}

type WhoamiCmd struct {
	Profile string `arg:"" optional:"" help:"Profile to inspect (default: ambient credentials)"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution. It parses the
// command-line arguments and dispatches to the matching handler. Returns 0
// on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := deps.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.LoadGlobalConfigOrDefault
	}

	cli := CLI{}
	parser, err := kong.New(&cli, kong.Name("stsenv"),
		kong.Description("Print temporary AWS credentials as shell exports."))
	if err != nil {
		return exitWithError(errOut, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(errOut, err)
	}

	command := ctx.Command()
	switch {
	case command == "version":
		fmt.Fprintln(out, version.GetVersion())
		return 0
	case command == "whoami" || strings.HasPrefix(command, "whoami "):
		return runWhoami(cli, deps, out, errOut)
	case command == "auth" || strings.HasPrefix(command, "auth "):
		return runAuth(cli, deps, out, errOut)
	}

	fmt.Fprintln(errOut, "unknown command")
	return 1
}

func exitWithError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "Error: %s\n", err)
	return 1
}
