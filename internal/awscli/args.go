// Where: internal/awscli/args.go
// What: Argument construction for the AWS CLI sts subcommands.
// Why: The token ordering is a compatibility contract with the aws argument parser.
package awscli

import (
	"github.com/stsenv/stsenv/internal/resolve"
)

// DefaultBinary is the external credential tool invoked by the runner.
const DefaultBinary = "aws"

// DefaultSessionName is the role session name used when the global config
// does not override it.
const DefaultSessionName = "stsenv-session"

// Arguments serializes a resolved request into the ordered argument list for
// the AWS CLI. Pure function; the ordering below must not change.
func Arguments(req resolve.Request, sessionName string) []string {
	if sessionName == "" {
		sessionName = DefaultSessionName
	}

	var args []string
	if req.SourceProfile != "" {
		args = append(args, "--profile", req.SourceProfile)
	}
	args = append(args, "sts")

	switch op := req.Op.(type) {
	case resolve.AssumeRole:
		args = append(args, "assume-role",
			"--role-arn", op.RoleArn,
			"--role-session-name", sessionName)
		if op.ExternalID != "" {
			// Historical spelling; the consumer expects the underscore.
			args = append(args, "--external_id", op.ExternalID)
		}
		args = appendMFA(args, op.MFA)
	case resolve.GetSessionToken:
		args = append(args, "get-session-token")
		args = appendMFA(args, op.MFA)
	}
	return args
}

func appendMFA(args []string, mfa *resolve.MFAChallenge) []string {
	if mfa == nil {
		return args
	}
	return append(args, "--serial-number", mfa.Serial, "--token-code", mfa.Code)
}
