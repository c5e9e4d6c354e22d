// Where: internal/resolve/resolve.go
// What: Resolution of profile names or explicit role parameters into credential requests.
// Why: Keep the branching logic deterministic and testable behind narrow ports.
package resolve

import (
	"errors"
	"fmt"
)

// Profile keys recognized in the AWS config file.
const (
	keySourceProfile = "source_profile"
	keyRoleArn       = "role_arn"
	keyMFASerial     = "mfa_serial"
)

// ErrRoleArnRequired is returned when the explicit-parameter path is taken
// without a role ARN.
var ErrRoleArnRequired = errors.New("a role ARN is required when no profile is given")

// Store looks up a profile by name and returns its key/value pairs.
type Store interface {
	Lookup(name string) (map[string]string, error)
}

// Prompter reads a secret line from the user given a prompt label.
type Prompter interface {
	Secret(label string) (string, error)
}

// MFAChallenge pairs an MFA device serial with a one-time code.
type MFAChallenge struct {
	Serial string
	Code   string
}

// Operation is the credential-issuing operation to delegate to the AWS CLI.
// Exactly one of AssumeRole or GetSessionToken is active per request.
type Operation interface {
	isOperation()
}

// AssumeRole exchanges identity plus a target role for temporary credentials.
type AssumeRole struct {
	RoleArn    string
	ExternalID string
	MFA        *MFAChallenge
}

// GetSessionToken exchanges identity for temporary credentials with the
// caller's own permissions.
type GetSessionToken struct {
	MFA *MFAChallenge
}

func (AssumeRole) isOperation()      {}
func (GetSessionToken) isOperation() {}

// Request is a fully resolved credential request. Immutable once constructed.
type Request struct {
	SourceProfile string
	Op            Operation
}

// Resolver turns profile names into requests, consulting the store and
// prompting for an MFA code when the profile declares a device serial.
type Resolver struct {
	Store    Store
	Prompter Prompter
}

// FromProfile resolves a named profile into a request. The MFA prompt, when
// triggered, happens here and at most once.
func (r Resolver) FromProfile(name string) (Request, error) {
	props, err := r.Store.Lookup(name)
	if err != nil {
		return Request{}, err
	}
	return r.fromProperties(props)
}

func (r Resolver) fromProperties(props map[string]string) (Request, error) {
	var mfa *MFAChallenge
	if serial := props[keyMFASerial]; serial != "" {
		code, err := r.Prompter.Secret("MFA token: ")
		if err != nil {
			return Request{}, fmt.Errorf("read MFA code: %w", err)
		}
		mfa = &MFAChallenge{Serial: serial, Code: code}
	}

	if arn := props[keyRoleArn]; arn != "" {
		return Request{
			SourceProfile: props[keySourceProfile],
			Op:            AssumeRole{RoleArn: arn, MFA: mfa},
		}, nil
	}
	return Request{
		SourceProfile: props[keySourceProfile],
		Op:            GetSessionToken{MFA: mfa},
	}, nil
}

// FromRole builds a request from explicit CLI parameters. This path never
// prompts: there is no profile-declared MFA serial to resolve.
func FromRole(sourceProfile, roleArn, externalID string) (Request, error) {
	if roleArn == "" {
		return Request{}, ErrRoleArnRequired
	}
	return Request{
		SourceProfile: sourceProfile,
		Op:            AssumeRole{RoleArn: roleArn, ExternalID: externalID},
	}, nil
}
