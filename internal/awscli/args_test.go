// Where: internal/awscli/args_test.go
// What: Tests for argument construction.
// Why: The token ordering is load-bearing; lock it down.
package awscli

import (
	"reflect"
	"testing"

	"github.com/stsenv/stsenv/internal/resolve"
)

func TestArgumentsAssumeRoleFull(t *testing.T) {
	req := resolve.Request{
		SourceProfile: "base",
		Op: resolve.AssumeRole{
			RoleArn: "arn:aws:iam::123:role/dev",
			MFA:     &resolve.MFAChallenge{Serial: "arn:aws:iam::123:mfa/me", Code: "123456"},
		},
	}

	got := Arguments(req, "stsenv-session")
	want := []string{
		"--profile", "base",
		"sts", "assume-role",
		"--role-arn", "arn:aws:iam::123:role/dev",
		"--role-session-name", "stsenv-session",
		"--serial-number", "arn:aws:iam::123:mfa/me",
		"--token-code", "123456",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected arguments:\ngot  %v\nwant %v", got, want)
	}
}

func TestArgumentsExplicitRoleWithExternalID(t *testing.T) {
	req, err := resolve.FromRole("", "arn:x", "eid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := Arguments(req, "")
	want := []string{
		"sts", "assume-role",
		"--role-arn", "arn:x",
		"--role-session-name", DefaultSessionName,
		"--external_id", "eid",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected arguments:\ngot  %v\nwant %v", got, want)
	}
}

func TestArgumentsGetSessionToken(t *testing.T) {
	req := resolve.Request{Op: resolve.GetSessionToken{}}

	got := Arguments(req, "stsenv-session")
	want := []string{"sts", "get-session-token"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected arguments:\ngot  %v\nwant %v", got, want)
	}
}

func TestArgumentsGetSessionTokenWithMFA(t *testing.T) {
	req := resolve.Request{
		SourceProfile: "base",
		Op: resolve.GetSessionToken{
			MFA: &resolve.MFAChallenge{Serial: "serial", Code: "000000"},
		},
	}

	got := Arguments(req, "stsenv-session")
	want := []string{
		"--profile", "base",
		"sts", "get-session-token",
		"--serial-number", "serial",
		"--token-code", "000000",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected arguments:\ngot  %v\nwant %v", got, want)
	}
}

func TestArgumentsSourceProfileLeads(t *testing.T) {
	with := Arguments(resolve.Request{SourceProfile: "base", Op: resolve.GetSessionToken{}}, "s")
	if with[0] != "--profile" || with[1] != "base" {
		t.Fatalf("source profile must lead the sequence, got %v", with)
	}

	without := Arguments(resolve.Request{Op: resolve.GetSessionToken{}}, "s")
	if without[0] != "sts" {
		t.Fatalf("sequence must begin with sts when no source profile, got %v", without)
	}
}

func TestArgumentsIsPure(t *testing.T) {
	req := resolve.Request{
		SourceProfile: "base",
		Op:            resolve.AssumeRole{RoleArn: "arn:x", ExternalID: "eid"},
	}

	first := Arguments(req, "name")
	second := Arguments(req, "name")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical requests must produce identical sequences:\n%v\n%v", first, second)
	}
}
