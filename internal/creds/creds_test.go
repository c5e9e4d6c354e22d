// Where: internal/creds/creds_test.go
// What: Tests for response decoding and rendering.
// Why: Shape violations must fail loudly, and export output is consumed verbatim by shells.
package creds

import (
	"errors"
	"strings"
	"testing"
)

func TestParseAndExportsRoundTrip(t *testing.T) {
	output := []byte(`{"Credentials":{"AccessKeyId":"AK","SecretAccessKey":"SK","SessionToken":"ST"}}`)

	c, err := Parse(output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "export AWS_ACCESS_KEY_ID='AK'\n" +
		"export AWS_SECRET_ACCESS_KEY='SK'\n" +
		"export AWS_SESSION_TOKEN='ST'"
	if got := c.Exports(); got != want {
		t.Fatalf("unexpected exports:\ngot  %q\nwant %q", got, want)
	}
}

func TestParseIgnoresExtraFields(t *testing.T) {
	output := []byte(`{"Credentials":{"AccessKeyId":"AK","SecretAccessKey":"SK","SessionToken":"ST","Expiration":"2026-01-01T00:00:00Z"},"AssumedRoleUser":{"Arn":"arn:x"}}`)

	c, err := Parse(output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.AccessKeyID != "AK" {
		t.Fatalf("unexpected access key: %q", c.AccessKeyID)
	}
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := Parse([]byte("not json"))
	var unexpected *UnexpectedOutputError
	if !errors.As(err, &unexpected) {
		t.Fatalf("expected UnexpectedOutputError, got %v", err)
	}
}

func TestParseMissingField(t *testing.T) {
	_, err := Parse([]byte(`{"Credentials":{"AccessKeyId":"AK","SecretAccessKey":"SK"}}`))
	var unexpected *UnexpectedOutputError
	if !errors.As(err, &unexpected) {
		t.Fatalf("expected UnexpectedOutputError, got %v", err)
	}
}

func TestParseWrongType(t *testing.T) {
	_, err := Parse([]byte(`{"Credentials":{"AccessKeyId":42,"SecretAccessKey":"SK","SessionToken":"ST"}}`))
	var unexpected *UnexpectedOutputError
	if !errors.As(err, &unexpected) {
		t.Fatalf("expected UnexpectedOutputError, got %v", err)
	}
}

func TestParseMissingCredentialsObject(t *testing.T) {
	_, err := Parse([]byte(`{}`))
	var unexpected *UnexpectedOutputError
	if !errors.As(err, &unexpected) {
		t.Fatalf("expected UnexpectedOutputError, got %v", err)
	}
}

func TestRenderTemplate(t *testing.T) {
	c := Credentials{AccessKeyID: "AK", SecretAccessKey: "SK", SessionToken: "ST"}

	got, err := c.Render(`set -x AWS_ACCESS_KEY_ID {{ .AccessKeyID }}; set -x AWS_SESSION_TOKEN {{ .SessionToken }}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "set -x AWS_ACCESS_KEY_ID AK; set -x AWS_SESSION_TOKEN ST" {
		t.Fatalf("unexpected rendering: %q", got)
	}
}

func TestRenderTemplateSprigFuncs(t *testing.T) {
	c := Credentials{AccessKeyID: "akia", SecretAccessKey: "SK", SessionToken: "ST"}

	got, err := c.Render(`{{ .AccessKeyID | upper }}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "AKIA" {
		t.Fatalf("unexpected rendering: %q", got)
	}
}

func TestRenderTemplateParseError(t *testing.T) {
	c := Credentials{}

	_, err := c.Render(`{{ .AccessKeyID`)
	if err == nil || !strings.Contains(err.Error(), "parse output template") {
		t.Fatalf("expected parse error, got %v", err)
	}
}
