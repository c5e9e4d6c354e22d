// Where: internal/creds/creds.go
// What: Decoding and rendering of the credential tool's JSON response.
// Why: Validate the shape up front so failures name the violation instead of printing empty exports.
package creds

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// UnexpectedOutputError reports tool output that does not decode into the
// expected credentials shape.
type UnexpectedOutputError struct {
	Err error
}

func (e *UnexpectedOutputError) Error() string {
	return fmt.Sprintf("unexpected output from credential tool: %v", e.Err)
}

func (e *UnexpectedOutputError) Unwrap() error { return e.Err }

// Credentials is one set of short-lived credentials. Never persisted; it
// exists only for the duration of a single invocation.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

type response struct {
	Credentials struct {
		AccessKeyId     string
		SecretAccessKey string
		SessionToken    string
	}
}

// Parse validates and decodes the raw stdout of the credential tool.
func Parse(output []byte) (Credentials, error) {
	var document any
	if err := json.Unmarshal(output, &document); err != nil {
		return Credentials{}, &UnexpectedOutputError{Err: err}
	}

	sch, err := loadSchema()
	if err != nil {
		return Credentials{}, err
	}
	if err := sch.Validate(document); err != nil {
		return Credentials{}, &UnexpectedOutputError{Err: err}
	}

	var resp response
	if err := json.Unmarshal(output, &resp); err != nil {
		return Credentials{}, &UnexpectedOutputError{Err: err}
	}
	return Credentials{
		AccessKeyID:     resp.Credentials.AccessKeyId,
		SecretAccessKey: resp.Credentials.SecretAccessKey,
		SessionToken:    resp.Credentials.SessionToken,
	}, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("credentials.schema.json", strings.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("credentials.schema.json")
	})
	return compiledSchema, schemaErr
}

// Exports renders the credentials as three POSIX shell export lines, one per
// field, with no trailing blank line. Intended for shell evaluation.
func (c Credentials) Exports() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "export AWS_ACCESS_KEY_ID='%s'\n", c.AccessKeyID)
	fmt.Fprintf(&buf, "export AWS_SECRET_ACCESS_KEY='%s'\n", c.SecretAccessKey)
	fmt.Fprintf(&buf, "export AWS_SESSION_TOKEN='%s'", c.SessionToken)
	return buf.String()
}
