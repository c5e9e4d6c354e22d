// Where: internal/profile/store.go
// What: Profile lookup over the AWS shared config file.
// Why: Present the INI file as a flat key/value store to the resolver.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// NotFoundError reports a profile name absent from the config file.
type NotFoundError struct {
	Name string
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found in %s", e.Name, e.Path)
}

// ReadError reports an unreadable or malformed config file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unable to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Store reads profiles from an AWS config file. Named profiles live in
// "profile <name>" sections; the default profile lives in "default".
type Store struct {
	Path string
}

// DefaultPath returns the AWS config file location: AWS_CONFIG_FILE when set,
// otherwise ~/.aws/config.
func DefaultPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv("AWS_CONFIG_FILE")); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".aws", "config"), nil
}

// Lookup returns the key/value pairs of the named profile.
func (s Store) Lookup(name string) (map[string]string, error) {
	cfg, err := ini.Load(s.Path)
	if err != nil {
		return nil, &ReadError{Path: s.Path, Err: err}
	}

	section, err := cfg.GetSection(sectionName(name))
	if err != nil {
		return nil, &NotFoundError{Name: name, Path: s.Path}
	}
	return section.KeysHash(), nil
}

// Names lists the profile names present in the config file. A missing file
// yields an empty list, not an error; listing is advisory.
func (s Store) Names() ([]string, error) {
	cfg, err := ini.Load(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &ReadError{Path: s.Path, Err: err}
	}

	var names []string
	for _, section := range cfg.SectionStrings() {
		if section == "default" {
			names = append(names, section)
			continue
		}
		if name, ok := strings.CutPrefix(section, "profile "); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

func sectionName(name string) string {
	// The AWS CLI spells the default section without the "profile " prefix.
	if name == "default" {
		return "default"
	}
	return "profile " + name
}
