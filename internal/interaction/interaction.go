// Where: internal/interaction/interaction.go
// What: Interactive primitives for prompts and TTY detection.
// Why: Keep terminal side effects out of the resolution logic.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// LinePrompter reads one line from In after writing the label to Err. The
// label goes to the diagnostic stream so stdout stays clean for shell eval.
type LinePrompter struct {
	In  io.Reader
	Err io.Writer
}

// Secret prompts for a secret value and returns the trimmed input line.
func (p LinePrompter) Secret(label string) (string, error) {
	fmt.Fprint(p.Err, label)
	reader := bufio.NewReader(p.In)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
