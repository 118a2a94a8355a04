package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// prompter asks line-based questions on an input/output pair. When
// interactive is false every question silently takes its default.
type prompter struct {
	reader      *bufio.Reader
	w           io.Writer
	interactive bool
}

func newPrompter(r io.Reader, w io.Writer, interactive bool) *prompter {
	return &prompter{reader: bufio.NewReader(r), w: w, interactive: interactive}
}

// readLine reads one answer. End of input counts as a blank answer, and a
// final line without a newline is accepted.
func (p *prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ask prints label, shows def when non-empty, and returns the trimmed answer
// or def when the answer is blank.
func (p *prompter) ask(label, def string) (string, error) {
	if !p.interactive {
		return def, nil
	}

	if def != "" {
		fmt.Fprintf(p.w, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.w, "%s: ", label)
	}

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// confirm asks a yes/no question.
func (p *prompter) confirm(label string, def bool) (bool, error) {
	if !p.interactive {
		return def, nil
	}

	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(p.w, "%s [%s]: ", label, hint)

	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q: enter y or n", answer)
	}
}
