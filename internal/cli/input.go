package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// test seam
var readPassword = term.ReadPassword

// GetPassword prompts on stderr and reads a password without echo.
func (a *App) GetPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	pwd, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return pwd, nil
}

// GetSimpleText prompts on stderr and reads one line from stdin.
func (a *App) GetSimpleText(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
