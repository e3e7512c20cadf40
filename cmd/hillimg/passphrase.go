// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

var errPassphraseMismatch = errors.New("passphrases do not match")

// readPassphrase prompts on stderr and reads without echo when stdin is a
// terminal, asking twice. Piped input is read as a single line.
func (a *app) readPassphrase(prompt string) ([]byte, error) {
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pw1, err := a.readPassword(f, prompt)
		if err != nil {
			return nil, err
		}
		pw2, err := a.readPassword(f, "Confirm "+strings.ToLower(prompt))
		if err != nil {
			return nil, err
		}
		if string(pw1) != string(pw2) {
			return nil, errPassphraseMismatch
		}
		return pw1, nil
	}

	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("read passphrase: %w", err)
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

func (a *app) readPassword(f *os.File, prompt string) ([]byte, error) {
	fmt.Fprint(a.stderr, prompt)
	pw, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(a.stderr)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
