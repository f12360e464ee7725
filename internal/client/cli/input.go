package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a seam for terminal password input.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt and reads one line of user input.
func GetSimpleText(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Println(prompt)
	fmt.Print("> ")

	text, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && text != "" {
			return strings.TrimSpace(text), nil
		}
		return "", err
	}

	return strings.TrimSpace(text), nil
}

// GetPassword reads the gesture passphrase without echoing it to the
// terminal. The caller owns the returned bytes and should wipe them.
func GetPassword() ([]byte, error) {
	fmt.Print("Enter gesture passphrase: ")

	password, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return password, nil
}
