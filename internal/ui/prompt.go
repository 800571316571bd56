package ui

import (
	"bufio"
	"os"
	"strings"
)

// Prompt asks for a line of input, returning defaultValue when the user just
// presses enter.
func Prompt(label, defaultValue string) string {
	reader := bufio.NewReader(os.Stdin)
	if defaultValue != "" {
		Printf("%s [%s]: ", label, defaultValue)
	} else {
		Printf("%s: ", label)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue
	}
	return input
}
