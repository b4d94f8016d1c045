package ux

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks a yes/no question on the given reader/writer pair and
// returns the default on empty or failed input.
func Confirm(r io.Reader, w io.Writer, message string, defaultYes bool) bool {
	suffix := " (y/N): "
	if defaultYes {
		suffix = " (Y/n): "
	}
	fmt.Fprint(w, message+suffix)

	response, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		return defaultYes
	}

	response = strings.ToLower(strings.TrimSpace(response))
	if response == "" {
		return defaultYes
	}
	return response == "y" || response == "yes"
}
