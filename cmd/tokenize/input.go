package main

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
)

// forEachInput calls fn once with the joined arguments, or once per line of
// standard input when there are none.
func forEachInput(cmd *cobra.Command, args []string, fn func(text string) error) error {
	if len(args) > 0 {
		return fn(strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
