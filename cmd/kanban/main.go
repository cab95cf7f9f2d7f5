// Command kanban shows a ticket feed as a terminal kanban board.
package main

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/kanban/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
