// Command amta runs programs written in the small scripting language
// implemented under internal/.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/amta/cmd/amta/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
