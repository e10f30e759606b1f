// Command culebra is the Culebra language toolchain: a lexer/parser/
// interpreter/compiler pipeline selectable by mode flag, built on the
// cobra/pflag stack (with mousetrap pulled in transitively for Windows
// double-click detection).
package main

import (
	"fmt"
	"os"

	"github.com/cnexans/culebra/cmd/culebra/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
