// Command somaselect applies point and range selections to SOMA dimensions.
package main

import (
	"fmt"
	"os"

	"github.com/hugr-lab/soma-go/internal/cli"
	"github.com/hugr-lab/soma-go/internal/wire"
)

func main() {
	err := cli.NewRootCommand().Execute()
	_ = wire.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
