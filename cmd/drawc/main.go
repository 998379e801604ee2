package main

import (
	"fmt"
	"os"

	"github.com/msto63/drawlang/cmd/drawc/cmd"
	mdwerror "github.com/msto63/drawlang/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "drawc: %v\n", err)
		os.Exit(mdwerror.GetCode(err).ExitCode())
	}
}
