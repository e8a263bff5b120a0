package main

import (
	"os"

	"github.com/acorn-io/tagval/cli/pkg/cmds"
)

func main() {
	t := &cmds.TagVal{}
	if err := t.Execute(cmds.NewRoot(t)); err != nil {
		os.Exit(1)
	}
}
