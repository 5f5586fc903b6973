package main

import (
	"os"

	"github.com/satlayer/satlayer-bvs/bvs-crypto/cli/cmd"
)

func main() {
	if err := cmd.Cmd().Execute(); err != nil {
		os.Exit(1)
	}
}
