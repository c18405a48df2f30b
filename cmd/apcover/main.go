// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/katalvlaran/apcover/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
