// Command hfcache provides a CLI for inspecting the local Hugging Face cache.
package main

import (
	"os"

	"github.com/meigma/hfcache/cmd/hfcache/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
