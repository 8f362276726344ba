// Apiforge - a production-ready FastAPI project generator
package main

import (
	"os"

	"github.com/HartBrook/apiforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
