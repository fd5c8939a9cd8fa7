package main

import (
	"github.com/docchat-labs/docchat-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
