package main

import (
	"github.com/neuroflow/neuroflow-cli/internal/cli"
)

func main() {
	cli.Execute()
}
