package main

import (
	"github.com/NVIDIA/speedlog/pkg/cli"
)

func main() {
	cli.Execute()
}
