package main

import (
	"os"

	"github.com/yoiioy700/stablecoin-sdk-go/cmd/sss/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
