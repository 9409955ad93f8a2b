package main

import (
	"os"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
