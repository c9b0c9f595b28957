package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/atelierhq/atelier/cmd/cli/commands"
)

func main() {
	// A .env file is optional; env vars win either way
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
