package main

import (
	"log"

	"rental-backend/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Fatalf("rental-backend: %v", err)
	}
}
