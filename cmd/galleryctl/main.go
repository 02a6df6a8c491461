package main

import (
	"os"

	"gallery-backend/cmd/galleryctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
