package main

import (
	"fmt"
	"os"

	"controldeck/internal/app"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "control deck failed to start: %v\n", err)
		os.Exit(1)
	}
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "control deck failed: %v\n", err)
		os.Exit(1)
	}
}
