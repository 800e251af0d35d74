package main

import (
	"os"

	"github.com/samaTech-sys/Predictive-Policing-Advisory/pkg/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
