package main

import (
	"os"

	"github.com/pgen-dev/pgen/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
