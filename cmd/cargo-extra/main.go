package main

import (
	"log"
	"os"

	"github.com/nightconcept/cargo-extra-go/internal/cli/app"
)

var version = "v0.1.0"

func main() {
	if err := app.New(version).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
