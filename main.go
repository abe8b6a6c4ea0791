package main

import (
	"github.com/biosecret/go-crud/cmd"
)

func main() {
	// setup and run app
	cmd.Execute()
}
