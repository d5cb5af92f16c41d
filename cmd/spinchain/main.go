// cmd/spinchain/main.go
package main

import (
	"os"

	"github.com/katalvlaran/spinchain/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
