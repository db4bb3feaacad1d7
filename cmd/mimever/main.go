package main

import (
	"github.com/zostay/go-mimeversion/cmd/mimever/cmd"

	// decode encoded words in any charset a message might use
	_ "github.com/zostay/go-mimeversion/header/encoding"
)

func main() {
	cmd.Execute()
}
