package shell

import (
	_ "embed"
	"io"
)

//go:embed helptext/rules.txt
var rulesText string

func usage(w io.Writer) {
	io.WriteString(w, rulesText)
}
