package main

import (
	"os"

	"github.com/flarebyte/hello/cmd/hello/root"
)

func main() {
	// Exit status stays 0 on every path; write failures are logged by root.
	_ = root.Execute(os.Args[1:])
}
