package main

import (
	"io"
	"log"
	"os"

	"github.com/vatsal3003/image-resize/internal/resize"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	cmd := newRootCommand(logger)
	// A nil slice would make cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		logger.Println("ERROR", resize.Describe(err))
		return 1
	}

	return 0
}
