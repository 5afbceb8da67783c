package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/sokinpui/codegen/cli"
	"github.com/sokinpui/codegen/codegen"
	"github.com/sokinpui/codegen/internal/app"
	"github.com/sokinpui/codegen/internal/source"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the binary and returns its exit code: 0 on success, 1 when
// the file could not be written or read or is out of date, 2 on usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := cli.ParseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	a := app.New(cfg, stdin, stdout, stderr)
	_, err = a.Run()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, source.ErrNoSource):
		a.Printer().Error("Error: %v", err)
		return exitUsage
	case errors.Is(err, codegen.ErrMismatch):
		// The diff is already on stderr.
		a.Printer().Error("%v", err)
	default:
		a.Printer().Error("Error: %v", err)
		var detailed *app.DetailedError
		if errors.As(err, &detailed) {
			fmt.Fprintf(stderr, "%s\n", detailed.Stack)
		}
	}
	return exitFail
}
