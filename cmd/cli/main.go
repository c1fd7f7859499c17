package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/vk/modkit/internal/cli"
)

// Version is set via -ldflags.
var Version = "dev"

// main is the entrypoint for the modkit application.
func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// run executes the command tree for args, writing to the given streams.
func run(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := cli.NewRootCmd()
	root.SetArgs(args)
	root.SetOut(outW)
	root.SetErr(errW)

	return fang.Execute(
		ctx,
		root,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	)
}
