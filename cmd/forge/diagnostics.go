package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/banksean/forge/internal/runtag"
)

var fatalColor = color.New(color.FgRed, color.Bold)

// printFatal writes a colorized, human-readable echo of a fatal diagnostic
// to stderr for an interactive terminal. The diagnostic itself is always
// recorded through slog.Error by the caller (so it lands in the configured
// log sink, file or otherwise); this is purely the TTY-friendly companion,
// a no-op when stderr isn't a terminal.
func printFatal(msg string) {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return
	}
	fatalColor.Fprintf(os.Stderr, "Error: %s\n", msg)
}

func printDiagnostic(msg string) {
	fmt.Println(msg)
}

type runTagKey struct{}

// withRunTag attaches a run's correlation tag to ctx so target bodies and
// telemetry spans can read it back with runTagFromContext.
func withRunTag(ctx context.Context, tag runtag.Tag) context.Context {
	return context.WithValue(ctx, runTagKey{}, tag)
}

func runTagFromContext(ctx context.Context) (runtag.Tag, bool) {
	tag, ok := ctx.Value(runTagKey{}).(runtag.Tag)
	return tag, ok
}
