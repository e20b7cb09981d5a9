// Command forge is the build orchestrator's driver: it registers the demo
// debug config and link/build targets from targets.go (the same pair the engine's source lineage ships
// as its own smoke test), then executes whatever target names are given on
// the command line, in order.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"

	"github.com/banksean/forge/internal/build"
	"github.com/banksean/forge/internal/config"
	"github.com/banksean/forge/internal/runtag"
	"github.com/banksean/forge/internal/telemetry"
	"github.com/banksean/forge/internal/version"
)

// CLI is forge's flag/argument surface: a config file plus logging/tracing
// overrides, and the ordered list of targets to run.
type CLI struct {
	Config       string `default:".forge.yaml" help:"path to the engine config file"`
	LogFile      string `help:"write logs to this file instead of stderr"`
	LogLevel     string `env:"FORGE_LOG_LEVEL" help:"debug|info|warn|error"`
	OTLPEndpoint string `env:"FORGE_OTLP_ENDPOINT" help:"OTLP/gRPC collector endpoint for target execution traces"`
	Version      bool   `help:"print version information and exit"`

	Targets []string `arg:"" optional:"" help:"names of targets to execute, in order"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("forge"),
		kong.Description("A self-contained build orchestrator: register targets and configs in Go, then run them by name."),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return int(build.ExitStdlibFailure)
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return int(build.ExitStdlibFailure)
	}

	if cli.Version {
		printVersion()
		return int(build.ExitSuccess)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return int(build.ExitStdlibFailure)
	}
	if cli.LogFile != "" {
		cfg.LogFile = cli.LogFile
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.OTLPEndpoint != "" {
		cfg.OTLPEndpoint = cli.OTLPEndpoint
	}

	if err := telemetry.InitLogging(cfg.LogFile, cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return int(build.ExitStdlibFailure)
	}

	ctx := context.Background()
	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.OTLPEndpoint)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return int(build.ExitStdlibFailure)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	tag := runtag.New(time.Now().UnixNano())
	ctx = withRunTag(ctx, tag)

	engine := build.New(cfg.ResolvedLimits())
	if err := registerDemoTargets(engine); err != nil {
		return reportFatal(err)
	}

	start := time.Now()
	if err := engine.Run(ctx, cli.Targets...); err != nil {
		return reportFatal(err)
	}

	if len(cli.Targets) > 0 {
		printDiagnostic(fmt.Sprintf("forge: %s started %s", tag.Name, humanize.RelTime(start, time.Now(), "ago", "from now")))
	}
	return int(build.ExitSuccess)
}

// reportFatal logs a fatal diagnostic through slog.Error, the same sink
// (stderr or the configured --log-file) every other diagnostic goes
// through, then additionally echoes a colorized line to an interactive
// terminal before returning the process exit code.
func reportFatal(err error) int {
	var fatal *build.FatalError
	if errors.As(err, &fatal) {
		slog.Error(fatal.Error(), "exitCode", int(fatal.Code))
		printFatal(fatal.Error())
		return int(fatal.Code)
	}
	slog.Error(err.Error())
	printFatal(err.Error())
	return int(build.ExitStdlibFailure)
}

func printVersion() {
	v := version.Get()
	fmt.Printf("Git Repository: %s\n", v.GitRepo)
	fmt.Printf("Git Branch: %s\n", v.GitBranch)
	fmt.Printf("Git Commit: %s\n", v.GitCommit)
	fmt.Printf("Build Time: %s\n", v.BuildTime)
}
