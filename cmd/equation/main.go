// Command equation parses, evaluates, and persists arithmetic equations.
//
// Usage:
//
//	equation eval --expr "a / b + (a / b) * c" --var a=10 --var b=5 --var c=10
//	equation postfix --expr "x^y+z+c"
//	equation run --file equations.yaml [--db equations.db]
//	equation list --db equations.db
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alexflint/go-arg"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "equation: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// Args is the top-level command line.
type Args struct {
	LogLevel string `arg:"--log-level" default:"warn" help:"log level (debug, info, warn, error)"`

	EvalCmd    *EvalArgs    `arg:"subcommand:eval" help:"evaluate one expression"`
	PostfixCmd *PostfixArgs `arg:"subcommand:postfix" help:"print the postfix form of an expression"`
	RunCmd     *RunArgs     `arg:"subcommand:run" help:"load a definitions file and solve its requests"`
	ListCmd    *ListArgs    `arg:"subcommand:list" help:"list equations persisted in a database"`
}

// Description is shown at the top of the help text.
func (Args) Description() string {
	return "equation maintains and evaluates arithmetic equations\n"
}

// env carries what subcommands need from the process.
type env struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// run parses argv and executes the selected subcommand.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	var args Args
	parser, err := arg.NewParser(arg.Config{Program: "equation"}, &args)
	if err != nil {
		return fmt.Errorf("cli config error: %w", err)
	}

	err = parser.Parse(argv)
	if errors.Is(err, arg.ErrHelp) {
		parser.WriteHelp(stdout)
		return nil
	}
	if err != nil {
		return fmt.Errorf("cli parse error: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(args.LogLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	e := &env{
		stdout: stdout,
		stderr: stderr,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}

	switch {
	case args.EvalCmd != nil:
		return args.EvalCmd.Run(ctx, e)
	case args.PostfixCmd != nil:
		return args.PostfixCmd.Run(ctx, e)
	case args.RunCmd != nil:
		return args.RunCmd.Run(ctx, e)
	case args.ListCmd != nil:
		return args.ListCmd.Run(ctx, e)
	}

	// print help if no subcommands are set
	parser.WriteHelp(stdout)
	return nil
}
