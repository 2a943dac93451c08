package main

import (
	"context"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/unemoji/pkg/log"
	"github.com/walteh/unemoji/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

const programName = "unemoji"

// errReported marks failures that were already printed to the console
var errReported = errors.Base("reported")

// rootOpts holds flag values for one invocation
type rootOpts struct {
	debug   bool
	noColor bool
}

// newRootCmd builds the root command writing console lines to stdout and
// structured logs to stderr
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOpts{}
	bi := readBuildInfo()

	cmd := &cobra.Command{
		Use:   programName + " <file_or_directory>",
		Short: "Strip emoji from source files in place",
		Long: `unemoji removes emoji from a single file, or from every Python file
below a directory, rewriting files in place. There is no backup.`,
		Args:          cobra.ArbitraryArgs,
		Version:       bi.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSanitize(cmd.Context(), opts, args, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(bi.versionTemplate())
	addRootFlags(cmd, opts)

	return cmd
}

// addRootFlags adds shared flags to the root command. help and version are
// declared here without the -h/-v shorthands cobra would add, so those stay
// usable as paths.
func addRootFlags(cmd *cobra.Command, opts *rootOpts) {
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colorized output")
	cmd.Flags().Bool("help", false, "help for "+programName)
	cmd.Flags().Bool("version", false, "version for "+programName)
}

// positionalArgs ends flag parsing at the first argument that is not one of
// cmd's flags, so anything from the path on is taken literally ("-x.py",
// "-h", "--bogus").
func positionalArgs(cmd *cobra.Command, args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !isFlag(cmd, arg) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

func isFlag(cmd *cobra.Command, arg string) bool {
	lookup := func(name string) bool {
		return cmd.Flags().Lookup(name) != nil || cmd.PersistentFlags().Lookup(name) != nil
	}
	shorthand := func(name string) bool {
		return cmd.Flags().ShorthandLookup(name) != nil || cmd.PersistentFlags().ShorthandLookup(name) != nil
	}

	switch {
	case strings.HasPrefix(arg, "--"):
		name, _, _ := strings.Cut(arg[2:], "=")
		return name != "" && lookup(name)
	case len(arg) == 2 && arg[0] == '-':
		return shorthand(arg[1:])
	default:
		return false
	}
}

// setupLogging builds the zerolog logger based on flags
func setupLogging(opts *rootOpts, stderr io.Writer) zerolog.Logger {
	level := zerolog.WarnLevel
	if opts.debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: opts.noColor}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func runSanitize(ctx context.Context, opts *rootOpts, args []string, stdout, stderr io.Writer) error {
	if opts.noColor {
		color.NoColor = true
	}

	zlog := setupLogging(opts, stderr)
	ctx = zlog.WithContext(ctx)

	console := log.New(stdout, zlog)
	ctx = log.NewContext(ctx, console)

	if len(args) == 0 {
		console.Usage(programName)
		return errReported
	}
	if len(args) > 1 {
		zlog.Warn().Strs("ignored", args[1:]).Msg("only the first path is processed")
	}
	target := args[0]

	sanitizer, err := operation.New(operation.Options{})
	if err != nil {
		return errors.Errorf("creating sanitizer: %w", err)
	}

	report, err := sanitizer.Run(ctx, target)
	if err != nil {
		if errors.Is(err, operation.ErrInvalidTarget) {
			console.InvalidTarget(target)
			return errReported
		}
		return errors.Errorf("sanitizing %s: %w", target, err)
	}

	console.Summary(ctx, *report)
	return nil
}

// run executes the command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(positionalArgs(cmd, args))

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			log.New(stdout, zerolog.Nop()).Error(err.Error())
		}
		return 1
	}
	return 0
}
