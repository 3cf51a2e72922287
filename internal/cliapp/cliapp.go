// Package cliapp wires the Cobra command tree, Viper config loading, and a
// lipgloss/go-isatty colorized one-line run summary; diagnostics themselves
// are logged through log/slog without color. The teacher codebase's
// own CLI entrypoint (cmd/tygor) builds its command tree with
// alecthomas/kong instead of Cobra and has no colorized output layer at
// all, so this combination is drawn from the rest of the pack: both
// jabafett-quill and jinterlante1206-AleutianLocal wire exactly this
// cobra+lipgloss(+viper/isatty) stack for their own command-line entry
// points. What carries over from the teacher is the shape, not the
// libraries: one root command dispatching to a small, fixed set of
// subcommands, the same way cmd/tygor's CLI struct groups Gen/Check/Dev.
package cliapp

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thelicato/ts2py-go/internal/config"
	"github.com/thelicato/ts2py-go/internal/driver"
)

var (
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleOK      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// NewRootCommand builds the `ts2py` command tree: a single `compile`
// subcommand taking a file or directory path.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "ts2py",
		Short: "Compile TypeScript declaration files into Python type stubs",
	}

	compileCmd := &cobra.Command{
		Use:   "compile <path>",
		Short: "Compile a .d.ts file or a directory of them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, v, args[0])
		},
	}
	flags := compileCmd.Flags()
	flags.String("compatibility", "3.11", "target Python version (3.6-3.11)")
	flags.StringSlice("pep", []string{"435", "604", "655"}, "typing PEPs to enable (435, 584, 604, 655)")
	flags.String("decorator", "", "class decorator to apply to classes compiled from interfaces (e.g. dataclass)")
	flags.String("base", "", "base class for compiled interfaces (default TypedDict)")
	flags.Bool("verbose", false, "enable verbose logging")
	flags.Bool("debug", false, "enable debug logging")
	v.BindPFlag("compatibility", flags.Lookup("compatibility"))
	v.BindPFlag("peps", flags.Lookup("pep"))
	v.BindPFlag("decorator", flags.Lookup("decorator"))
	v.BindPFlag("base", flags.Lookup("base"))
	v.BindPFlag("verbose", flags.Lookup("verbose"))
	v.BindPFlag("debug", flags.Lookup("debug"))

	root.AddCommand(compileCmd)
	return root
}

func runCompile(cmd *cobra.Command, v *viper.Viper, path string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelInfo
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	res, err := driver.Run(log, path, cfg.CompilerConfig())
	if err != nil {
		return err
	}

	// Diagnostics are already emitted through the structured logger inside
	// driver.Run; only the run summary is printed here, matching the
	// original's terse terminal banner rather than double-reporting every
	// finding.
	color := colorEnabled()
	out := cmd.OutOrStdout()
	summary := fmt.Sprintf("compiled %d file(s), %d diagnostic(s)", res.FilesCompiled, len(res.Diagnostics))
	if color {
		if res.ExitCode() == 0 {
			summary = styleOK.Render(summary)
		} else if res.ExitCode() == 1 {
			summary = styleWarning.Render(summary)
		} else {
			summary = styleError.Render(summary)
		}
	}
	fmt.Fprintln(out, summary)

	if res.ExitCode() == 2 {
		os.Exit(2)
	}
	if res.ExitCode() == 1 {
		os.Exit(1)
	}
	return nil
}
