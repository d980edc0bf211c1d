package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"photosort/internal/app"
	"photosort/internal/config"
	"photosort/internal/domain"
	appErrors "photosort/internal/errors"
	"photosort/internal/infra/exif"
	"photosort/internal/infra/fs"
	"photosort/internal/logging"
	"photosort/internal/presentation"
	"photosort/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var errSourceNotDir = errors.New("source is not a directory")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return reportError(err, stdout, stderr)
	}
	return 0
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:   "photosort <source> <target>",
		Short: "Sort photos into year/month folders by their EXIF capture time",
		Long: `photosort walks <source> and moves every photo that carries an EXIF
capture time to <target>/YYYY/MM/DD_hhmmss_<name>. Files without a
capture time are left where they are.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "args", "", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.SourceDir, cfg.TargetDir = args[0], args[1]
			resolved, err := config.Resolve(cfg)
			if err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
			}
			return sortPhotos(cmd.Context(), resolved, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return appErrors.Wrap(appErrors.InvalidConfig, "flags", "", err)
	})
	config.BindFlags(cmd.Flags(), &cfg)
	return cmd
}

func sortPhotos(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	if err := app.CheckPaths(cfg.SourceDir, cfg.TargetDir); err != nil {
		return err
	}

	filesystem := fs.OSFS{}
	info, err := filesystem.Stat(cfg.SourceDir)
	if err != nil {
		return appErrors.Wrap(appErrors.NotFound, "stat", cfg.SourceDir, err)
	}
	if !info.IsDir() {
		return appErrors.Wrap(appErrors.InvalidConfig, "stat", cfg.SourceDir, errSourceNotDir)
	}

	sorter := app.Sorter{
		FS:     filesystem,
		Exif:   exif.Reader{},
		Logger: logging.New(stdout, stderr, cfg.Verbose),
		DryRun: cfg.DryRun,
	}

	var summary domain.Summary
	if cfg.Interactive {
		summary, err = sortInteractive(ctx, cfg, &sorter, stderr)
	} else {
		summary, err = sorter.Sort(ctx, cfg.SourceDir, cfg.TargetDir)
	}
	if err != nil {
		var appErr *appErrors.AppError
		if !errors.As(err, &appErr) && !errors.Is(err, context.Canceled) {
			err = appErrors.Wrap(appErrors.IOFailure, "walk", cfg.SourceDir, err)
		}
		return err
	}

	if !cfg.Interactive && (cfg.Verbose || cfg.DryRun) {
		presentation.Printer{Writer: stdout}.PrintSummary(summary, cfg.DryRun)
	}
	return nil
}

// sortInteractive runs the sorter behind the terminal UI. Per-file errors are
// held back until the UI has released the terminal.
func sortInteractive(ctx context.Context, cfg config.Config, sorter *app.Sorter, stderr io.Writer) (domain.Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var errBuf bytes.Buffer
	sorter.Logger = logging.New(io.Discard, &errBuf, false)

	program := tea.NewProgram(tui.NewModel(tui.Config{
		SourceDir: cfg.SourceDir,
		TargetDir: cfg.TargetDir,
		DryRun:    cfg.DryRun,
		Cancel:    cancel,
	}))
	sorter.OnProgress = func(p domain.Progress) {
		program.Send(tui.ProgressMsg{Progress: p})
	}

	type result struct {
		summary domain.Summary
		err     error
	}
	done := make(chan result, 1)
	go func() {
		summary, err := sorter.Sort(ctx, cfg.SourceDir, cfg.TargetDir)
		if err != nil {
			program.Send(tui.ErrorMsg{Err: errors.New(appErrors.UserMessage(err))})
		} else {
			program.Send(tui.DoneMsg{Summary: summary})
		}
		done <- result{summary: summary, err: err}
	}()

	_, runErr := program.Run()
	cancel()
	res := <-done
	_, _ = io.Copy(stderr, &errBuf)

	if runErr != nil {
		return res.summary, appErrors.Wrap(appErrors.Internal, "tui", "", runErr)
	}
	return res.summary, res.err
}

func reportError(err error, stdout, stderr io.Writer) int {
	switch {
	case appErrors.KindOf(err) == appErrors.NestedTarget:
		fmt.Fprintln(stdout, appErrors.UserMessage(err))
		return 1
	case appErrors.KindOf(err) == appErrors.InvalidConfig:
		fmt.Fprintln(stderr, appErrors.UserMessage(err))
		fmt.Fprintln(stderr, "Usage: photosort <source> <target> [--dry-run] [--verbose] [--interactive]")
		return 2
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "Interrupted: files already moved stay in their new place")
		return 1
	default:
		fmt.Fprintln(stderr, appErrors.UserMessage(err))
		return 1
	}
}
