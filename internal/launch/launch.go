// Package launch turns planned identifiers into opened files: each name is
// located, reported, opened and recorded. A missing file is an outcome, not a
// failure, and never stops the remaining names.
package launch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopdocs/launcher/internal/history"
	"github.com/shopdocs/launcher/internal/locate"
	"github.com/shopdocs/launcher/internal/opener"
)

// Locator finds the file for one identifier.
type Locator interface {
	Locate(name string) (locate.Result, error)
}

// Recorder stores opened files.
type Recorder interface {
	Append(ctx context.Context, entries ...history.Entry) error
}

// Reporter shows the per-identifier outcome to the user.
type Reporter interface {
	Found(result locate.Result)
	NotFound(name string)
	Failed(name string, err error)
}

// Summary collects the outcome of one Launch.
type Summary struct {
	Found   []locate.Result
	Missing []string
	Failed  []string
}

// Launcher wires the collaborators of one invocation.
type Launcher struct {
	Command  string
	RunID    string
	DryRun   bool
	Locator  Locator
	Opener   opener.Opener
	History  Recorder // optional
	Reporter Reporter
	Logger   *slog.Logger
}

// Launch locates every name in order, opens what was found in one batch and
// records it. The returned error joins lookup and open failures; missing
// files are only reported.
func (l *Launcher) Launch(ctx context.Context, names []string) (Summary, error) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("command", l.Command)

	var (
		summary Summary
		errs    []error
	)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := l.Locator.Locate(name)
		switch {
		case err != nil:
			logger.Error("lookup failed", "identifier", name, "error", err)
			summary.Failed = append(summary.Failed, name)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			l.Reporter.Failed(name, err)
		case !result.Found:
			logger.Info("not found", "identifier", name)
			summary.Missing = append(summary.Missing, name)
			l.Reporter.NotFound(name)
		default:
			logger.Info("located", "identifier", name, "path", result.Path, "source", result.Source)
			summary.Found = append(summary.Found, result)
			l.Reporter.Found(result)
		}
	}

	if len(summary.Found) == 0 || l.DryRun {
		return summary, errors.Join(errs...)
	}

	paths := make([]string, len(summary.Found))
	for i, r := range summary.Found {
		paths[i] = r.Path
	}
	if err := l.Opener.Open(ctx, paths); err != nil {
		errs = append(errs, fmt.Errorf("failed to open files: %w", err))
	}

	if l.History != nil {
		entries := make([]history.Entry, len(summary.Found))
		for i, r := range summary.Found {
			entries[i] = history.Entry{
				RunID:      l.RunID,
				Command:    l.Command,
				Identifier: r.Name,
				Path:       r.Path,
				Source:     r.Source,
			}
		}
		if err := l.History.Append(ctx, entries...); err != nil {
			logger.Warn("failed to record history", "error", err)
		}
	}

	return summary, errors.Join(errs...)
}
