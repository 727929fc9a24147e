package cli

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/koopamoopa/Decoding-Unicode/pkg/fetch"
	"github.com/koopamoopa/Decoding-Unicode/pkg/pipeline"
)

// runDecode reads the URL (prompting when it is empty), runs the pipeline
// once and prints the separator followed by the grid or a diagnostic.
// Fetch failures and documents without data are reported on Out and are
// not errors.
func (c *CLI) runDecode(ctx context.Context, configPath, url string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger := c.Logger.With("run", uuid.NewString())
	ctx = contextWithLogger(ctx, logger)

	if url == "" {
		if url, err = promptURL(ctx, c.In, c.Out); err != nil {
			return err
		}
	}

	out := newUI(c.Out)
	out.printSeparator(cfg.SeparatorWidth)

	logger.Debug("config", "timeout", cfg.Timeout, "attempts", cfg.Attempts, "retry_delay", cfg.RetryDelay)
	runner := pipeline.NewRunner(fetch.NewClient(cfg.fetchOptions(logger)), logger)

	spin := c.startSpinner(ctx, "Fetching document...")
	timer := startRunTimer(logger)
	result, err := runner.Execute(ctx, pipeline.Options{URL: url})
	spin.Stop()

	if err != nil {
		msg, ok := pipeline.Diagnostic(err)
		if !ok {
			return err
		}
		logger.Debug("run ended without a grid", "err", err)
		out.printDiagnostic(msg)
		return nil
	}

	out.printRows(result.Rows)
	timer.summary(result.Stats)
	return nil
}

// stopper is the subset of *Spinner used while a run is in flight.
type stopper interface{ Stop() }

type noopSpinner struct{}

func (noopSpinner) Stop() {}

// startSpinner shows a spinner on Err when it is a terminal.
func (c *CLI) startSpinner(ctx context.Context, message string) stopper {
	if !isTerminal(c.Err) {
		return noopSpinner{}
	}
	s := newSpinnerWithContext(ctx, c.Err, message)
	s.Start()
	return s
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
