// Package cli implements the decode command-line interface.
//
// The root command fetches a published document, extracts its coordinate
// table and prints the decoded character grid. The CLI is built using cobra
// and logs through charmbracelet/log.
//
// # Commands
//
//   - decode [url]: Decode a document (prompts for the URL when omitted)
//   - config path: Print the default config file location
//   - config show: Print the effective configuration
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so helpers can log without extra parameters.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/koopamoopa/Decoding-Unicode/pkg/pipeline"
)

// newLogger returns the stderr logger: prefixed with the program name,
// timestamped as "15:04:05.00", filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// runTimer measures one decode run for its closing summary line.
type runTimer struct {
	logger *log.Logger
	start  time.Time
}

func startRunTimer(l *log.Logger) runTimer {
	return runTimer{logger: l, start: time.Now()}
}

// summary logs the decoded grid's shape and the run's wall time, e.g.
//
//	15:04:05.00 INFO decode: decoded characters=97 rows=7 cols=93 elapsed=1.234s
func (t runTimer) summary(stats pipeline.Stats) {
	t.logger.Info("decoded",
		"characters", stats.RecordCount,
		"rows", stats.Height,
		"cols", stats.Width,
		"elapsed", time.Since(t.start).Round(time.Millisecond))
}

type loggerKey struct{}

// contextWithLogger attaches l to ctx for helpers such as the URL prompt.
func contextWithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFrom returns the logger attached to ctx, or log.Default().
func loggerFrom(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
