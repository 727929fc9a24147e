package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/koopamoopa/Decoding-Unicode/pkg/errors"
	"github.com/koopamoopa/Decoding-Unicode/pkg/grid"
	"github.com/koopamoopa/Decoding-Unicode/pkg/markup"
	"github.com/koopamoopa/Decoding-Unicode/pkg/observability"
	"github.com/koopamoopa/Decoding-Unicode/pkg/triple"
)

// Runner executes the pipeline with a fetcher and logger.
//
// The Runner stores no pipeline results; each Execute call allocates its own
// line stream, records and grid.
type Runner struct {
	Fetcher Fetcher
	Logger  *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(f Fetcher, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Fetcher: f, Logger: logger}
}

// Execute fetches the document at opts.URL, extracts its records and renders
// them. A fetch failure is returned as an ErrCodeFetch error, a document
// without records as ErrCodeEmptyData and coordinates too far apart to draw
// as ErrCodeGridTooLarge. No grid is produced in any of these cases.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}
	if r.Fetcher == nil {
		return nil, apperrors.New(apperrors.ErrCodeInternal, "pipeline has no fetcher")
	}

	hooks := observability.Pipeline()
	result := &Result{}

	// Stage 1: Fetch
	fetchStart := time.Now()
	hooks.OnFetchStart(ctx, opts.URL)
	body, err := r.Fetcher.Fetch(ctx, opts.URL)
	result.Stats.FetchTime = time.Since(fetchStart)
	hooks.OnFetchComplete(ctx, opts.URL, len(body), result.Stats.FetchTime, err)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeFetch, err, "fetch document")
	}
	result.Stats.Bytes = len(body)

	logger.Debug("fetched document",
		"bytes", result.Stats.Bytes,
		"duration", result.Stats.FetchTime)

	// Stage 2: Extract
	extractStart := time.Now()
	result.Lines = markup.Lines(body)
	start, found := triple.HeaderIndex(result.Lines)
	result.Stats.HeaderFound = found
	result.Records = triple.ExtractFrom(result.Lines, start)
	result.Stats.ExtractTime = time.Since(extractStart)
	result.Stats.LineCount = len(result.Lines)
	result.Stats.RecordCount = len(result.Records)
	hooks.OnExtractComplete(ctx, result.Stats.LineCount, result.Stats.RecordCount, result.Stats.ExtractTime)

	logger.Debug("extracted records",
		"lines", result.Stats.LineCount,
		"records", result.Stats.RecordCount,
		"header", result.Stats.HeaderFound,
		"duration", result.Stats.ExtractTime)

	if len(result.Records) == 0 {
		return result, apperrors.New(apperrors.ErrCodeEmptyData, MsgNoData)
	}

	// Stage 3: Render
	renderStart := time.Now()
	g, err := grid.New(result.Records)
	switch {
	case errors.Is(err, grid.ErrTooLarge):
		return result, apperrors.Wrap(apperrors.ErrCodeGridTooLarge, err, MsgTooLarge)
	case err != nil:
		return result, apperrors.Wrap(apperrors.ErrCodeInternal, err, "render grid")
	}
	result.Rows = g.Rows()
	result.Stats.Width = g.Width()
	result.Stats.Height = g.Height()
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, g.Height(), g.Width(), result.Stats.RenderTime)

	logger.Debug("rendered grid",
		"rows", g.Height(),
		"cols", g.Width(),
		"duration", result.Stats.RenderTime)

	return result, nil
}
