// Package pipeline runs the fetch → extract → render decoding pipeline.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Fetch: Retrieve the published document as text
//  2. Extract: Strip markup and recover (x, character, y) records
//  3. Render: Place the records on a character grid
//
// The pipeline runs once per call, on a single goroutine, and keeps no state
// between runs.
//
// # Usage
//
//	runner := pipeline.NewRunner(fetch.NewClient(fetch.Options{}), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{URL: url})
//	switch {
//	case errors.Is(err, errors.ErrCodeFetch):
//	    // report the fetch failure
//	case errors.Is(err, errors.ErrCodeEmptyData):
//	    // report that nothing was found
//	}
//	for _, row := range result.Rows {
//	    fmt.Println(row)
//	}
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/koopamoopa/Decoding-Unicode/pkg/errors"
	"github.com/koopamoopa/Decoding-Unicode/pkg/triple"
)

// Diagnostic messages printed for handled failures.
const (
	MsgFetchFailed = "Error fetching document"
	MsgNoData      = "No character data found in the document"
	MsgTooLarge    = "Character grid is too large to display"
)

// Fetcher retrieves the text body of a document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// FetcherFunc adapts a function to the [Fetcher] interface.
type FetcherFunc func(ctx context.Context, url string) (string, error)

// Fetch calls f(ctx, url).
func (f FetcherFunc) Fetch(ctx context.Context, url string) (string, error) { return f(ctx, url) }

// Options contains all configuration for one pipeline run.
type Options struct {
	// URL is the published document to decode.
	URL string

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Lines is the normalized line stream of the document.
	Lines []string

	// Records are the extracted character records in encounter order.
	Records []triple.Record

	// Rows are the rendered grid rows, top row first.
	Rows []string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Bytes       int
	LineCount   int
	RecordCount int
	HeaderFound bool
	Width       int
	Height      int
	FetchTime   time.Duration
	ExtractTime time.Duration
	RenderTime  time.Duration
}

// Diagnostic returns the user-facing message for a handled pipeline error
// and reports whether err was one. Fetch failures, empty documents and
// oversized grids are handled; anything else is a fault the caller should propagate.
func Diagnostic(err error) (string, bool) {
	var e *apperrors.Error
	if !errors.As(err, &e) {
		return "", false
	}
	switch e.Code {
	case apperrors.ErrCodeFetch:
		if e.Cause == nil {
			return MsgFetchFailed, true
		}
		return MsgFetchFailed + ": " + apperrors.UserMessage(e.Cause), true
	case apperrors.ErrCodeEmptyData:
		return MsgNoData, true
	case apperrors.ErrCodeGridTooLarge:
		return MsgTooLarge, true
	default:
		return "", false
	}
}
