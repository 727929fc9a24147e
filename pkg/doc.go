// Package pkg provides the libraries behind the decode command.
//
// # Overview
//
// A published document carries a table of x-coordinates, characters and
// y-coordinates. Decoding it takes four steps, each in its own package:
//
//  1. [fetch] - Retrieve the document text over HTTP
//  2. [markup] - Strip tags and split the text into trimmed lines
//  3. [triple] - Recover (x, character, y) records from the line stream
//  4. [grid] - Place the records on a character grid and print its rows
//
// [pipeline] runs the steps in order. [errors] carries the error codes that
// decide whether a failure is reported to the user or propagated, and
// [observability] exposes hooks for instrumentation.
//
// # Architecture
//
//	URL
//	 ↓
//	[fetch] raw HTML
//	 ↓
//	[markup] line stream
//	 ↓
//	[triple] records
//	 ↓
//	[grid] rows
//
// # Quick Start
//
//	import (
//	    "github.com/koopamoopa/Decoding-Unicode/pkg/grid"
//	    "github.com/koopamoopa/Decoding-Unicode/pkg/triple"
//	)
//
//	records := triple.Parse(html)
//	for _, row := range grid.Render(records) {
//	    fmt.Println(row)
//	}
//
// [fetch]: https://pkg.go.dev/github.com/koopamoopa/Decoding-Unicode/pkg/fetch
// [markup]: https://pkg.go.dev/github.com/koopamoopa/Decoding-Unicode/pkg/markup
// [triple]: https://pkg.go.dev/github.com/koopamoopa/Decoding-Unicode/pkg/triple
// [grid]: https://pkg.go.dev/github.com/koopamoopa/Decoding-Unicode/pkg/grid
// [pipeline]: https://pkg.go.dev/github.com/koopamoopa/Decoding-Unicode/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/koopamoopa/Decoding-Unicode/pkg/errors
// [observability]: https://pkg.go.dev/github.com/koopamoopa/Decoding-Unicode/pkg/observability
package pkg
