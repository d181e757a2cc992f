// Package pkg provides the core libraries for labelgen nutrition label generation.
//
// # Overview
//
// Labelgen turns recipe nutrition data into print-ready nutrition facts
// labels. The pkg directory is organized into five main areas:
//
//  1. [label] - Request schema, validation, and the normalized label model
//  2. [nutrition] - FDA reference daily intakes and %DV arithmetic
//  3. [layout] - Format-agnostic row building per label type
//  4. [render] - HTML, PDF, and PNG output sinks over one row sequence
//  5. [pipeline] - Orchestration (normalize → layout → render) and storage
//
// # Architecture
//
// The typical data flow through labelgen:
//
//	Label Request (JSON)
//	         ↓
//	    [label] package (validate + default into a Model)
//	         ↓
//	    [nutrition] package (compute %DV per nutrient)
//	         ↓
//	    [layout] package (ordered row sequence)
//	         ↓
//	    [render] package (HTML / PDF / PNG, rendered concurrently)
//	         ↓
//	    [labelstore] package (persist for download and embedding)
//
// # Quick Start
//
// Generate every format for a request:
//
//	import (
//	    "context"
//	    "github.com/curadolabs/labelgen/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{Request: req})
//	if err != nil {
//	    return err
//	}
//	pdf := result.Artifacts[pipeline.FormatPDF]
//
// Supporting packages: [errors] for coded errors shared by CLI and API,
// [labelstore] for persistence backends, [fonts] for the embedded
// typefaces, [observability] for instrumentation hooks, and [buildinfo]
// for version stamping.
//
// [label]: github.com/curadolabs/labelgen/pkg/label
// [nutrition]: github.com/curadolabs/labelgen/pkg/nutrition
// [layout]: github.com/curadolabs/labelgen/pkg/layout
// [render]: github.com/curadolabs/labelgen/pkg/render
// [pipeline]: github.com/curadolabs/labelgen/pkg/pipeline
// [labelstore]: github.com/curadolabs/labelgen/pkg/labelstore
// [errors]: github.com/curadolabs/labelgen/pkg/errors
// [fonts]: github.com/curadolabs/labelgen/pkg/fonts
// [observability]: github.com/curadolabs/labelgen/pkg/observability
// [buildinfo]: github.com/curadolabs/labelgen/pkg/buildinfo
package pkg
