package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/report-flow/internal/transcript"
)

// Summarizer turns transcript sources into per-day summaries.
type Summarizer interface {
	SummarizeAll(ctx context.Context, sources []transcript.Source) (*Result, error)
	SummarizeSource(ctx context.Context, src transcript.Source) (string, error)
}

// DailySummary is the topic-organized synthesis of one source.
type DailySummary struct {
	Source string
	Text   string
}

// SourceError records one source whose summarization failed while the
// run carried on.
type SourceError struct {
	Source string
	Err    error
}

// Result holds the summaries that succeeded, in source order, plus
// the isolated per-source failures.
type Result struct {
	Summaries []DailySummary
	Failed    []SourceError
}
