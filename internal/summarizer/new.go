package summarizer

import (
	"github.com/nguyentantai21042004/report-flow/internal/chunker"
	"github.com/nguyentantai21042004/report-flow/internal/llm"
	"github.com/nguyentantai21042004/report-flow/internal/logger"
)

// Options tunes the daily summarization stage.
type Options struct {
	Chunking       chunker.Options
	MaxConcurrent  int
	MaxOutput      int
	AbortOnFailure bool
}

type implSummarizer struct {
	completer llm.Completer
	opts      Options
	logger    logger.Logger
}

// New creates a Summarizer backed by the given completion gateway.
func New(completer llm.Completer, opts Options, log logger.Logger) Summarizer {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	return &implSummarizer{
		completer: completer,
		opts:      opts,
		logger:    log,
	}
}
