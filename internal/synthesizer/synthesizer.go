package synthesizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/report-flow/internal/chunker"
	"github.com/nguyentantai21042004/report-flow/internal/llm"
	"github.com/nguyentantai21042004/report-flow/internal/logger"
	"github.com/nguyentantai21042004/report-flow/internal/summarizer"
)

// Framing context windows, measured in bytes of the master body.
const (
	openingContextLen = 3000
	closingHeadLen    = 2000
	closingTailLen    = 1000
)

// Synthesizer reduces daily summaries into the master body and
// generates the framing paragraphs conditioned on it.
type Synthesizer interface {
	Master(ctx context.Context, summaries []summarizer.DailySummary) (string, error)
	Opening(ctx context.Context, masterBody string) (string, error)
	Closing(ctx context.Context, masterBody string) (string, error)
}

// Options tunes master synthesis. InputBudget is the byte budget for
// a single completion call; a combined input over it degrades to the
// chunk/fold procedure.
type Options struct {
	InputBudget int
	Chunking    chunker.Options
	MaxOutput   int
}

type implSynthesizer struct {
	completer llm.Completer
	opts      Options
	logger    logger.Logger
}

func New(completer llm.Completer, opts Options, log logger.Logger) Synthesizer {
	if opts.InputBudget <= 0 {
		opts.InputBudget = 60000
	}
	return &implSynthesizer{
		completer: completer,
		opts:      opts,
		logger:    log,
	}
}

// Master concatenates the daily summaries, labelled by source, and
// synthesizes the weekly report body in one call when the input fits
// the budget.
func (s *implSynthesizer) Master(ctx context.Context, summaries []summarizer.DailySummary) (string, error) {
	if len(summaries) == 0 {
		return "", fmt.Errorf("no daily summaries to synthesize")
	}

	labelled := make([]string, 0, len(summaries))
	for _, d := range summaries {
		labelled = append(labelled, fmt.Sprintf("=== %s ===\n%s", d.Source, strings.TrimSpace(d.Text)))
	}
	combined := strings.Join(labelled, "\n\n\n")

	if len(combined) <= s.opts.InputBudget {
		out, err := s.completer.Complete(ctx, masterSystemPrompt, fmt.Sprintf(masterUserPrompt, combined), s.opts.MaxOutput)
		if err != nil {
			return "", fmt.Errorf("master synthesis: %w", err)
		}
		return strings.TrimSpace(out), nil
	}

	return s.masterChunked(ctx, combined)
}

// masterChunked is the over-budget fallback: chunk the combined
// summaries, synthesize each piece, then fold the partial drafts with
// one consolidation call.
func (s *implSynthesizer) masterChunked(ctx context.Context, combined string) (string, error) {
	opts := s.opts.Chunking
	if opts.Length <= 0 || opts.Length > s.opts.InputBudget {
		opts.Length = s.opts.InputBudget
	}
	chunks := chunker.Split("master", combined, opts)
	s.logger.Info(ctx, "Combined summaries exceed input budget, folding %d chunks", len(chunks))

	partials := make([]string, 0, len(chunks))
	for _, c := range chunks {
		out, err := s.completer.Complete(ctx, masterSystemPrompt, fmt.Sprintf(masterUserPrompt, c.Text), s.opts.MaxOutput)
		if err != nil {
			return "", fmt.Errorf("master chunk %d: %w", c.Index, err)
		}
		partials = append(partials, strings.TrimSpace(out))
	}

	merged := strings.Join(partials, "\n\n---\n\n")
	out, err := s.completer.Complete(ctx, masterFoldSystemPrompt, fmt.Sprintf(masterFoldUserPrompt, merged), s.opts.MaxOutput)
	if err != nil {
		return "", fmt.Errorf("master consolidation: %w", err)
	}

	return strings.TrimSpace(out), nil
}

// Opening generates the gratitude/scope paragraph from the head of
// the master body.
func (s *implSynthesizer) Opening(ctx context.Context, masterBody string) (string, error) {
	grounding := head(masterBody, openingContextLen)
	out, err := s.completer.Complete(ctx, openingSystemPrompt, fmt.Sprintf(openingUserPrompt, grounding), s.opts.MaxOutput)
	if err != nil {
		return "", fmt.Errorf("opening paragraph: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Closing generates the availability paragraph from a head+tail sample
// of the master body, so late sections weigh in too.
func (s *implSynthesizer) Closing(ctx context.Context, masterBody string) (string, error) {
	sample := head(masterBody, closingHeadLen)
	if tail := tail(masterBody, closingTailLen); len(masterBody) > closingHeadLen+closingTailLen {
		sample = sample + "\n...\n" + tail
	}
	out, err := s.completer.Complete(ctx, closingSystemPrompt, fmt.Sprintf(closingUserPrompt, sample), s.opts.MaxOutput)
	if err != nil {
		return "", fmt.Errorf("closing paragraph: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	i := len(s) - n
	for i < len(s) && !isRuneStart(s[i]) {
		i++
	}
	return s[i:]
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }
