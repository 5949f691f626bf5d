package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/report-flow/internal/chunker"
	"github.com/nguyentantai21042004/report-flow/internal/llm"
	"github.com/nguyentantai21042004/report-flow/internal/transcript"
)

// SummarizeAll runs daily summarization for every source. Sources are
// independently schedulable units of work bounded by the concurrency
// limit; a failure on one source is isolated and reported in the
// Result unless it is a fatal gateway failure (or AbortOnFailure is
// set), in which case in-flight work is released and the whole run
// aborts without a Result.
func (s *implSummarizer) SummarizeAll(ctx context.Context, sources []transcript.Source) (*Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	summaries := make([]string, len(sources))
	failures := make([]error, len(sources))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		fatalErr error
	)
	sem := newSemaphore(s.opts.MaxConcurrent)

	for i, src := range sources {
		if err := sem.acquire(ctx); err != nil {
			break
		}
		wg.Add(1)
		go func(i int, src transcript.Source) {
			defer wg.Done()
			defer sem.release()

			s.logger.Info(ctx, "[%d/%d] Summarizing source: %s", i+1, len(sources), src.Name)
			text, err := s.SummarizeSource(ctx, src)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[i] = err
				if llm.IsFatal(err) || s.opts.AbortOnFailure {
					if fatalErr == nil {
						fatalErr = err
					}
					cancel()
				}
				return
			}
			summaries[i] = text
		}(i, src)
	}
	wg.Wait()

	if fatalErr != nil {
		return nil, fmt.Errorf("summarize %s: %w", failedSourceName(sources, failures, fatalErr), fatalErr)
	}

	res := &Result{}
	for i, src := range sources {
		switch {
		case failures[i] != nil:
			s.logger.Error(ctx, "Failed to summarize %s: %v", src.Name, failures[i])
			res.Failed = append(res.Failed, SourceError{Source: src.Name, Err: failures[i]})
		case summaries[i] == "":
			s.logger.Warn(ctx, "No usable text in %s, skipping", src.Name)
		default:
			res.Summaries = append(res.Summaries, DailySummary{Source: src.Name, Text: summaries[i]})
		}
	}

	return res, nil
}

// SummarizeSource chunks one source and folds the per-chunk outputs,
// in chunk order, into a single daily summary. A single chunk is used
// as-is; more than one goes through the consolidation call. An empty
// source returns "" with no gateway calls.
func (s *implSummarizer) SummarizeSource(ctx context.Context, src transcript.Source) (string, error) {
	chunks := chunker.Split(src.Name, src.Text, s.opts.Chunking)
	if len(chunks) == 0 {
		return "", nil
	}

	partials := make([]string, 0, len(chunks))
	for _, c := range chunks {
		s.logger.Debug(ctx, "Summarizing chunk %d/%d of %s", c.Index+1, len(chunks), src.Name)
		out, err := s.completer.Complete(ctx, dailySystemPrompt, fmt.Sprintf(dailyUserPrompt, c.Text), s.opts.MaxOutput)
		if err != nil {
			return "", fmt.Errorf("chunk %d: %w", c.Index, err)
		}
		partials = append(partials, strings.TrimSpace(out))
	}

	if len(partials) == 1 {
		return partials[0], nil
	}

	s.logger.Debug(ctx, "Consolidating %d partial summaries for %s", len(partials), src.Name)
	merged := strings.Join(partials, "\n\n---\n\n")
	out, err := s.completer.Complete(ctx, consolidationSystemPrompt, fmt.Sprintf(consolidationUserPrompt, merged), s.opts.MaxOutput)
	if err != nil {
		return "", fmt.Errorf("consolidate: %w", err)
	}

	return strings.TrimSpace(out), nil
}

func failedSourceName(sources []transcript.Source, failures []error, target error) string {
	for i, err := range failures {
		if err == target {
			return sources[i].Name
		}
	}
	return "source"
}
