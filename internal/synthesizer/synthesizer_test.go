package synthesizer

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/report-flow/internal/chunker"
	"github.com/nguyentantai21042004/report-flow/internal/llm"
	"github.com/nguyentantai21042004/report-flow/internal/logger"
	"github.com/nguyentantai21042004/report-flow/internal/summarizer"
)

type fakeCompleter struct {
	masterCalls  int
	foldCalls    int
	openingCalls int
	closingCalls int
	lastUser     string
	err          error
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string, maxOutput int) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastUser = user
	switch {
	case strings.Contains(system, "merging several partial weekly report drafts"):
		f.foldCalls++
		return "folded body", nil
	case strings.Contains(system, "synthesizing multiple daily session summaries"):
		f.masterCalls++
		return fmt.Sprintf("master draft %d", f.masterCalls), nil
	case strings.Contains(system, "opening paragraph"):
		f.openingCalls++
		return "Thank you for the week.", nil
	case strings.Contains(system, "closing paragraph"):
		f.closingCalls++
		return "Please reach out anytime.", nil
	}
	return "", fmt.Errorf("unexpected system prompt")
}

func testSynth(fake *fakeCompleter, budget int) Synthesizer {
	return New(fake, Options{
		InputBudget: budget,
		Chunking:    chunker.Options{Length: budget, Overlap: budget / 10, Tolerance: budget / 10},
	}, logger.New("error"))
}

func dailies(n, size int) []summarizer.DailySummary {
	out := make([]summarizer.DailySummary, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, summarizer.DailySummary{
			Source: fmt.Sprintf("Day%d", i+1),
			Text:   strings.Repeat("detail sentence. ", size),
		})
	}
	return out
}

func TestMasterUnderBudgetSingleCall(t *testing.T) {
	fake := &fakeCompleter{}
	s := testSynth(fake, 100000)

	body, err := s.Master(context.Background(), dailies(5, 20))
	if err != nil {
		t.Fatalf("Master() error = %v", err)
	}
	if fake.masterCalls != 1 {
		t.Errorf("master calls = %d, want exactly 1", fake.masterCalls)
	}
	if fake.foldCalls != 0 {
		t.Errorf("fold calls = %d, want 0", fake.foldCalls)
	}
	if body != "master draft 1" {
		t.Errorf("body = %q", body)
	}
	for _, d := range []string{"Day1", "Day5"} {
		if !strings.Contains(fake.lastUser, "=== "+d+" ===") {
			t.Errorf("combined input missing label for %s", d)
		}
	}
}

func TestMasterOverBudgetFolds(t *testing.T) {
	fake := &fakeCompleter{}
	s := testSynth(fake, 2000)

	body, err := s.Master(context.Background(), dailies(5, 100))
	if err != nil {
		t.Fatalf("Master() error = %v", err)
	}
	if fake.masterCalls < 2 {
		t.Errorf("master calls = %d, want several chunk calls", fake.masterCalls)
	}
	if fake.foldCalls != 1 {
		t.Errorf("fold calls = %d, want exactly 1", fake.foldCalls)
	}
	if body != "folded body" {
		t.Errorf("body = %q, want fold output", body)
	}
}

func TestMasterNoSummaries(t *testing.T) {
	s := testSynth(&fakeCompleter{}, 1000)
	if _, err := s.Master(context.Background(), nil); err == nil {
		t.Fatal("Master() with no summaries should fail")
	}
}

func TestMasterPropagatesServiceError(t *testing.T) {
	fatal := &llm.ServiceError{Kind: llm.Unauthorized, Provider: "fake", Err: fmt.Errorf("bad key")}
	s := testSynth(&fakeCompleter{err: fatal}, 100000)

	_, err := s.Master(context.Background(), dailies(1, 5))
	if err == nil {
		t.Fatal("Master() error = nil, want service error")
	}
	if !llm.IsFatal(err) {
		t.Errorf("error = %v, want fatal kind preserved through wrapping", err)
	}
}

func TestOpeningUsesHeadOfBody(t *testing.T) {
	fake := &fakeCompleter{}
	s := testSynth(fake, 100000)

	body := strings.Repeat("A", 5000)
	got, err := s.Opening(context.Background(), body)
	if err != nil {
		t.Fatalf("Opening() error = %v", err)
	}
	if got != "Thank you for the week." {
		t.Errorf("opening = %q", got)
	}
	if strings.Count(fake.lastUser, "A") != openingContextLen {
		t.Errorf("opening context size = %d, want %d", strings.Count(fake.lastUser, "A"), openingContextLen)
	}
}

func TestClosingSamplesHeadAndTail(t *testing.T) {
	fake := &fakeCompleter{}
	s := testSynth(fake, 100000)

	body := strings.Repeat("B", 4000) + strings.Repeat("C", 1000)
	if _, err := s.Closing(context.Background(), body); err != nil {
		t.Fatalf("Closing() error = %v", err)
	}
	if !strings.Contains(fake.lastUser, "\n...\n") {
		t.Error("closing sample should join head and tail with an ellipsis line")
	}
	if strings.Count(fake.lastUser, "C") != closingTailLen {
		t.Errorf("closing tail size = %d, want %d", strings.Count(fake.lastUser, "C"), closingTailLen)
	}
}

func TestClosingShortBodyWholeSample(t *testing.T) {
	fake := &fakeCompleter{}
	s := testSynth(fake, 100000)

	if _, err := s.Closing(context.Background(), "short body"); err != nil {
		t.Fatalf("Closing() error = %v", err)
	}
	if strings.Contains(fake.lastUser, "\n...\n") {
		t.Error("short body should not be sampled")
	}
}
