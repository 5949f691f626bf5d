package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/nguyentantai21042004/report-flow/internal/config"
	"github.com/nguyentantai21042004/report-flow/internal/llm"
	"github.com/nguyentantai21042004/report-flow/internal/logger"
)

// fakeCompleter answers every stage with a recognizable canned text.
type fakeCompleter struct {
	mu          sync.Mutex
	calls       int
	failOpening bool
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string, maxOutput int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	switch {
	case strings.Contains(system, "synthesizing multiple daily session summaries"):
		return "Estimating\n\nRates were reviewed and corrected.\n\nPurchasing\n\n- Orders were reconciled.", nil
	case strings.Contains(system, "writing the opening paragraph"):
		if f.failOpening {
			return "", &llm.ServiceError{Kind: llm.Timeout, Provider: "fake", Err: fmt.Errorf("slow")}
		}
		return "Thank you for a productive week.", nil
	case strings.Contains(system, "writing the closing paragraph"):
		return "Please reach out with any questions.", nil
	default:
		return "Session Focus\n\n- The day's work was reviewed.", nil
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Transcripts:    filepath.Join(root, "transcripts"),
			Processed:      filepath.Join(root, "processed"),
			DailySummaries: filepath.Join(root, "daily"),
			MasterSummary:  filepath.Join(root, "master"),
			Output:         filepath.Join(root, "output"),
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func writeTranscript(t *testing.T, cfg *config.Config, name, content string) {
	t.Helper()
	if err := os.MkdirAll(cfg.Paths.Transcripts, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.Paths.Transcripts, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

const srtContent = "1\n00:00:01,000 --> 00:00:02,000\nThe estimating module was configured.\n"

func TestRunEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	writeTranscript(t, cfg, "Monday.srt", srtContent)
	writeTranscript(t, cfg, "Tuesday.srt", srtContent)

	p := New(cfg, &fakeCompleter{}, logger.New("error"))

	outPath, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("rendered document missing: %v", err)
	}

	for _, want := range []string{
		filepath.Join(cfg.Paths.DailySummaries, "Monday_summary.txt"),
		filepath.Join(cfg.Paths.DailySummaries, "Tuesday_summary.txt"),
		filepath.Join(cfg.Paths.MasterSummary, "master_summary.txt"),
		filepath.Join(cfg.Paths.MasterSummary, "opening.txt"),
		filepath.Join(cfg.Paths.MasterSummary, "closing.txt"),
	} {
		if _, err := os.Stat(want); err != nil {
			t.Errorf("missing persisted artifact %s", want)
		}
	}
}

func TestRunNoTranscripts(t *testing.T) {
	cfg := testConfig(t)
	if err := os.MkdirAll(cfg.Paths.Transcripts, 0755); err != nil {
		t.Fatal(err)
	}

	p := New(cfg, &fakeCompleter{}, logger.New("error"))

	_, err := p.Run(context.Background())
	var emptyErr *EmptyInputError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("Run() error = %v, want *EmptyInputError", err)
	}
}

func TestRunOpeningFailureDegrades(t *testing.T) {
	cfg := testConfig(t)
	writeTranscript(t, cfg, "Monday.srt", srtContent)

	p := New(cfg, &fakeCompleter{failOpening: true}, logger.New("error"))

	outPath, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v, framing failure must not abort", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("rendered document missing: %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.Paths.MasterSummary, "opening.txt")); !os.IsNotExist(err) {
		t.Error("opening.txt should not exist after a failed opening call")
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.MasterSummary, "closing.txt")); err != nil {
		t.Error("closing should still be generated")
	}
}

func TestStageByStageResume(t *testing.T) {
	cfg := testConfig(t)
	p := New(cfg, &fakeCompleter{}, logger.New("error"))
	if err := p.EnsureDirs(); err != nil {
		t.Fatal(err)
	}

	// Hand-persisted daily summaries stand in for an earlier run.
	for _, name := range []string{"Monday", "Tuesday"} {
		path := filepath.Join(cfg.Paths.DailySummaries, name+"_summary.txt")
		if err := os.WriteFile(path, []byte("Session Focus\n\n- Work happened."), 0644); err != nil {
			t.Fatal(err)
		}
	}

	ctx := context.Background()
	if err := p.RunMaster(ctx); err != nil {
		t.Fatalf("RunMaster() error = %v", err)
	}
	p.RunFraming(ctx)
	outPath, err := p.RunRender(ctx)
	if err != nil {
		t.Fatalf("RunRender() error = %v", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("rendered document missing: %v", err)
	}
}

func TestSummarizeOne(t *testing.T) {
	cfg := testConfig(t)
	writeTranscript(t, cfg, "Friday.srt", srtContent)

	p := New(cfg, &fakeCompleter{}, logger.New("error"))

	path := filepath.Join(cfg.Paths.Transcripts, "Friday.srt")
	if err := p.SummarizeOne(context.Background(), path); err != nil {
		t.Fatalf("SummarizeOne() error = %v", err)
	}

	out := filepath.Join(cfg.Paths.DailySummaries, "Friday_summary.txt")
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("daily summary missing: %v", err)
	}
	if !strings.Contains(string(data), "Session Focus") {
		t.Errorf("summary content = %q", data)
	}
}

func TestLoadDailySummariesOrder(t *testing.T) {
	cfg := testConfig(t)
	p := New(cfg, &fakeCompleter{}, logger.New("error"))
	if err := p.EnsureDirs(); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"02_Tuesday", "01_Monday", "03_Wednesday"} {
		path := filepath.Join(cfg.Paths.DailySummaries, name+"_summary.txt")
		if err := os.WriteFile(path, []byte("text"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	summaries, err := p.loadDailySummaries()
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 3 {
		t.Fatalf("summaries = %d, want 3", len(summaries))
	}
	want := []string{"01_Monday", "02_Tuesday", "03_Wednesday"}
	for i, w := range want {
		if summaries[i].Source != w {
			t.Errorf("summaries[%d].Source = %q, want %q", i, summaries[i].Source, w)
		}
	}
}
