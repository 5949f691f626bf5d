package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/report-flow/internal/summarizer"
)

const masterFileName = "master_summary.txt"

func (p *Pipeline) masterPath() string {
	return filepath.Join(p.cfg.Paths.MasterSummary, masterFileName)
}

// loadDailySummaries reads the persisted *_summary.txt files in name
// order, restoring the source name from the filename.
func (p *Pipeline) loadDailySummaries() ([]summarizer.DailySummary, error) {
	entries, err := os.ReadDir(p.cfg.Paths.DailySummaries)
	if err != nil {
		return nil, fmt.Errorf("read daily summaries dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), "_summary.txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var summaries []summarizer.DailySummary
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(p.cfg.Paths.DailySummaries, name))
		if err != nil {
			return nil, fmt.Errorf("read daily summary %s: %w", name, err)
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			continue
		}
		summaries = append(summaries, summarizer.DailySummary{
			Source: strings.TrimSuffix(name, "_summary.txt"),
			Text:   text,
		})
	}

	return summaries, nil
}

func (p *Pipeline) loadMaster() (string, error) {
	data, err := os.ReadFile(p.masterPath())
	if err != nil {
		return "", fmt.Errorf("read master summary: %w", err)
	}
	body := strings.TrimSpace(string(data))
	if body == "" {
		return "", &EmptyInputError{Scope: p.masterPath()}
	}
	return body, nil
}

func (p *Pipeline) writeFraming(ctx context.Context, name, text string) {
	path := filepath.Join(p.cfg.Paths.MasterSummary, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		p.logger.Warn(ctx, "Failed to persist %s: %v", name, err)
		return
	}
	p.logger.Info(ctx, "Saved framing -> %s", path)
}

// readFraming returns the persisted framing paragraph or "" when it
// is absent; a missing paragraph just degrades the report.
func (p *Pipeline) readFraming(name string) string {
	data, err := os.ReadFile(filepath.Join(p.cfg.Paths.MasterSummary, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
