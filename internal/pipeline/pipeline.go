package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/report-flow/internal/chunker"
	"github.com/nguyentantai21042004/report-flow/internal/config"
	"github.com/nguyentantai21042004/report-flow/internal/llm"
	"github.com/nguyentantai21042004/report-flow/internal/logger"
	"github.com/nguyentantai21042004/report-flow/internal/report"
	"github.com/nguyentantai21042004/report-flow/internal/summarizer"
	"github.com/nguyentantai21042004/report-flow/internal/synthesizer"
	"github.com/nguyentantai21042004/report-flow/internal/transcript"
)

// EmptyInputError means a stage had nothing to work from: no usable
// transcripts, or no surviving daily summaries.
type EmptyInputError struct {
	Scope string
}

func (e *EmptyInputError) Error() string {
	return "nothing to summarize: " + e.Scope
}

// Pipeline ties the stages together and persists each stage's output
// as plain text so any stage can be re-run from the previous stage's
// artifacts.
type Pipeline struct {
	cfg         *config.Config
	summarizer  summarizer.Summarizer
	synthesizer synthesizer.Synthesizer
	logger      logger.Logger
}

// New wires the stages onto one completion gateway.
func New(cfg *config.Config, completer llm.Completer, log logger.Logger) *Pipeline {
	chunking := chunker.Options{
		Length:    cfg.Chunking.Length,
		Overlap:   cfg.Chunking.Overlap,
		Tolerance: cfg.Chunking.Tolerance,
	}

	return &Pipeline{
		cfg: cfg,
		summarizer: summarizer.New(completer, summarizer.Options{
			Chunking:       chunking,
			MaxConcurrent:  cfg.Performance.MaxConcurrent,
			MaxOutput:      cfg.LLM.MaxOutputTokens,
			AbortOnFailure: cfg.Performance.AbortOnFailure,
		}, log),
		synthesizer: synthesizer.New(completer, synthesizer.Options{
			InputBudget: cfg.LLM.InputBudget,
			Chunking:    chunking,
			MaxOutput:   cfg.LLM.MaxOutputTokens,
		}, log),
		logger: log,
	}
}

// EnsureDirs creates the working directories.
func (p *Pipeline) EnsureDirs() error {
	dirs := []string{
		p.cfg.Paths.Transcripts,
		p.cfg.Paths.Processed,
		p.cfg.Paths.DailySummaries,
		p.cfg.Paths.MasterSummary,
		p.cfg.Paths.Output,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Run executes the whole pipeline end to end and returns the path of
// the rendered document.
func (p *Pipeline) Run(ctx context.Context) (string, error) {
	if err := p.RunDaily(ctx); err != nil {
		return "", err
	}
	if err := p.RunMaster(ctx); err != nil {
		return "", err
	}
	p.RunFraming(ctx)
	return p.RunRender(ctx)
}

// RunDaily normalizes raw transcripts and writes one daily summary
// per source.
func (p *Pipeline) RunDaily(ctx context.Context) error {
	if err := p.EnsureDirs(); err != nil {
		return err
	}

	sources, err := transcript.LoadDir(p.cfg.Paths.Transcripts)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return &EmptyInputError{Scope: "no transcript files in " + p.cfg.Paths.Transcripts}
	}

	p.logger.Info(ctx, "Step 0: normalized %d transcript source(s)", len(sources))
	for _, src := range sources {
		path := filepath.Join(p.cfg.Paths.Processed, src.Name+".txt")
		if err := os.WriteFile(path, []byte(src.Text), 0644); err != nil {
			return fmt.Errorf("write processed transcript: %w", err)
		}
	}

	p.logger.Info(ctx, "Step 1: creating daily summaries")
	res, err := p.summarizer.SummarizeAll(ctx, sources)
	if err != nil {
		return err
	}
	for _, f := range res.Failed {
		p.logger.Warn(ctx, "Skipped source %s: %v", f.Source, f.Err)
	}
	if len(res.Summaries) == 0 {
		return &EmptyInputError{Scope: "no source produced a daily summary"}
	}

	for _, d := range res.Summaries {
		path := filepath.Join(p.cfg.Paths.DailySummaries, d.Source+"_summary.txt")
		if err := os.WriteFile(path, []byte(d.Text), 0644); err != nil {
			return fmt.Errorf("write daily summary: %w", err)
		}
		p.logger.Info(ctx, "Saved daily summary -> %s", path)
	}

	return nil
}

// RunMaster synthesizes the master body from the persisted daily
// summaries.
func (p *Pipeline) RunMaster(ctx context.Context) error {
	summaries, err := p.loadDailySummaries()
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		return &EmptyInputError{Scope: "no daily summaries in " + p.cfg.Paths.DailySummaries}
	}

	p.logger.Info(ctx, "Step 2: synthesizing master body from %d daily summaries", len(summaries))
	body, err := p.synthesizer.Master(ctx, summaries)
	if err != nil {
		return err
	}

	path := p.masterPath()
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return fmt.Errorf("write master summary: %w", err)
	}
	p.logger.Info(ctx, "Saved master summary -> %s", path)
	return nil
}

// RunFraming generates the opening and closing paragraphs from the
// persisted master body. Each failure is logged and leaves that
// paragraph out; it never fails the run.
func (p *Pipeline) RunFraming(ctx context.Context) {
	body, err := p.loadMaster()
	if err != nil {
		p.logger.Warn(ctx, "Skipping framing, master body unavailable: %v", err)
		return
	}

	p.logger.Info(ctx, "Step 3: generating framing paragraphs")

	if opening, err := p.synthesizer.Opening(ctx, body); err != nil {
		p.logger.Warn(ctx, "Opening paragraph failed, report will omit it: %v", err)
	} else {
		p.writeFraming(ctx, "opening.txt", opening)
	}

	if closing, err := p.synthesizer.Closing(ctx, body); err != nil {
		p.logger.Warn(ctx, "Closing paragraph failed, report will omit it: %v", err)
	} else {
		p.writeFraming(ctx, "closing.txt", closing)
	}
}

// RunRender assembles the persisted master body and framing into the
// Report model and renders the Word document.
func (p *Pipeline) RunRender(ctx context.Context) (string, error) {
	body, err := p.loadMaster()
	if err != nil {
		return "", err
	}

	opening := p.readFraming("opening.txt")
	closing := p.readFraming("closing.txt")

	rep, err := report.Assemble(body, opening, closing)
	if err != nil {
		p.logger.Warn(ctx, "Master body structure degraded: %v", err)
	}

	name := fmt.Sprintf("Weekly_Consulting_Summary_%s.docx", time.Now().Format("20060102_150405"))
	outPath := filepath.Join(p.cfg.Paths.Output, name)

	p.logger.Info(ctx, "Step 4: rendering document -> %s", outPath)
	if err := report.WriteDocx(rep, time.Now(), p.cfg.Report.Author, outPath); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}

	return outPath, nil
}

// SummarizeOne summarizes a single transcript file into a persisted
// daily summary; the watcher uses it for incremental runs.
func (p *Pipeline) SummarizeOne(ctx context.Context, path string) error {
	if err := p.EnsureDirs(); err != nil {
		return err
	}

	src, err := transcript.LoadFile(path)
	if err != nil {
		return err
	}
	if src.Text == "" {
		return &EmptyInputError{Scope: path}
	}

	text, err := p.summarizer.SummarizeSource(ctx, src)
	if err != nil {
		return fmt.Errorf("summarize %s: %w", src.Name, err)
	}
	if text == "" {
		return &EmptyInputError{Scope: path}
	}

	out := filepath.Join(p.cfg.Paths.DailySummaries, src.Name+"_summary.txt")
	if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		return fmt.Errorf("write daily summary: %w", err)
	}
	p.logger.Info(ctx, "Saved daily summary -> %s", out)
	return nil
}
