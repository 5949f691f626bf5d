package config

import "fmt"

type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Chunking    ChunkingConfig    `yaml:"chunking"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Report      ReportConfig      `yaml:"report"`
}

type LLMConfig struct {
	Provider        string   `yaml:"provider"`
	Model           string   `yaml:"model"`
	APIKeys         []string `yaml:"api_keys"`
	BaseURL         string   `yaml:"base_url"`
	MaxAttempts     int      `yaml:"max_attempts"`
	BackoffMS       int      `yaml:"backoff_ms"`
	MaxOutputTokens int      `yaml:"max_output_tokens"`
	InputBudget     int      `yaml:"input_budget"`
}

type ChunkingConfig struct {
	Length    int `yaml:"length"`
	Overlap   int `yaml:"overlap"`
	Tolerance int `yaml:"tolerance"`
}

type PathsConfig struct {
	Transcripts    string `yaml:"transcripts"`
	Processed      string `yaml:"processed"`
	DailySummaries string `yaml:"daily_summaries"`
	MasterSummary  string `yaml:"master_summary"`
	Output         string `yaml:"output"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent  int  `yaml:"max_concurrent"`
	AbortOnFailure bool `yaml:"abort_on_failure"`
}

type ReportConfig struct {
	Author string `yaml:"author"`
}

func (c *Config) Validate() error {
	if c.Paths.Transcripts == "" {
		return fmt.Errorf("paths.transcripts is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Chunking.Overlap >= c.Chunking.Length && c.Chunking.Length != 0 {
		return fmt.Errorf("chunking.overlap must be smaller than chunking.length")
	}

	if c.Paths.Processed == "" {
		c.Paths.Processed = "data/processed"
	}
	if c.Paths.DailySummaries == "" {
		c.Paths.DailySummaries = "data/summaries_daily"
	}
	if c.Paths.MasterSummary == "" {
		c.Paths.MasterSummary = "data/summaries_master"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "gemini"
	}
	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case "openai":
			c.LLM.Model = "gpt-4o-mini"
		default:
			c.LLM.Model = "gemini-2.5-flash"
		}
	}
	if c.LLM.MaxAttempts == 0 {
		c.LLM.MaxAttempts = 4
	}
	if c.LLM.BackoffMS == 0 {
		c.LLM.BackoffMS = 500
	}
	if c.LLM.InputBudget == 0 {
		c.LLM.InputBudget = 60000
	}
	if c.Chunking.Length == 0 {
		c.Chunking.Length = 15000
	}
	if c.Chunking.Overlap == 0 {
		c.Chunking.Overlap = 800
	}
	if c.Chunking.Tolerance == 0 {
		c.Chunking.Tolerance = c.Chunking.Length / 10
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
