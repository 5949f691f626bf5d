package llm

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/report-flow/internal/config"
)

// NewProvider builds the configured provider. API keys fall back to
// the conventional environment variables when the config omits them.
func NewProvider(cfg config.LLMConfig) (Completer, error) {
	keys := cfg.APIKeys

	switch cfg.Provider {
	case "gemini", "":
		if len(keys) == 0 {
			if k := os.Getenv("GEMINI_API_KEY"); k != "" {
				keys = []string{k}
			}
		}
		return NewGemini(keys, cfg.Model)
	case "openai":
		token := ""
		if len(keys) > 0 {
			token = keys[0]
		} else {
			token = os.Getenv("OPENAI_API_KEY")
		}
		return NewOpenAI(token, cfg.BaseURL, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
