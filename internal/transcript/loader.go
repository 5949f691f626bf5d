package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var supportedExts = map[string]bool{
	".srt": true,
	".vtt": true,
	".txt": true,
}

// LoadFile reads and cleans a single transcript file.
func LoadFile(path string) (Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("read transcript %s: %w", path, err)
	}

	format := FormatForPath(path)
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	return Source{
		Name:   name,
		Format: format,
		Text:   strings.TrimSpace(Clean(format, string(raw))),
	}, nil
}

// LoadDir reads every supported transcript file in dir. Files sharing
// a stem (e.g. Monday.srt and Monday.vtt) are combined into one Source
// so each source covers a full day. Sources with no usable text are
// dropped. Results are ordered by name.
func LoadDir(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read transcripts dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if supportedExts[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	grouped := make(map[string][]string)
	var order []string
	for _, p := range paths {
		base := filepath.Base(p)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		if _, ok := grouped[stem]; !ok {
			order = append(order, stem)
		}
		grouped[stem] = append(grouped[stem], p)
	}
	sort.Strings(order)

	var sources []Source
	for _, stem := range order {
		var parts []string
		format := FormatPlain
		for _, p := range grouped[stem] {
			src, err := LoadFile(p)
			if err != nil {
				return nil, err
			}
			if src.Text == "" {
				continue
			}
			parts = append(parts, src.Text)
			format = src.Format
		}
		if len(parts) == 0 {
			continue
		}
		sources = append(sources, Source{
			Name:   stem,
			Format: format,
			Text:   strings.Join(parts, "\n\n"),
		})
	}

	return sources, nil
}
