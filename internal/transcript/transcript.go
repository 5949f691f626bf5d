package transcript

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Format identifies how a raw transcript file is laid out.
type Format int

const (
	FormatPlain Format = iota
	FormatSRT
	FormatVTT
)

// Source is one day's transcript: the name it is tracked under
// (typically the filename stem, e.g. "Monday"), its original format
// and the cleaned dialogue text. Immutable once created.
type Source struct {
	Name   string
	Format Format
	Text   string
}

var reCueIndex = regexp.MustCompile(`^\d+$`)

// FormatForPath picks the transcript format from the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return FormatSRT
	case ".vtt":
		return FormatVTT
	default:
		return FormatPlain
	}
}

// Clean strips subtitle cue markup from raw content, keeping only
// dialogue lines. Plain text passes through unchanged.
func Clean(format Format, raw string) string {
	if format == FormatPlain {
		return raw
	}

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if reCueIndex.MatchString(trimmed) || strings.Contains(trimmed, "-->") {
			continue
		}
		if format == FormatVTT && isVTTHeader(trimmed) {
			continue
		}
		lines = append(lines, trimmed)
	}

	return strings.Join(lines, "\n")
}

func isVTTHeader(line string) bool {
	for _, prefix := range []string{"WEBVTT", "NOTE", "STYLE", "REGION"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
