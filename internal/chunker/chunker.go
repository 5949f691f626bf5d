package chunker

import (
	"strings"
	"unicode/utf8"
)

// Chunk is a bounded slice of one source's text. Overlap is the number
// of bytes at the head of Text that also appear at the tail of the
// previous chunk; it is always 0 for the first chunk. Concatenating
// Text[Overlap:] across chunks (with the first chunk whole) rebuilds
// the original input byte for byte.
type Chunk struct {
	Source  string
	Index   int
	Text    string
	Overlap int
}

// Options controls segmentation. Sizes are in bytes. Overlap must be
// smaller than Length; chunk starts are aligned to rune boundaries, so
// the realized overlap can run a few bytes past it for multi-byte
// text. Tolerance is the window, measured back from the length limit,
// searched for a paragraph or sentence boundary before falling back to
// a hard cut; zero picks Length/10.
type Options struct {
	Length    int
	Overlap   int
	Tolerance int
}

func (o Options) withDefaults() Options {
	if o.Length <= 0 {
		o.Length = 15000
	}
	if o.Overlap < 0 || o.Overlap >= o.Length {
		o.Overlap = o.Length / 10
	}
	if o.Tolerance <= 0 || o.Tolerance >= o.Length {
		o.Tolerance = o.Length / 10
	}
	return o
}

// Split segments text into chunks covering the whole input with no
// gaps. Input at or under the length budget comes back as a single
// chunk with no overlap; empty input yields no chunks.
func Split(source, text string, opts Options) []Chunk {
	if text == "" {
		return nil
	}

	opts = opts.withDefaults()

	if len(text) <= opts.Length {
		return []Chunk{{Source: source, Index: 0, Text: text}}
	}

	var chunks []Chunk
	start := 0
	prevEnd := 0

	for start < len(text) {
		end := start + opts.Length
		if end >= len(text) {
			end = len(text)
		} else {
			end = breakPoint(text, start, end, opts.Tolerance, prevEnd)
			if end <= start {
				end = start + opts.Length
			}
		}

		chunks = append(chunks, Chunk{
			Source:  source,
			Index:   len(chunks),
			Text:    text[start:end],
			Overlap: prevEnd - start,
		})

		if end == len(text) {
			break
		}

		next := end - opts.Overlap
		for next > start && !utf8.RuneStart(text[next]) {
			next--
		}
		if next <= start {
			next = end
		}
		prevEnd = end
		start = next
	}

	return chunks
}

// breakPoint picks a cut position no later than limit, preferring a
// paragraph break, then a sentence end, inside the tolerance window.
// Without either it hard-cuts at the nearest rune boundary. The window
// never reaches back past floor, so a break that produced an earlier
// cut cannot be selected again.
func breakPoint(text string, start, limit, tolerance, floor int) int {
	windowStart := limit - tolerance
	if windowStart <= floor {
		windowStart = floor + 1
	}
	if windowStart <= start {
		windowStart = start + 1
	}

	if windowStart < limit {
		window := text[windowStart:limit]

		if i := strings.LastIndex(window, "\n\n"); i >= 0 {
			return windowStart + i + 2
		}

		best := -1
		for _, sep := range []string{". ", ".\n", "? ", "?\n", "! ", "!\n", "\n"} {
			if i := strings.LastIndex(window, sep); i >= 0 && i+len(sep) > best {
				best = i + len(sep)
			}
		}
		if best > 0 {
			return windowStart + best
		}
	}

	// Hard cut; never split a rune.
	for limit > start && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return limit
}
