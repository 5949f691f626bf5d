package report

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// The synthesis prompts ask for short standalone header lines without
// trailing punctuation, but models drift into markdown, so both forms
// classify as headers.
var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBullet   = regexp.MustCompile(`^[•\-\*]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

const maxHeaderLen = 60

// Assemble deterministically parses the master body into sections and
// attaches the framing paragraphs. It always returns a usable Report;
// when the body has no recognizable header structure the whole body
// becomes one unheaded section and the returned error is a *ParseError
// the caller may log and ignore. Assembling the same inputs twice
// yields identical Reports.
func Assemble(masterBody, opening, closing string) (*Report, error) {
	r := &Report{
		Opening: strings.TrimSpace(opening),
		Closing: strings.TrimSpace(closing),
	}

	lines := strings.Split(masterBody, "\n")
	var (
		current   *Section
		bullets   []string
		sawHeader bool
		prevBlank = true
	)

	flushBullets := func() {
		if len(bullets) == 0 {
			return
		}
		current.Blocks = append(current.Blocks, Block{Kind: KindBullets, Items: bullets})
		bullets = nil
	}
	openSection := func(header string) {
		if current != nil {
			flushBullets()
			r.Sections = append(r.Sections, *current)
		}
		current = &Section{Header: header}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || line == "---" {
			prevBlank = true
			continue
		}

		if header, ok := classifyHeader(line, prevBlank); ok {
			openSection(header)
			sawHeader = true
			prevBlank = false
			continue
		}
		prevBlank = false

		if current == nil {
			current = &Section{}
		}

		if item, ok := bulletText(line); ok {
			bullets = append(bullets, item)
			continue
		}

		flushBullets()
		current.Blocks = append(current.Blocks, Block{Kind: KindParagraph, Text: line})
	}

	if current != nil {
		flushBullets()
		r.Sections = append(r.Sections, *current)
	}

	if len(r.Sections) == 0 {
		return r, &ParseError{Reason: "empty body"}
	}
	if !sawHeader {
		return r, &ParseError{Reason: "no section headers found"}
	}
	return r, nil
}

// classifyHeader applies the fixed line-classification rule: markdown
// headings always count; otherwise the line must stand alone after a
// blank line, be short, not be a bullet, and not end in terminal
// punctuation.
func classifyHeader(line string, prevBlank bool) (string, bool) {
	if m := reHeading.FindStringSubmatch(line); m != nil {
		return cleanInline(m[2]), true
	}
	if !prevBlank {
		return "", false
	}
	if reBullet.MatchString(line) || reNumbered.MatchString(line) {
		return "", false
	}
	text := cleanInline(line)
	if text == "" || utf8.RuneCountInString(text) > maxHeaderLen {
		return "", false
	}
	if strings.ContainsAny(lastRune(text), ".!?:;,") {
		return "", false
	}
	return text, true
}

func bulletText(line string) (string, bool) {
	if m := reBullet.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	if m := reNumbered.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	return "", false
}

func lastRune(s string) string {
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return string(r)
}

func cleanInline(s string) string {
	return strings.TrimSpace(cleanMarkdownInline(s))
}
