package report

// BlockKind distinguishes the two content shapes under a section.
type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindBullets
)

// Block is either one prose paragraph (Text) or one group of
// consecutive bullet items (Items).
type Block struct {
	Kind  BlockKind
	Text  string
	Items []string
}

// Section is one topic of the report body: a header line followed by
// paragraphs and bullet groups in source order. The header is empty
// for the unheaded fallback section.
type Section struct {
	Header string
	Blocks []Block
}

// Report is the final structured document handed to the renderer.
// Opening and Closing are the framing paragraphs; either may be empty
// when its generation failed, and the renderer simply omits it.
type Report struct {
	Opening  string
	Sections []Section
	Closing  string
}

// ParseError reports that the master body did not conform to the
// expected header/paragraph/bullet shape. The assembler still returns
// a degraded report alongside it; callers log and continue.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse master body: " + e.Reason
}
