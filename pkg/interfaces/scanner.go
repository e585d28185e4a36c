package interfaces

// UnitKind identifies the content class of a scanned unit.
type UnitKind int

const (
	// UnitProse is renderable text: headings, paragraphs, list items,
	// emphasis, link labels, inline code spans, and table cells.
	UnitProse UnitKind = iota
	// UnitImage is a single image reference, inline or reference style.
	UnitImage
	// UnitCodeBlock is a fenced or indented block of code, counted once per
	// block regardless of how many lines it spans.
	UnitCodeBlock
)

// Unit is one classified piece of a Markdown document. Text carries the
// literal content for prose units, with syntax markers already stripped, and
// is empty for images and code blocks.
type Unit struct {
	Kind UnitKind
	Text string
}

// Scanner walks Markdown source in a single forward pass and hands each
// classified unit to emit, in document order. Any compliant Markdown event
// parser can sit behind this contract; the default implementation uses
// goldmark.
//
// Implementations never fail on malformed input — unterminated constructs
// degrade to best-effort classification. The only errors returned are those
// originated by emit, which aborts the walk. Implementations must be
// stateless so a single instance can be shared across goroutines without
// locking.
type Scanner interface {
	Scan(source []byte, emit func(Unit) error) error
}
