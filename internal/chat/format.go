package chat

import "strings"

// BlockKind classifies one rendered line of a model reply.
type BlockKind int

const (
	// Paragraph is a plain text line.
	Paragraph BlockKind = iota
	// Heading is a line ending in ":".
	Heading
	// Bullet is a line starting with "* " or "- ".
	Bullet
	// Spacer is a blank line rendered as vertical spacing.
	Spacer
)

// Span is a run of text with uniform styling.
type Span struct {
	Text string
	Bold bool
}

// Block is one formatted line of output.
type Block struct {
	Kind  BlockKind
	Spans []Span
}

// Format splits a model reply into presentational blocks using the
// literal markers the assistant is prompted to emit: trailing ":" for
// headings, "*"/"- " for bullets, "**...**" for bold, blank lines for
// spacing. Anything else is a plain paragraph; there is no semantic
// markdown parsing beyond these markers.
func Format(text string) []Block {
	var blocks []Block
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			blocks = append(blocks, Block{Kind: Spacer})
		case strings.HasPrefix(line, "* "):
			blocks = append(blocks, Block{Kind: Bullet, Spans: boldSpans(line[2:])})
		case strings.HasPrefix(line, "- "):
			blocks = append(blocks, Block{Kind: Bullet, Spans: boldSpans(line[2:])})
		case strings.HasSuffix(line, ":"):
			blocks = append(blocks, Block{Kind: Heading, Spans: boldSpans(line)})
		default:
			blocks = append(blocks, Block{Kind: Paragraph, Spans: boldSpans(line)})
		}
	}
	return blocks
}

// boldSpans splits a line on "**...**" pairs. An unmatched "**" is
// treated as literal text.
func boldSpans(line string) []Span {
	var spans []Span
	for line != "" {
		open := strings.Index(line, "**")
		if open < 0 {
			spans = append(spans, Span{Text: line})
			break
		}
		end := strings.Index(line[open+2:], "**")
		if end < 0 {
			spans = append(spans, Span{Text: line})
			break
		}

		if open > 0 {
			spans = append(spans, Span{Text: line[:open]})
		}
		spans = append(spans, Span{Text: line[open+2 : open+2+end], Bold: true})
		line = line[open+end+4:]
	}
	return spans
}
