package feedback

import "strings"

// Style is the semantic class a renderer maps to visual styling.
type Style string

const (
	StyleTitle     Style = "title"
	StyleBold      Style = "bold"
	StyleSuccess   Style = "success"
	StyleWarning   Style = "warning"
	StyleError     Style = "error"
	StyleInfo      Style = "info"
	StylePlain     Style = "plain"
	StyleSeparator Style = "separator"
)

// Fragment is one styled piece of the report. Text may span several lines.
type Fragment struct {
	Style Style  `json:"style"`
	Text  string `json:"text,omitempty"`
}

type fragments []Fragment

func (f *fragments) add(style Style, lines ...string) {
	*f = append(*f, Fragment{Style: style, Text: strings.Join(lines, "\n")})
}

func (f *fragments) separator() {
	*f = append(*f, Fragment{Style: StyleSeparator})
}

// block is a bold heading followed by plain body lines.
type block struct {
	Heading string
	Lines   []string
}

func (f *fragments) block(b block) {
	f.add(StyleBold, b.Heading)
	if len(b.Lines) > 0 {
		f.add(StylePlain, b.Lines...)
	}
}
