package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fadilmartias/cv-feedback/internal/feedback"
)

const ruleWidth = 70

var (
	successColor = lipgloss.Color("#8BC34A")
	warningColor = lipgloss.Color("#FFC107")
	errorColor   = lipgloss.Color("#e53935")
	infoColor    = lipgloss.Color("#2196F3")
	mutedColor   = lipgloss.Color("#6b7280")
)

// Styles maps fragment styles to terminal styles.
type Styles map[feedback.Style]lipgloss.Style

// DefaultStyles returns the terminal palette.
func DefaultStyles() Styles {
	return Styles{
		feedback.StyleTitle:     lipgloss.NewStyle().Bold(true).Underline(true),
		feedback.StyleBold:      lipgloss.NewStyle().Bold(true),
		feedback.StyleSuccess:   lipgloss.NewStyle().Foreground(successColor),
		feedback.StyleWarning:   lipgloss.NewStyle().Foreground(warningColor),
		feedback.StyleError:     lipgloss.NewStyle().Foreground(errorColor).Bold(true),
		feedback.StyleInfo:      lipgloss.NewStyle().Foreground(infoColor),
		feedback.StyleSeparator: lipgloss.NewStyle().Foreground(mutedColor),
	}
}

// Text renders fragments for a terminal. A nil Styles renders plain text.
func Text(frags []feedback.Fragment, styles Styles) string {
	var b strings.Builder
	var prev feedback.Style
	for i, f := range frags {
		if i > 0 && f.Style == feedback.StyleBold && prev != feedback.StyleBold && prev != feedback.StyleSeparator {
			b.WriteByte('\n')
		}
		text := f.Text
		if f.Style == feedback.StyleSeparator {
			text = strings.Repeat("─", ruleWidth)
		}
		if st, ok := styles[f.Style]; ok {
			text = st.Render(text)
		}
		b.WriteString(text)
		b.WriteByte('\n')
		prev = f.Style
	}
	return b.String()
}
