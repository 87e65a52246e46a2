// Package render turns report fragments into HTML or terminal text.
package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/fadilmartias/cv-feedback/internal/feedback"
	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = newHTMLPolicy()

func newHTMLPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("div", "br")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^result-[a-z]+$`)).OnElements("div")
	return p
}

// HTML renders fragments as result-* classed divs, the markup the web page styles.
func HTML(frags []feedback.Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		if f.Style == feedback.StyleSeparator {
			b.WriteString(`<div class="result-separator"></div>`)
			b.WriteByte('\n')
			continue
		}
		text := strings.ReplaceAll(html.EscapeString(f.Text), "\n", "<br>")
		fmt.Fprintf(&b, `<div class="result-%s">%s</div>`, html.EscapeString(string(f.Style)), text)
		b.WriteByte('\n')
	}
	return htmlPolicy.Sanitize(b.String())
}
