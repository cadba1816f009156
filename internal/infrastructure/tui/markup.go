package tui

import "strings"

// renderMarkup renders a description line, highlighting *starred* spans in
// the accent color. Unbalanced stars render literally.
func renderMarkup(line string) string {
	var b strings.Builder
	for {
		open := strings.IndexByte(line, '*')
		if open < 0 {
			b.WriteString(textStyle.Render(line))
			break
		}
		end := strings.IndexByte(line[open+1:], '*')
		if end < 0 {
			b.WriteString(textStyle.Render(line))
			break
		}
		end += open + 1

		if open > 0 {
			b.WriteString(textStyle.Render(line[:open]))
		}
		b.WriteString(accentStyle.Render(line[open+1 : end]))
		line = line[end+1:]
	}
	return b.String()
}
