package browse

import (
	"fmt"
	"strings"

	"github.com/amishk599/careerconnect/internal/model"
)

func renderJobs(jobs []model.Job, cursor int) string {
	if len(jobs) == 0 {
		return "  No jobs found matching your criteria."
	}

	var b strings.Builder
	for i, j := range jobs {
		titleSt := jobTitleStyle
		subtitleSt := jobSubtitleStyle
		prefix := "  "
		if i == cursor {
			titleSt = selectedJobTitleStyle
			subtitleSt = selectedJobSubtitleStyle
			prefix = "> "
		}

		b.WriteString(prefix)
		b.WriteString(titleSt.Render(j.Title))
		b.WriteByte('\n')

		b.WriteString(prefix)
		b.WriteString(subtitleSt.Render(fmt.Sprintf("%s · %s · %s · %s", j.Company, j.Location, j.Type, j.PostedAt)))
		b.WriteByte('\n')

		if i < len(jobs)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func wordWrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) <= width {
			line += " " + w
		} else {
			lines = append(lines, line)
			line = w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

// wrapParagraphs word-wraps each line of text on its own, keeping blank
// lines between paragraphs.
func wrapParagraphs(text string, width int) string {
	paras := strings.Split(text, "\n")
	for i, p := range paras {
		paras[i] = wordWrap(p, width)
	}
	return strings.Join(paras, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
