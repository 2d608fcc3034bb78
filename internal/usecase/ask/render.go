package ask

import (
	"strings"

	"github.com/kailas-cloud/studentnest/internal/domain/answer"
)

// Default wording of the synthesized answer block.
const (
	synthIntro   = "I couldn't find one exact answer, but these may help:\n\n"
	synthBullet  = "• "
	synthClosing = "Not what you were looking for? Try rephrasing your question or contact student support."
)

// PlainRenderer renders a synthesized answer as intro, one bullet per candidate, closing prompt.
type PlainRenderer struct{}

// Render writes "• <question>\n<answer>\n\n" per candidate in the given order.
func (PlainRenderer) Render(candidates []answer.Candidate) string {
	var sb strings.Builder
	sb.WriteString(synthIntro)
	for _, c := range candidates {
		sb.WriteString(synthBullet)
		sb.WriteString(c.Record().Question())
		sb.WriteString("\n")
		sb.WriteString(c.Record().Answer())
		sb.WriteString("\n\n")
	}
	sb.WriteString(synthClosing)
	return sb.String()
}

// Suggestions are the static next actions shown when nothing matched.
func Suggestions() []string {
	return []string{
		"Try rephrasing your question with different keywords",
		"Browse the FAQ by category",
		"Contact student support",
	}
}
