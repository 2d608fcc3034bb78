package ask

import "github.com/kailas-cloud/studentnest/internal/domain/answer"

// Renderer turns synthesized candidates into the text block shown to the user.
type Renderer interface {
	Render(candidates []answer.Candidate) string
}

// Observer records resolved outcomes (metrics).
type Observer interface {
	ObserveAnswer(kind answer.Kind, bestScore int)
}
