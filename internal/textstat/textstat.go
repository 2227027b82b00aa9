// Package textstat computes simple statistics over buffer text for the
// status line and the :stat command.
package textstat

import (
	"strings"

	"github.com/mstrebkov/ledit/internal/buffer"
)

// Stats holds counts for a piece of text. Words use the buffer's
// delimiter definition: maximal runs bounded by spaces or newlines.
type Stats struct {
	Chars int
	Words int
	Lines int
}

// Count returns the statistics for text. Empty text has zero lines.
func Count(text string) Stats {
	st := Stats{Chars: len(text)}
	if len(text) == 0 {
		return st
	}
	st.Lines = strings.Count(text, "\n") + 1
	inWord := false
	for i := 0; i < len(text); i++ {
		if buffer.IsDelimiter(text[i]) {
			inWord = false
			continue
		}
		if !inWord {
			st.Words++
			inWord = true
		}
	}
	return st
}
