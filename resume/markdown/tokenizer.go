// Package markdown tokenizes the small markdown dialect accepted in section
// content: **bold**, *italic*, line-leading bullets and "## " sub-headings.
//
// Tokenization never fails. Markers that do not pair on the same line are
// kept as literal text.
package markdown

import (
	"strings"

	"docx-export-api/resume/model"
)

// style is the scanner state: plain, in-bold, in-italic or both.
type style struct {
	bold   bool
	italic bool
}

type tokenizer struct {
	runs []model.Run
	buf  strings.Builder
	cur  style
}

// Tokenize splits text into styled runs. The concatenated run text equals
// the input minus the markers that were paired. Adjacent runs never share
// the same style.
func Tokenize(text string) []model.Run {
	if text == "" {
		return nil
	}
	var t tokenizer
	t.scan(text, style{})
	t.flush()
	return t.runs
}

func (t *tokenizer) emit(text string, st style) {
	if text == "" {
		return
	}
	if st != t.cur {
		t.flush()
		t.cur = st
	}
	t.buf.WriteString(text)
}

func (t *tokenizer) flush() {
	if t.buf.Len() == 0 {
		return
	}
	t.runs = append(t.runs, model.Run{
		Text:   t.buf.String(),
		Bold:   t.cur.bold,
		Italic: t.cur.italic,
	})
	t.buf.Reset()
}

// scan walks s left to right. Bold is tried before italic; a paired span is
// re-scanned with the added style so nested markers resolve from the outside in.
func (t *tokenizer) scan(s string, st style) {
	plainStart := 0
	i := 0
	for i < len(s) {
		if s[i] != '*' {
			i++
			continue
		}

		double := i+1 < len(s) && s[i+1] == '*'

		if double && !st.bold {
			if end := boldCloser(s, i); end >= 0 {
				t.emit(s[plainStart:i], st)
				t.scan(s[i+2:end], style{bold: true, italic: st.italic})
				i = end + 2
				plainStart = i
				continue
			}
			// Unpaired "**": the first star is literal, the second may
			// still open an italic span.
			i++
			continue
		}

		if !double && !st.italic {
			if end := italicCloser(s, i); end >= 0 {
				t.emit(s[plainStart:i], st)
				t.scan(s[i+1:end], style{bold: st.bold, italic: true})
				i = end + 1
				plainStart = i
				continue
			}
		}
		i++
	}
	t.emit(s[plainStart:], st)
}

// boldCloser returns the index of the closing "**" for an opener at open, or
// -1. Content must be non-empty. When the opener is part of a longer star run
// ("***x***") the closer is the last two stars of the closing run, leaving
// the inner stars to the interior scan.
func boldCloser(s string, open int) int {
	greedy := open+2 < len(s) && s[open+2] == '*'
	for j := open + 3; j+1 < len(s); j++ {
		if s[j] != '*' || s[j+1] != '*' {
			continue
		}
		end := j
		if greedy {
			for end+2 < len(s) && s[end+2] == '*' {
				end++
			}
		}
		return end
	}
	return -1
}

// italicCloser returns the index of the single "*" closing an italic span
// opened at open, or -1. Stars that are part of a "**" pair never close.
func italicCloser(s string, open int) int {
	for j := open + 2; j < len(s); j++ {
		if s[j] != '*' {
			continue
		}
		if s[j-1] == '*' || (j+1 < len(s) && s[j+1] == '*') {
			continue
		}
		return j
	}
	return -1
}
