// Package tokenize turns raw sentences into tagged words.
package tokenize

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Word is a normalized word and the byte offset where it starts in the input.
type Word struct {
	Text   string
	Offset int
}

// Token is a word together with its part-of-speech tag.
type Token struct {
	Word   string
	Tag    string
	Offset int
}

func (t Token) String() string {
	return fmt.Sprintf("%d %s %q", t.Offset, t.Tag, t.Word)
}

// Tagger assigns a part-of-speech tag to a word.
type Tagger interface {
	TagOf(word string) (string, error)
}

// Normalize lowercases text, drops punctuation other than hyphens and
// splits the remainder on whitespace.
func Normalize(text string) []Word {
	var words []Word
	var sb strings.Builder
	start := -1
	flush := func() {
		if sb.Len() > 0 {
			words = append(words, Word{Text: sb.String(), Offset: start})
		}
		sb.Reset()
		start = -1
	}

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsSpace(r):
			flush()
		case (unicode.IsPunct(r) || unicode.IsSymbol(r)) && r != '-':
		default:
			if start < 0 {
				start = i
			}
			sb.WriteRune(unicode.ToLower(r))
		}
		i += size
	}
	flush()
	return words
}

// Tokenize normalizes text and tags every word. The first word the tagger
// rejects aborts tokenization.
func Tokenize(tagger Tagger, text string) ([]Token, error) {
	words := Normalize(text)
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		tag, err := tagger.TagOf(w.Text)
		if err != nil {
			return nil, fmt.Errorf("word at offset %d: %w", w.Offset, err)
		}
		tokens = append(tokens, Token{Word: w.Text, Tag: tag, Offset: w.Offset})
	}
	return tokens, nil
}
