// Package lexicon maps words to their part-of-speech tags.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"
)

// Lexicon is a word to tag dictionary. Words are stored lowercased.
type Lexicon struct {
	words map[string]string
}

// New returns an empty lexicon.
func New() *Lexicon {
	return &Lexicon{words: make(map[string]string)}
}

// Add defines the tag of word, replacing any earlier definition.
func (l *Lexicon) Add(word, tag string) {
	l.words[strings.ToLower(word)] = tag
}

// TagOf returns the tag of word.
func (l *Lexicon) TagOf(word string) (string, error) {
	tag, ok := l.words[word]
	if !ok {
		return "", &Error{Word: word, Msg: fmt.Sprintf("the word %q is not in the lexicon", word)}
	}
	return tag, nil
}

// Preterminals returns the distinct tags used by the lexicon, sorted.
func (l *Lexicon) Preterminals() []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, tag := range l.words {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Words returns every word in the lexicon, sorted.
func (l *Lexicon) Words() []string {
	words := make([]string, 0, len(l.words))
	for w := range l.words {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

func (l *Lexicon) Len() int {
	return len(l.words)
}

var entryPattern = regexp.MustCompile(`^([\w\-]+)\s+([\w\-]+)$`)

// Load reads a lexicon from the file at path.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{File: path, Msg: "could not open lexicon", Err: err}
	}
	defer f.Close()

	return Parse(path, f)
}

// Parse reads "word TAG" lines. A '#' starts a comment running to the end
// of the line.
func Parse(filename string, r io.Reader) (*Lexicon, error) {
	l := New()
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := entryPattern.FindStringSubmatch(line)
		if m == nil {
			return nil, &Error{File: filename, Line: lineno, Msg: fmt.Sprintf("problem parsing %q", line)}
		}
		l.Add(m[1], m[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{File: filename, Msg: "read lexicon", Err: err}
	}
	return l, nil
}
