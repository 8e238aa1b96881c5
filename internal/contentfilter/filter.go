// Package contentfilter masks banned words in post content before storage.
//
// Matching is case-insensitive exact-substring: no word-boundary awareness,
// so "abadword1z" is masked too. The filter runs once at submission time and
// is never re-applied to stored posts.
package contentfilter

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Mask is the fixed-length replacement for every banned word.
const Mask = "****"

var defaultBannedWords = []string{"badword1", "badword2", "badword3"}

// Filter replaces banned words in text with Mask.
type Filter struct {
	patterns []*regexp.Regexp
}

// New builds a Filter for the given banned-word list. Empty entries are
// ignored. With a nil or empty list the default banned words apply.
func New(words []string) *Filter {
	if len(words) == 0 {
		words = defaultBannedWords
	}
	f := &Filter{}
	for _, w := range words {
		if w == "" {
			continue
		}
		f.patterns = append(f.patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(w)))
	}
	return f
}

// Clean returns text with every banned-word occurrence replaced by Mask.
func (f *Filter) Clean(text string) string {
	for _, p := range f.patterns {
		text = p.ReplaceAllLiteralString(text, Mask)
	}
	return text
}

// wordList is the YAML shape of an override file.
type wordList struct {
	BannedWords []string `yaml:"banned_words"`
}

// LoadWordList reads a banned-word override file. The file holds a
// `banned_words` string list.
func LoadWordList(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	var list wordList
	if err := yaml.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse word list %s: %w", path, err)
	}
	return list.BannedWords, nil
}

// FromConfig builds a Filter from an optional override file path. An empty
// path yields the default list.
func FromConfig(path string) (*Filter, error) {
	if path == "" {
		return New(nil), nil
	}
	words, err := LoadWordList(path)
	if err != nil {
		return nil, err
	}
	return New(words), nil
}
