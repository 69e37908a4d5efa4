package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"unicode"
)

// ErrNoNouns is returned when no candidate noun is also a common word
var ErrNoNouns = errors.New("lexicon: no valid nouns")

// Picker returns a uniform index in [0, n)
type Picker func(n int) int

// Lexicon holds the word lists used to build phrases.
// It is read-only after Load and safe for concurrent use as long as the picker is.
type Lexicon struct {
	nouns []string
	pick  Picker
}

// Option configures a Lexicon
type Option func(*Lexicon)

// WithPicker replaces the default random source
func WithPicker(pick Picker) Option {
	return func(l *Lexicon) {
		if pick != nil {
			l.pick = pick
		}
	}
}

// Load builds a lexicon from a common-word list (one word per line) and a
// candidate list whose lines hold tab-separated tokens
func Load(common, candidates io.Reader, opts ...Option) (*Lexicon, error) {
	words, err := readCommonWords(common)
	if err != nil {
		return nil, fmt.Errorf("failed to read common words: %w", err)
	}

	tokens, err := readCandidates(candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate nouns: %w", err)
	}

	l := &Lexicon{pick: rand.IntN}
	for _, opt := range opts {
		opt(l)
	}

	for _, token := range tokens {
		if _, ok := words[token]; ok {
			l.nouns = append(l.nouns, token)
		}
	}
	if len(l.nouns) == 0 {
		return nil, ErrNoNouns
	}

	return l, nil
}

// LoadFiles opens both word lists from disk and calls Load
func LoadFiles(commonPath, candidatesPath string, opts ...Option) (*Lexicon, error) {
	common, err := os.Open(commonPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open common words %s: %w", commonPath, err)
	}
	defer common.Close()

	candidates, err := os.Open(candidatesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open candidate nouns %s: %w", candidatesPath, err)
	}
	defer candidates.Close()

	return Load(common, candidates, opts...)
}

// RandomNoun returns a uniformly drawn valid noun
func (l *Lexicon) RandomNoun() string {
	return l.nouns[l.pick(len(l.nouns))]
}

// RandomAdjective returns a uniformly drawn adjective
func (l *Lexicon) RandomAdjective() string {
	return adjectives[l.pick(len(adjectives))]
}

// RandomPairing returns "<adjective> <noun>"
func (l *Lexicon) RandomPairing() string {
	return l.RandomAdjective() + " " + l.RandomNoun()
}

// Nouns returns a copy of the valid nouns
func (l *Lexicon) Nouns() []string {
	out := make([]string, len(l.nouns))
	copy(out, l.nouns)
	return out
}

// Size returns the number of valid nouns
func (l *Lexicon) Size() int {
	return len(l.nouns)
}

func readCommonWords(r io.Reader) (map[string]struct{}, error) {
	words := make(map[string]struct{})
	scanner := newScanner(r)
	for scanner.Scan() {
		words[strings.TrimSpace(scanner.Text())] = struct{}{}
	}
	return words, scanner.Err()
}

// readCandidates returns lowercased, letters-only tokens in first-seen order without duplicates
func readCandidates(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	var tokens []string

	scanner := newScanner(r)
	for scanner.Scan() {
		for _, field := range strings.Split(scanner.Text(), "\t") {
			if !isWord(field) {
				continue
			}
			token := strings.ToLower(field)
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}
	return tokens, scanner.Err()
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}
