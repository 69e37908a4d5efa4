package testutil

import (
	"strings"
	"sync"

	"przypadek/internal/lexicon"
)

// TestCommonWords is a small common-word list for fixtures
const TestCommonWords = "cat\ndog\nfox\nhouse\napple\n"

// TestNouns is a small tab-delimited noun list for fixtures
const TestNouns = "cat\tkot\ndog\tpies\nfox\tlis\nhouse\tdom\napple\tjabłko\n"

// NewTestLexicon builds a lexicon from the fixture lists
func NewTestLexicon(opts ...lexicon.Option) (*lexicon.Lexicon, error) {
	return lexicon.Load(strings.NewReader(TestCommonWords), strings.NewReader(TestNouns), opts...)
}

// SequencePicker returns a picker that yields the given indexes in order, wrapping
// around at the end. Each index is clamped to the range asked for.
func SequencePicker(indexes ...int) func(n int) int {
	var mu sync.Mutex
	next := 0
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()

		i := indexes[next%len(indexes)]
		next++
		if i >= n {
			i = n - 1
		}
		return i
	}
}
