package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCommonWords = `cat
 dog
house
apple
tree

Paris
`

const testCandidates = "cat\tkot\n" +
	"Dog\tpies,psy\n" +
	"house\tdom\n" +
	"tree house\tdrzewo\n" +
	"cat2\tx\n" +
	"paris\tParyż\n" +
	"Apple\tjabłko\n" +
	"\t\n"

func TestLoad(t *testing.T) {
	lex, err := Load(strings.NewReader(testCommonWords), strings.NewReader(testCandidates))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"cat", "dog", "house", "apple"}, lex.Nouns())
	assert.Equal(t, 4, lex.Size())
}

func TestLoad_NounsAreAlphabetic(t *testing.T) {
	lex, err := Load(strings.NewReader(testCommonWords), strings.NewReader(testCandidates))
	require.NoError(t, err)

	for _, noun := range lex.Nouns() {
		assert.NotEmpty(t, noun)
		for _, r := range noun {
			assert.True(t, unicode.IsLetter(r), "noun %q contains %q", noun, r)
		}
	}
}

func TestLoad_Deduplicates(t *testing.T) {
	lex, err := Load(
		strings.NewReader("cat\n"),
		strings.NewReader("cat\tCat\nCAT\tcat\n"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"cat"}, lex.Nouns())
}

func TestLoad_NoValidNouns(t *testing.T) {
	tests := []struct {
		name       string
		common     string
		candidates string
	}{
		{
			name:       "empty sources",
			common:     "",
			candidates: "",
		},
		{
			name:       "no intersection",
			common:     "cat\ndog\n",
			candidates: "kot\tpies\n",
		},
		{
			name:       "only non-alphabetic candidates",
			common:     "cat\n",
			candidates: "cat1\tc-a-t\t cat\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex, err := Load(strings.NewReader(tt.common), strings.NewReader(tt.candidates))
			assert.Nil(t, lex)
			assert.True(t, errors.Is(err, ErrNoNouns))
		})
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	commonPath := filepath.Join(dir, "english-words.txt")
	nounsPath := filepath.Join(dir, "nouns.txt")
	require.NoError(t, os.WriteFile(commonPath, []byte(testCommonWords), 0o644))
	require.NoError(t, os.WriteFile(nounsPath, []byte(testCandidates), 0o644))

	lex, err := LoadFiles(commonPath, nounsPath)
	require.NoError(t, err)
	assert.Equal(t, 4, lex.Size())
}

func TestLoadFiles_Missing(t *testing.T) {
	dir := t.TempDir()
	commonPath := filepath.Join(dir, "english-words.txt")
	require.NoError(t, os.WriteFile(commonPath, []byte(testCommonWords), 0o644))

	tests := []struct {
		name       string
		common     string
		candidates string
		missing    string
	}{
		{
			name:       "missing common words",
			common:     filepath.Join(dir, "nope.txt"),
			candidates: commonPath,
			missing:    "nope.txt",
		},
		{
			name:       "missing candidates",
			common:     commonPath,
			candidates: filepath.Join(dir, "gone.txt"),
			missing:    "gone.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex, err := LoadFiles(tt.common, tt.candidates)
			assert.Nil(t, lex)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestLexicon_RandomPairing(t *testing.T) {
	lex, err := Load(strings.NewReader(testCommonWords), strings.NewReader(testCandidates))
	require.NoError(t, err)

	phrase := regexp.MustCompile(`^[a-z]+ [a-z]+$`)
	for i := 0; i < 200; i++ {
		assert.Regexp(t, phrase, lex.RandomPairing())
	}
}

func TestLexicon_WithPicker(t *testing.T) {
	var calls []int
	pick := func(n int) int {
		calls = append(calls, n)
		return n - 1
	}

	lex, err := Load(
		strings.NewReader("cat\ndog\n"),
		strings.NewReader("cat\ndog\n"),
		WithPicker(pick),
	)
	require.NoError(t, err)

	assert.Equal(t, "polish dog", lex.RandomPairing())
	assert.Equal(t, []int{len(adjectives), 2}, calls)
}

func TestLexicon_WithNilPickerKeepsDefault(t *testing.T) {
	lex, err := Load(strings.NewReader("cat\n"), strings.NewReader("cat\n"), WithPicker(nil))
	require.NoError(t, err)

	assert.Equal(t, "cat", lex.RandomNoun())
}

func TestAdjectives(t *testing.T) {
	list := Adjectives()
	assert.Len(t, list, 53)
	assert.Equal(t, "blue", list[0])
	assert.Equal(t, "polish", list[len(list)-1])

	list[0] = "changed"
	assert.Equal(t, "blue", Adjectives()[0])

	word := regexp.MustCompile(`^[a-z]+$`)
	for _, adj := range list[1:] {
		assert.Regexp(t, word, adj)
	}
}

func TestLoadFiles_BundledResources(t *testing.T) {
	lex, err := LoadFiles(
		filepath.Join("..", "..", "resources", "english-words.txt"),
		filepath.Join("..", "..", "resources", "nouns.txt"),
	)
	require.NoError(t, err)

	word := regexp.MustCompile(`^[a-z]+$`)
	for _, noun := range lex.Nouns() {
		assert.Regexp(t, word, noun)
	}
	assert.Contains(t, lex.Nouns(), "dog")
	assert.NotContains(t, lex.Nouns(), "cream")
	assert.NotContains(t, lex.Nouns(), "ice cream")
}
