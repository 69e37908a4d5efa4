package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// GrammaticalCase selects the English sentence frame a phrase is put into
type GrammaticalCase int

const (
	// Instrumental renders "I am <phrase>"
	Instrumental GrammaticalCase = iota
	// Accusative renders "I have <phrase>"
	Accusative
	// GenitiveNegative renders "I do not have <phrase>"
	GenitiveNegative
)

// Cases lists every grammatical case in declaration order
var Cases = []GrammaticalCase{Instrumental, Accusative, GenitiveNegative}

var casePrefixes = map[GrammaticalCase]string{
	Instrumental:     "I am ",
	Accusative:       "I have ",
	GenitiveNegative: "I do not have ",
}

func (c GrammaticalCase) String() string {
	switch c {
	case Instrumental:
		return "instrumental"
	case Accusative:
		return "accusative"
	case GenitiveNegative:
		return "genitive_negative"
	default:
		return fmt.Sprintf("case(%d)", int(c))
	}
}

// Plurality toggles naive "s" suffixation of the phrase
type Plurality int

const (
	Singular Plurality = iota
	Plural
)

// Pluralities lists every plurality in declaration order
var Pluralities = []Plurality{Singular, Plural}

func (p Plurality) String() string {
	if p == Plural {
		return "plural"
	}
	return "singular"
}

// Apply appends "s" to the whole phrase when plural
func (p Plurality) Apply(phrase string) string {
	if p == Plural {
		return phrase + "s"
	}
	return phrase
}

// Article returns the indefinite article for the phrase, including its trailing space.
// Only the first character of the phrase is inspected, so for "adjective noun"
// phrases the adjective decides between "a" and "an".
func Article(p Plurality, phrase string) string {
	if p == Plural {
		return ""
	}
	if phrase != "" && strings.ContainsRune("aeiou", unicode.ToLower(rune(phrase[0]))) {
		return "an "
	}
	return "a "
}

// Render puts the phrase into the sentence frame of the given case
func Render(c GrammaticalCase, p Plurality, phrase string) string {
	prefix, ok := casePrefixes[c]
	if !ok {
		panic(fmt.Sprintf("domain: unknown grammatical case %d", int(c)))
	}
	return prefix + Article(p, phrase) + p.Apply(phrase)
}

// Capitalize uppercases the first letter and leaves the rest untouched
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
