package lexicon

var adjectives = []string{
	"blue",
	"green",
	"yellow",
	"ugly",
	"dirty",
	"perfect",
	"modern",
	"old",
	"new",
	"big",
	"small",
	"wooden",
	"round",
	"expensive",
	"cheap",
	"nice",
	"brown",
	"colourful",
	"boring",
	"grey",
	"positive",
	"shiny",
	"wet",
	"dry",
	"straight",
	"bad",
	"wise",
	"tall",
	"short",
	"huge",
	"golden",
	"pink",
	"important",
	"loud",
	"intelligent",
	"high",
	"white",
	"black",
	"violet",
	"fat",
	"thin",
	"soft",
	"hard",
	"metal",
	"happy",
	"cheerful",
	"sad",
	"hungry",
	"thirsty",
	"sick",
	"loving",
	"english",
	"polish",
}

// Adjectives returns a copy of the fixed adjective list
func Adjectives() []string {
	out := make([]string, len(adjectives))
	copy(out, adjectives)
	return out
}
