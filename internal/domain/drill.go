package domain

// Drill is a rendered sentence waiting for translation
type Drill struct {
	Phrase    string
	Case      GrammaticalCase
	Plurality Plurality
	English   string
}

// CaseResponse is the payload returned to clients.
// Polish holds the translation in whatever target language is configured.
type CaseResponse struct {
	English string `json:"english"`
	Polish  string `json:"polish"`
}
