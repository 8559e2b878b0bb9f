package parser

// Context holds usage examples and translation candidates for a phrase.
type Context struct {
	OK           bool       `json:"ok"`
	Text         string     `json:"text"`
	Source       string     `json:"source"`
	Target       string     `json:"target"`
	Translations []string   `json:"translations"`
	Examples     []*Example `json:"examples"`
}

type Example struct {
	ID     int    `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Translation is the result of machine translation with optional usage
// context and a link to the pronunciation of the first translation.
type Translation struct {
	OK               bool                `json:"ok"`
	Text             string              `json:"text"`
	Source           string              `json:"source"`
	Target           string              `json:"target"`
	Translations     []string            `json:"translations"`
	Context          *TranslationContext `json:"context,omitempty"`
	DetectedLanguage string              `json:"detected_language"`
	Voice            string              `json:"voice,omitempty"`
}

type TranslationContext struct {
	Examples []*ContextExample `json:"examples"`
	Rude     bool              `json:"rude"`
}

type ContextExample struct {
	ID            int      `json:"id"`
	Source        string   `json:"source"`
	Target        string   `json:"target"`
	SourcePhrases []string `json:"source_phrases,omitempty"`
	TargetPhrases []string `json:"target_phrases,omitempty"`
}

// SpellCheck lists corrections found in a text.
type SpellCheck struct {
	OK          bool          `json:"ok"`
	Text        string        `json:"text"`
	Source      string        `json:"source"`
	Corrected   string        `json:"corrected"`
	Corrections []*Correction `json:"corrections"`
}

type Correction struct {
	ID          int           `json:"id"`
	Text        string        `json:"text"`
	Type        string        `json:"type"`
	Explanation string        `json:"explanation"`
	Corrected   string        `json:"corrected"`
	StartIndex  int           `json:"start_index"`
	EndIndex    int           `json:"end_index"`
	Suggestions []*Suggestion `json:"suggestions,omitempty"`
}

type Suggestion struct {
	Text       string `json:"text"`
	Definition string `json:"definition,omitempty"`
	Category   string `json:"category,omitempty"`
}

type Synonyms struct {
	OK       bool       `json:"ok"`
	Text     string     `json:"text"`
	Source   string     `json:"source"`
	Synonyms []*Synonym `json:"synonyms"`
}

type Synonym struct {
	ID      int    `json:"id"`
	Synonym string `json:"synonym"`
}

// Conjugation is a verb table grouped by tense and mood.
type Conjugation struct {
	OK         bool                `json:"ok"`
	Text       string              `json:"text"`
	Source     string              `json:"source"`
	Infinitive string              `json:"infinitive"`
	Groups     []*ConjugationGroup `json:"groups"`
}

type ConjugationGroup struct {
	ID    int         `json:"id"`
	Tense string      `json:"tense"`
	Forms []*VerbForm `json:"forms"`
}

type VerbForm struct {
	ID   int    `json:"id"`
	Form string `json:"form"`
}
