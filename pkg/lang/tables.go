package lang

// Operation names one feature of the remote service.
type Operation string

const (
	Context     Operation = "context"
	Translation Operation = "translation"
	Spelling    Operation = "spelling"
	Synonyms    Operation = "synonyms"
	Conjugation Operation = "conjugation"
)

// Operations lists every supported operation.
var Operations = []Operation{Context, Translation, Spelling, Synonyms, Conjugation}

// Paired reports whether op takes both source and target languages.
func (op Operation) Paired() bool {
	return op == Context || op == Translation
}

var contextLanguages = []string{
	"arabic", "chinese", "dutch", "english", "french", "german", "hebrew", "italian", "japanese",
	"polish", "portuguese", "romanian", "russian", "spanish", "swedish", "turkish", "ukrainian",
}

var majorContextLanguages = []string{
	"dutch", "english", "french", "german", "italian", "polish", "portuguese", "russian", "spanish",
}

var translationLanguages = []string{
	"arabic", "chinese", "dutch", "english", "french", "german", "hebrew", "italian",
	"japanese", "polish", "portuguese", "russian", "spanish", "turkish", "ukrainian",
}

// codes maps identifiers to service codes, one table per operation.
var codes = map[Operation]map[string]string{
	// context.reverso.net uses plain language names in its paths
	Context: identity(contextLanguages),
	Translation: {
		"arabic":     "ara",
		"chinese":    "chi",
		"dutch":      "dut",
		"english":    "eng",
		"french":     "fra",
		"german":     "ger",
		"hebrew":     "heb",
		"italian":    "ita",
		"japanese":   "jpn",
		"polish":     "pol",
		"portuguese": "por",
		"russian":    "rus",
		"spanish":    "spa",
		"turkish":    "tur",
		"ukrainian":  "ukr",
	},
	Spelling: {
		"english": "eng",
		"french":  "fra",
	},
	Synonyms: {
		"english": "en",
		"french":  "fr",
		"german":  "de",
		"russian": "ru",
		"italian": "it",
		"polish":  "pl",
		"spanish": "es",
	},
	Conjugation: identity([]string{
		"arabic", "english", "french", "german", "hebrew",
		"italian", "japanese", "portuguese", "russian", "spanish",
	}),
}

// compatibility maps a source identifier to its allowed targets.
var compatibility = map[Operation]pairing{
	Context: newPairing().
		link("english", contextLanguages...).
		clique(majorContextLanguages...).
		link("french", "arabic", "chinese", "hebrew", "japanese", "romanian", "swedish", "turkish", "ukrainian").
		link("german", "arabic", "hebrew", "japanese", "romanian", "swedish", "turkish", "ukrainian").
		link("spanish", "arabic", "chinese", "hebrew", "japanese", "romanian", "swedish", "turkish", "ukrainian"),
	Translation: newPairing().clique(translationLanguages...),
}

// voices maps translation targets to the speech profile of the voice service.
var voices = map[string]string{
	"english": "Heather22k",
	"french":  "Alice22k",
	"german":  "Claudia22k",
	"russian": "Alyona22k",
	"italian": "Chiara22k",
	"polish":  "Ania22k",
	"spanish": "Ines22k",
}

var iso6391 = map[string]string{
	"ar": "arabic",
	"zh": "chinese",
	"nl": "dutch",
	"en": "english",
	"fr": "french",
	"de": "german",
	"he": "hebrew",
	"it": "italian",
	"ja": "japanese",
	"pl": "polish",
	"pt": "portuguese",
	"ro": "romanian",
	"ru": "russian",
	"es": "spanish",
	"sv": "swedish",
	"tr": "turkish",
	"uk": "ukrainian",
}

func identity(names []string) map[string]string {
	m := make(map[string]string, len(names))
	for _, name := range names {
		m[name] = name
	}
	return m
}

type pairing map[string]map[string]struct{}

func newPairing() pairing {
	return make(pairing)
}

// link makes source and every target mutually compatible.
func (p pairing) link(source string, targets ...string) pairing {
	for _, target := range targets {
		if target == source {
			continue
		}
		p.add(source, target)
		p.add(target, source)
	}
	return p
}

func (p pairing) clique(names ...string) pairing {
	for _, name := range names {
		p.link(name, names...)
	}
	return p
}

func (p pairing) add(source, target string) {
	targets, ok := p[source]
	if !ok {
		targets = make(map[string]struct{})
		p[source] = targets
	}
	targets[target] = struct{}{}
}

func (p pairing) allows(source, target string) bool {
	_, ok := p[source][target]
	return ok
}
