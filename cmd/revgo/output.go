package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rodaine/table"

	"github.com/darkclainer/revgo/pkg/parser"
)

func newTable(w io.Writer, headers ...interface{}) table.Table {
	return table.New(headers...).WithWriter(w)
}

func printContext(w io.Writer, record *parser.Context) {
	fmt.Fprintf(w, "%s (%s -> %s)\n", record.Text, record.Source, record.Target)
	if len(record.Translations) > 0 {
		fmt.Fprintf(w, "Translations: %s\n", strings.Join(record.Translations, ", "))
	}
	if len(record.Examples) == 0 {
		return
	}
	fmt.Fprintln(w)
	tbl := newTable(w, "#", "Source", "Target")
	for _, example := range record.Examples {
		tbl.AddRow(example.ID, example.Source, example.Target)
	}
	tbl.Print()
}

func printTranslation(w io.Writer, record *parser.Translation) {
	fmt.Fprintf(w, "%s (%s -> %s)\n", record.Text, record.Source, record.Target)
	tbl := newTable(w, "#", "Translation")
	for i, translation := range record.Translations {
		tbl.AddRow(i, translation)
	}
	tbl.Print()
	if record.Voice != "" {
		fmt.Fprintf(w, "Voice: %s\n", record.Voice)
	}
	if record.Context == nil || len(record.Context.Examples) == 0 {
		return
	}
	fmt.Fprintln(w)
	tbl = newTable(w, "#", "Source", "Target")
	for _, example := range record.Context.Examples {
		tbl.AddRow(example.ID, example.Source, example.Target)
	}
	tbl.Print()
}

func printSpellCheck(w io.Writer, record *parser.SpellCheck) {
	if len(record.Corrections) == 0 {
		fmt.Fprintf(w, "No mistakes found in %q\n", record.Text)
		return
	}
	fmt.Fprintf(w, "Corrected: %s\n\n", record.Corrected)
	tbl := newTable(w, "Mistake", "Type", "Suggestions", "Explanation")
	for _, correction := range record.Corrections {
		suggestions := make([]string, 0, len(correction.Suggestions))
		for _, suggestion := range correction.Suggestions {
			suggestions = append(suggestions, suggestion.Text)
		}
		tbl.AddRow(correction.Text, correction.Type, strings.Join(suggestions, ", "), correction.Explanation)
	}
	tbl.Print()
}

func printSynonyms(w io.Writer, record *parser.Synonyms) {
	tbl := newTable(w, "#", "Synonym")
	for _, synonym := range record.Synonyms {
		tbl.AddRow(synonym.ID, synonym.Synonym)
	}
	tbl.Print()
}

func printConjugation(w io.Writer, record *parser.Conjugation) {
	fmt.Fprintf(w, "Infinitive: %s\n\n", record.Infinitive)
	tbl := newTable(w, "Tense", "Forms")
	for _, group := range record.Groups {
		forms := make([]string, 0, len(group.Forms))
		for _, form := range group.Forms {
			forms = append(forms, form.Form)
		}
		tbl.AddRow(group.Tense, strings.Join(forms, ", "))
	}
	tbl.Print()
}

func printLanguages(w io.Writer, result *languagesResult) {
	if result.Pairs == nil {
		tbl := newTable(w, "Language")
		for _, language := range result.Languages {
			tbl.AddRow(language)
		}
		tbl.Print()
		return
	}
	tbl := newTable(w, "Language", "Targets")
	for _, language := range result.Languages {
		tbl.AddRow(language, strings.Join(result.Pairs[language], ", "))
	}
	tbl.Print()
}
