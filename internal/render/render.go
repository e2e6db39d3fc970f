// Package render formats search results and samples as human-readable text,
// the way internal/game's debug views format world state: rosed-driven
// fixed-width tables plus a little connective prose.
package render

import (
	"fmt"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/ltlsynth/internal/sampleio"
	"github.com/dekarrin/ltlsynth/ltl"
)

// tableWidth is the column width passed to InsertTableOpts, matching the
// narrower of the widths internal/game's debug tables use.
const tableWidth = 80

// Formula renders phi using the given vocabulary to turn p0, p1, ... back
// into the propositional variable names a human supplied them as.
func Formula(phi *ltl.Formula, vocab sampleio.Vocabulary) string {
	return namedFormula(phi, vocab)
}

func namedFormula(phi *ltl.Formula, vocab sampleio.Vocabulary) string {
	switch phi.Kind() {
	case ltl.KindAtom:
		i := phi.AtomIndex()
		if i < vocab.Len() {
			return vocab.Name(i)
		}
		return fmt.Sprintf("p%d", i)
	case ltl.KindNot, ltl.KindNext, ltl.KindGlobally, ltl.KindFinally:
		return phi.Kind().Symbol() + "(" + namedFormula(phi.Child(), vocab) + ")"
	default:
		return "(" + namedFormula(phi.Left(), vocab) + " " + phi.Kind().Symbol() + " " + namedFormula(phi.Right(), vocab) + ")"
	}
}

// SearchResult renders the outcome of a Solve call as a short report: the
// formula found (or a failure notice), its size, and the sample it was
// checked against.
func SearchResult(phi *ltl.Formula, found bool, sample *ltl.Sample, vocab sampleio.Vocabulary) string {
	if !found {
		return rosed.Edit("no formula found within the configured size bound").String()
	}

	data := [][]string{
		{"Field", "Value"},
		{"Formula", namedFormula(phi, vocab)},
		{"Size", fmt.Sprintf("%d", phi.Size())},
		{"Positive traces", fmt.Sprintf("%d", len(sample.Positive))},
		{"Negative traces", fmt.Sprintf("%d", len(sample.Negative))},
	}

	tableOpts := rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, tableWidth, tableOpts).
		String()
}

// Vocabulary renders the variable name/index mapping as a table, for the
// REPL's "show vocabulary" command.
func Vocabulary(vocab sampleio.Vocabulary) string {
	data := [][]string{{"Index", "Name"}}
	for i := 0; i < vocab.Len(); i++ {
		data = append(data, []string{fmt.Sprintf("%d", i), vocab.Name(i)})
	}

	tableOpts := rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, tableWidth, tableOpts).
		String()
}
