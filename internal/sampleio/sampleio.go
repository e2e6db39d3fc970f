// Package sampleio reads and writes the TOML sample file format: a labeled
// set of positive and negative traces over a named propositional
// vocabulary, the input to ltl.Solve. It mirrors the way the teacher's tqw
// package lays out a structured text format (a small "format"/"type" header
// embedded in the file, a struct mirroring the TOML shape exactly, and a
// translation step from that shape into the domain type), adapted from a
// manifest-of-rooms shape to a vocabulary-of-traces shape.
package sampleio

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/cases"

	"github.com/dekarrin/ltlsynth/internal/ltlerrors"
	"github.com/dekarrin/ltlsynth/internal/util"
	"github.com/dekarrin/ltlsynth/ltl"
)

const (
	fileFormat = "LTLSYNTH"
	fileType   = "SAMPLE"
)

var fold = cases.Fold()

// Vocabulary maps propositional variable names to the Atom index ltl.Sample
// traces carry them at. Names are compared case-insensitively (Unicode
// case-folded, not just ASCII-folded) so "Door_Open" and "door_open" name
// the same variable.
type Vocabulary struct {
	names   []string
	indexOf map[string]int
}

// NewVocabulary builds a Vocabulary from an ordered list of variable names.
// The position of each name in the slice becomes its Atom index.
func NewVocabulary(names []string) Vocabulary {
	v := Vocabulary{
		names:   append([]string(nil), names...),
		indexOf: make(map[string]int, len(names)),
	}
	for i, n := range names {
		v.indexOf[fold.String(n)] = i
	}
	return v
}

// Len returns the number of variables, i.e. the width every trace in the
// associated sample must have.
func (v Vocabulary) Len() int { return len(v.names) }

// Name returns the variable name at the given Atom index.
func (v Vocabulary) Name(index int) string { return v.names[index] }

// Index returns the Atom index for a variable name, case-insensitively, and
// whether that name is present in the vocabulary.
func (v Vocabulary) Index(name string) (int, bool) {
	i, ok := v.indexOf[fold.String(name)]
	return i, ok
}

// fileShape is the literal TOML shape of a sample file, decoded field for
// field the way topLevelWorldData mirrors a TQW file.
type fileShape struct {
	Format     string       `toml:"format"`
	Type       string       `toml:"type"`
	Vocabulary []string     `toml:"vocabulary"`
	Positive   []traceShape `toml:"positive"`
	Negative   []traceShape `toml:"negative"`
}

type traceShape struct {
	Trace [][]bool `toml:"trace"`
}

func (t traceShape) toLTLTrace() ltl.Trace {
	tr := make(ltl.Trace, len(t.Trace))
	for i, row := range t.Trace {
		tr[i] = ltl.State(row)
	}
	return tr
}

func traceToShape(tr ltl.Trace) traceShape {
	rows := make([][]bool, len(tr))
	for i, s := range tr {
		rows[i] = []bool(s)
	}
	return traceShape{Trace: rows}
}

// duplicateNames returns, in order of first repetition, every name in names
// that (case-insensitively) collides with an earlier one.
func duplicateNames(names []string) []string {
	seen := util.NewStringSet()
	var dupes []string
	for _, n := range names {
		folded := fold.String(n)
		if seen.Has(folded) {
			dupes = append(dupes, n)
			continue
		}
		seen.Add(folded)
	}
	return dupes
}

// Load reads a sample file from path, returning the decoded Sample along
// with the Vocabulary used to name its variables.
func Load(path string) (*ltl.Sample, Vocabulary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, Vocabulary{}, ltlerrors.New(fmt.Sprintf("%q: reading from disk", path), err)
	}
	return decode(raw, path)
}

// Parse decodes a sample given as raw TOML bytes rather than a file on disk,
// for callers that receive the file contents over a channel other than the
// filesystem (e.g. an HTTP request body).
func Parse(raw []byte) (*ltl.Sample, Vocabulary, error) {
	return decode(raw, "<request>")
}

func decode(raw []byte, path string) (*ltl.Sample, Vocabulary, error) {
	var shape fileShape
	if _, err := toml.Decode(string(raw), &shape); err != nil {
		return nil, Vocabulary{}, ltlerrors.New(fmt.Sprintf("%q: parsing TOML", path), ltlerrors.ErrSampleParse, err)
	}

	if strings.ToUpper(shape.Format) != fileFormat {
		return nil, Vocabulary{}, ltlerrors.New(
			fmt.Sprintf("%q: header 'format' must be %q", path, fileFormat), ltlerrors.ErrSampleParse)
	}
	if strings.ToUpper(shape.Type) != fileType {
		return nil, Vocabulary{}, ltlerrors.New(
			fmt.Sprintf("%q: header 'type' must be %q", path, fileType), ltlerrors.ErrSampleParse)
	}
	if dupes := duplicateNames(shape.Vocabulary); len(dupes) > 0 {
		return nil, Vocabulary{}, ltlerrors.New(
			fmt.Sprintf("%q: vocabulary declares the same variable more than once: %s", path, joinWithAnd(dupes)),
			ltlerrors.ErrSampleParse)
	}

	// vocabulary is optional: when omitted, atoms are rendered by index
	// (p0, p1, ...) instead of by name, and the atom count is taken from
	// the traces themselves rather than from a name list.
	var vocab Vocabulary
	atomCount := len(shape.Vocabulary)
	if atomCount == 0 {
		var err error
		atomCount, err = traceWidth(shape)
		if err != nil {
			return nil, Vocabulary{}, ltlerrors.New(fmt.Sprintf("%q: %s", path, err.Error()), ltlerrors.ErrSampleParse)
		}
	} else {
		vocab = NewVocabulary(shape.Vocabulary)
	}

	positive := make([]ltl.Trace, len(shape.Positive))
	for i, p := range shape.Positive {
		positive[i] = p.toLTLTrace()
	}
	negative := make([]ltl.Trace, len(shape.Negative))
	for i, n := range shape.Negative {
		negative[i] = n.toLTLTrace()
	}

	sample, err := ltl.NewSample(atomCount, positive, negative)
	if err != nil {
		return nil, Vocabulary{}, ltlerrors.New(fmt.Sprintf("%q: building sample", path), err)
	}
	return sample, vocab, nil
}

// traceWidth derives the atom count for a sample with no declared
// vocabulary from the width of its first labeled state. ltl.NewSample
// itself rejects any trace whose states disagree in width, so it is
// enough to look at the first one found.
func traceWidth(shape fileShape) (int, error) {
	for _, tr := range shape.Positive {
		if len(tr.Trace) > 0 {
			return len(tr.Trace[0]), nil
		}
	}
	for _, tr := range shape.Negative {
		if len(tr.Trace) > 0 {
			return len(tr.Trace[0]), nil
		}
	}
	return 0, errNoVocabOrTraces
}

var errNoVocabOrTraces = fmt.Errorf("no vocabulary declared and no non-empty trace to derive one from")

// joinWithAnd renders items as a natural-language list with an Oxford
// comma, e.g. "a, b, and c".
func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// Save writes sample and vocab back out to path in the same TOML format
// Load reads, so that a file round-trips through Load/Save unchanged in
// meaning (field order and TOML formatting may differ).
func Save(path string, sample *ltl.Sample, vocab Vocabulary) error {
	shape := fileShape{
		Format:     fileFormat,
		Type:       fileType,
		Vocabulary: append([]string(nil), vocab.names...),
	}
	for _, p := range sample.Positive {
		shape.Positive = append(shape.Positive, traceToShape(p))
	}
	for _, n := range sample.Negative {
		shape.Negative = append(shape.Negative, traceToShape(n))
	}

	f, err := os.Create(path)
	if err != nil {
		return ltlerrors.New(fmt.Sprintf("%q: creating file", path), err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(shape); err != nil {
		return ltlerrors.New(fmt.Sprintf("%q: encoding TOML", path), err)
	}
	return nil
}
