package interlinear

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bsb-interlinear/greekparse"
)

// Policy decides what the Ingester does with a row it cannot convert.
type Policy uint8

const (
	// PolicyAbort stops at the first failing row.
	PolicyAbort Policy = iota
	// PolicySkip drops failing rows.
	PolicySkip
	// PolicyKeep keeps failing rows without a decoded tag.
	PolicyKeep
)

var policyNames = []string{"abort", "skip", "keep"}

// ParsePolicy parses "abort", "skip" or "keep".
func ParsePolicy(s string) (Policy, error) {
	for i, name := range policyNames {
		if strings.EqualFold(name, s) {
			return Policy(i), nil
		}
	}
	return 0, fmt.Errorf("invalid policy %q (want abort, skip or keep)", s)
}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

// Failure records a row that could not be converted.
type Failure struct {
	Row  int
	Code string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("row %d: %v", f.Row, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// Result is the outcome of an ingest run.
type Result struct {
	Verses   []Verse
	Words    int
	Failures []Failure
}

// Ingester converts raw rows into words grouped by verse.
type Ingester struct {
	Policy Policy
	// Decode decodes Greek parsing codes; greekparse.Parse by default.
	Decode func(string) (greekparse.Tag, error)
}

// NewIngester returns an Ingester using greekparse.Parse.
func NewIngester(p Policy) *Ingester {
	return &Ingester{Policy: p, Decode: greekparse.Parse}
}

// Ingest converts entries in order. Rows without a verse id or reference of
// their own belong to the verse of the row above. With PolicyAbort the
// returned Result holds the rows converted before the failure.
func (in *Ingester) Ingest(entries []RawEntry) (*Result, error) {
	decode := in.Decode
	if decode == nil {
		decode = greekparse.Parse
	}
	res := &Result{}
	var cur *Verse
	for _, e := range entries {
		w, id, err := convert(e, decode)
		if err != nil {
			f := Failure{Row: e.Row, Code: strings.TrimSpace(e.Code), Err: err}
			res.Failures = append(res.Failures, f)
			switch in.Policy {
			case PolicyAbort:
				return res, f
			case PolicySkip:
				continue
			}
		}

		// an unset verse takes the id or reference of its first row that
		// has one
		newVerse := cur == nil ||
			(id != 0 && cur.ID != 0 && id != cur.ID) ||
			(!w.Reference.IsZero() && !cur.Reference.IsZero() && w.Reference != cur.Reference)
		if newVerse {
			res.Verses = append(res.Verses, Verse{ID: id, Reference: w.Reference})
			cur = &res.Verses[len(res.Verses)-1]
		}
		if cur.ID == 0 {
			cur.ID = id
		}
		if w.Reference.IsZero() {
			w.Reference = cur.Reference
		} else if cur.Reference.IsZero() {
			cur.Reference = w.Reference
			for i := range cur.Words {
				cur.Words[i].Reference = w.Reference
			}
		}
		cur.Words = append(cur.Words, w)
		res.Words++
	}
	return res, nil
}

// convert parses the cells of e. On error the returned word holds
// everything but the failing field, so PolicyKeep can still use it.
func convert(e RawEntry, decode func(string) (greekparse.Tag, error)) (Word, int, error) {
	w := Word{
		Row:             e.Row,
		Text:            strings.TrimSpace(e.Text),
		VariantText:     strings.TrimSpace(e.VariantText),
		Transliteration: strings.TrimSpace(e.Translit),
		Code:            strings.TrimSpace(e.Code),
		Description:     strings.TrimSpace(e.Description),
		Translation:     ParseTranslation(e.English),
		Heading:         Heading(e.Heading),
		CrossReferences: CrossReferences(e.Crossref),
		Paragraph:       ParseParagraph(e.Paragraph),
		StartQuote:      strings.TrimSpace(e.StartQuote),
		Punctuation:     strings.TrimSpace(e.Punctuation),
		EndQuote:        strings.TrimSpace(e.EndQuote),
		Footnote:        PlainText(e.Footnotes),
		EndText:         strings.TrimSpace(e.EndText),
	}

	var id int
	var errs []error
	fail := func(err error) { errs = append(errs, err) }

	// "Verse" and "VerseId" hold a numeric id and a reference; accept either
	// in either column.
	for _, cell := range []string{e.Verse, e.VerseID} {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if n, err := atoi(cell); err == nil {
			id = n
		} else if ref, err := ParseReference(cell); err == nil {
			w.Reference = ref
		} else {
			fail(err)
		}
	}

	ints := []struct {
		name string
		cell string
		dst  *int
	}{
		{"Heb Sort", e.HebrewSort, &w.HebrewSort},
		{"Greek Sort", e.GreekSort, &w.GreekSort},
		{"BSB Sort", e.BSBSort, &w.BSBSort},
		{"Str Heb", e.StrongsHeb, &w.StrongsHebrew},
		{"Str Grk", e.StrongsGrk, &w.StrongsGreek},
	}
	for _, f := range ints {
		if n, err := atoi(f.cell); err != nil {
			fail(fmt.Errorf("%s: %w", f.name, err))
		} else {
			*f.dst = n
		}
	}

	lang, err := ParseLanguage(e.Language)
	if err != nil {
		fail(err)
	}
	w.Language = lang

	if lang == Greek && w.Code != "" {
		tag, err := decode(w.Code)
		if err != nil {
			fail(fmt.Errorf("parsing %q: %w", w.Code, err))
		} else {
			w.Tag = tag
		}
	}

	return w, id, errors.Join(errs...)
}

// atoi parses an optional integer cell; blank is 0. Sheets exported from
// spreadsheets may carry a ".0" suffix.
func atoi(s string) (int, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".0")
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
