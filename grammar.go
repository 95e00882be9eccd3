package greekparse

import (
	"strings"
	"unicode/utf8"
)

// Tag is a decoded parsing code. Exactly one concrete type implements it per
// part of speech (Verb, Noun, Article, ...), plus the two opaque markers
// Indeclinable and IntensiveParticle.
//
// Every accessor reports false for a category the code did not carry,
// including categories the part of speech never uses.
type Tag interface {
	// PartOfSpeech reports false for the opaque markers.
	PartOfSpeech() (PartOfSpeech, bool)
	Case() (Case, bool)
	Comparison() (Comparison, bool)
	Gender() (Gender, bool)
	Mood() (Mood, bool)
	Number() (Number, bool)
	Person() (Person, bool)
	Tense() (Tense, bool)
	Voice() (Voice, bool)

	// String renders the canonical code, e.g. "V-AIA-3S".
	String() string

	// layout returns the decoded values grouped by segment, in code order.
	layout() []group
}

// noComponents answers "absent" for every category. Each grammar embeds it
// and overrides the accessors for the categories it decodes.
type noComponents struct{}

func (noComponents) Case() (Case, bool)             { return 0, false }
func (noComponents) Comparison() (Comparison, bool) { return 0, false }
func (noComponents) Gender() (Gender, bool)         { return 0, false }
func (noComponents) Mood() (Mood, bool)             { return 0, false }
func (noComponents) Number() (Number, bool)         { return 0, false }
func (noComponents) Person() (Person, bool)         { return 0, false }
func (noComponents) Tense() (Tense, bool)           { return 0, false }
func (noComponents) Voice() (Voice, bool)           { return 0, false }
func (noComponents) layout() []group                { return nil }

// slot is one expected category position inside a segment.
type slot struct {
	category Category
	required bool
}

func req(c Category) slot { return slot{category: c, required: true} }
func opt(c Category) slot { return slot{category: c} }

// fields holds the values decoded from one segment. A zero value is absent.
type fields struct {
	cas        Case
	comparison Comparison
	gender     Gender
	mood       Mood
	number     Number
	person     Person
	tense      Tense
	voice      Voice
}

// set parses tok as a code of category c and stores it.
func (f *fields) set(c Category, tok string) (err error) {
	switch c {
	case CategoryCase:
		f.cas, err = ParseCase(tok)
	case CategoryComparison:
		f.comparison, err = ParseComparison(tok)
	case CategoryGender:
		f.gender, err = ParseGender(tok)
	case CategoryMood:
		f.mood, err = ParseMood(tok)
	case CategoryNumber:
		f.number, err = ParseNumber(tok)
	case CategoryPerson:
		f.person, err = ParsePerson(tok)
	case CategoryTense:
		f.tense, err = ParseTense(tok)
	case CategoryVoice:
		f.voice, err = ParseVoice(tok)
	default:
		err = &DecodeError{Category: c, Input: tok}
	}
	return err
}

// decodeSegment walks seg left to right against slots. Each slot tries the
// next character (voice: the rest of the segment, so "M/P" fits); a match
// consumes it, a miss leaves the input in place for the next slot. A miss on
// a required slot fails the whole segment. Trailing characters are ignored.
func decodeSegment(seg string, slots ...slot) (fields, error) {
	var f fields
	rest := seg
	for _, s := range slots {
		tok := rest
		if s.category != CategoryVoice && rest != "" {
			_, n := utf8.DecodeRuneInString(rest)
			tok = rest[:n]
		}
		if tok == "" {
			if s.required {
				return fields{}, &DecodeError{Category: s.category}
			}
			continue
		}
		if err := f.set(s.category, tok); err != nil {
			if s.required {
				return fields{}, err
			}
			continue
		}
		rest = rest[len(tok):]
	}
	return f, nil
}

// segment returns segs[i], or "" and false when the code has no such segment.
func segment(segs []string, i int) (string, bool) {
	if i < len(segs) {
		return segs[i], true
	}
	return "", false
}

// namer is implemented by every category value.
type namer interface {
	Code() string
	Name() string
}

// group is the list of values one segment carries.
type group []namer

// with appends n when ok is set. It chains over the accessor results:
// group{}.with(t.Case()).with(t.Gender()).
func (g group) with(n namer, ok bool) group {
	if ok {
		return append(g, n)
	}
	return g
}

// format renders the canonical code of a tag whose first segment is head.
func format(head string, t Tag) string {
	var sb strings.Builder
	sb.WriteString(head)
	for _, g := range t.layout() {
		if len(g) == 0 {
			continue
		}
		sb.WriteByte('-')
		for _, n := range g {
			sb.WriteString(n.Code())
		}
	}
	return sb.String()
}
