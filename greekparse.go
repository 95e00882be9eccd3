// Package greekparse decodes the morphological parsing codes used by Greek
// interlinear tables, such as "V-AIA-3S", "N-AFP" or "Adj-NFS-C", into
// part of speech, case, gender, number, tense, voice, mood, person and
// comparison degree.
//
// A code is a list of "-" separated segments. The first segment names the
// part of speech; the remaining ones are decoded by a grammar specific to
// that part of speech. Categories that a form omits leave no placeholder,
// so each grammar tries the next character against the category it expects
// and moves on when it does not fit.
//
// Decoding is a pure function of its input and is safe for concurrent use.
package greekparse

import (
	"errors"
	"fmt"
	"strings"
)

// Whole-code markers that carry no part of speech. They are matched exactly.
const (
	literalIndeclinable      = "Indec"
	literalIntensiveParticle = "IntPrtcl"
)

// Parse decodes a parsing code. On failure the error is a *DecodeError naming
// the category that did not fit; no partial tag is returned.
func Parse(input string) (Tag, error) {
	segs := strings.Split(input, "-")
	head, tail := segs[0], segs[1:]

	switch head {
	case literalIndeclinable:
		return Indeclinable{}, nil
	case literalIntensiveParticle:
		return IntensiveParticle{}, nil
	}

	pos, err := ParsePartOfSpeech(head)
	if err != nil {
		return nil, err
	}

	switch pos {
	case POSVerb:
		return parseVerb(tail)
	case POSNoun:
		return parseNoun(tail)
	case POSAdverb:
		return parseAdverb(tail)
	case POSAdjective:
		return parseAdjective(tail)
	case POSPersonalPossessivePronoun:
		return parsePersonalPossessivePronoun(tail)
	case POSReflexivePronoun:
		return parseReflexivePronoun(tail)
	case POSArticle, POSDemonstrativePronoun, POSInterrogativeIndefinitePronoun,
		POSReciprocalPronoun, POSRelativePronoun:
		seg, _ := segment(tail, 0)
		cgn, err := decodeCaseGenderNumber(seg)
		if err != nil {
			return nil, err
		}
		return nominal(pos, cgn), nil
	case POSPreposition:
		return Preposition{}, nil
	case POSConjunction:
		return Conjunction{}, nil
	case POSInterjection:
		return Interjection{}, nil
	case POSParticle:
		return Particle{}, nil
	case POSHebrewWord:
		return HebrewWord{}, nil
	case POSAramaicWord:
		return AramaicWord{}, nil
	}
	return nil, &DecodeError{Category: CategoryPartOfSpeech, Input: head}
}

// nominal wraps a mandatory Case+Gender+Number group in the type of pos.
func nominal(pos PartOfSpeech, cgn caseGenderNumber) Tag {
	switch pos {
	case POSArticle:
		return Article{cgn}
	case POSDemonstrativePronoun:
		return DemonstrativePronoun{cgn}
	case POSInterrogativeIndefinitePronoun:
		return InterrogativeIndefinitePronoun{cgn}
	case POSReciprocalPronoun:
		return ReciprocalPronoun{cgn}
	default:
		return RelativePronoun{cgn}
	}
}

// MustParse is like Parse but panics on error. It is meant for codes known
// at compile time.
func MustParse(input string) Tag {
	t, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("greekparse: Parse(%q): %v", input, err))
	}
	return t
}

// ParseAll decodes every code. The returned slice has one entry per input,
// nil where decoding failed; the error joins every failure, each prefixed
// with its code.
func ParseAll(codes []string) ([]Tag, error) {
	tags := make([]Tag, len(codes))
	var errs []error
	for i, code := range codes {
		t, err := Parse(code)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", code, err))
			continue
		}
		tags[i] = t
	}
	return tags, errors.Join(errs...)
}

// Describe renders the display names of a tag, segment by segment, e.g.
// "Verb - Aorist Indicative Active - 3rd Person Singular".
func Describe(t Tag) string {
	var parts []string
	switch t.(type) {
	case Indeclinable:
		return "Indeclinable"
	case IntensiveParticle:
		return "Intensive Particle"
	}
	if pos, ok := t.PartOfSpeech(); ok {
		parts = append(parts, pos.Name())
	}
	for _, g := range t.layout() {
		if len(g) == 0 {
			continue
		}
		names := make([]string, len(g))
		for i, n := range g {
			names[i] = n.Name()
		}
		parts = append(parts, strings.Join(names, " "))
	}
	return strings.Join(parts, " - ")
}
