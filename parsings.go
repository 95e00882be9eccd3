package greekparse

// caseGenderNumber is the Case+Gender+Number group shared by nominal
// grammars. The group is either fully decoded or entirely absent.
type caseGenderNumber struct {
	noComponents
	cas    Case
	gender Gender
	number Number
}

func (c caseGenderNumber) Case() (Case, bool)     { return c.cas, c.cas != 0 }
func (c caseGenderNumber) Gender() (Gender, bool) { return c.gender, c.gender != 0 }
func (c caseGenderNumber) Number() (Number, bool) { return c.number, c.number != 0 }

func (c caseGenderNumber) values() group {
	return group{}.with(c.Case()).with(c.Gender()).with(c.Number())
}

func (c caseGenderNumber) layout() []group { return []group{c.values()} }

// decodeCaseGenderNumber requires all three categories, in that order.
func decodeCaseGenderNumber(seg string) (caseGenderNumber, error) {
	f, err := decodeSegment(seg, req(CategoryCase), req(CategoryGender), req(CategoryNumber))
	if err != nil {
		return caseGenderNumber{}, err
	}
	return caseGenderNumber{cas: f.cas, gender: f.gender, number: f.number}, nil
}

// Noun is a noun, e.g. "N" or "N-AFP".
type Noun struct{ caseGenderNumber }

func (Noun) PartOfSpeech() (PartOfSpeech, bool) { return POSNoun, true }
func (n Noun) String() string                   { return format(POSNoun.Code(), n) }

func parseNoun(segs []string) (Tag, error) {
	seg, ok := segment(segs, 0)
	if !ok {
		return Noun{}, nil
	}
	cgn, err := decodeCaseGenderNumber(seg)
	if err != nil {
		return nil, err
	}
	return Noun{cgn}, nil
}

// Adjective is an adjective, e.g. "Adj", "Adj-AFP" or "Adj-AFP-C".
type Adjective struct {
	caseGenderNumber
	comparison Comparison
}

func (Adjective) PartOfSpeech() (PartOfSpeech, bool) { return POSAdjective, true }
func (a Adjective) Comparison() (Comparison, bool) {
	return a.comparison, a.comparison != 0
}
func (a Adjective) String() string { return format(POSAdjective.Code(), a) }

func (a Adjective) layout() []group {
	return []group{a.values(), group{}.with(a.Comparison())}
}

// parseAdjective reads the degree only when the Case+Gender+Number segment
// is present.
func parseAdjective(segs []string) (Tag, error) {
	seg, ok := segment(segs, 0)
	if !ok {
		return Adjective{}, nil
	}
	cgn, err := decodeCaseGenderNumber(seg)
	if err != nil {
		return nil, err
	}
	adj := Adjective{caseGenderNumber: cgn}
	// the degree is the whole segment, not its first character
	if seg, ok := segment(segs, 1); ok {
		c, err := ParseComparison(seg)
		if err != nil {
			return nil, err
		}
		adj.comparison = c
	}
	return adj, nil
}

// Adverb is an adverb, e.g. "Adv" or "Adv-C".
type Adverb struct {
	noComponents
	comparison Comparison
}

func (Adverb) PartOfSpeech() (PartOfSpeech, bool) { return POSAdverb, true }
func (a Adverb) Comparison() (Comparison, bool)   { return a.comparison, a.comparison != 0 }
func (a Adverb) String() string                   { return format(POSAdverb.Code(), a) }
func (a Adverb) layout() []group                  { return []group{group{}.with(a.Comparison())} }

// parseAdverb accepts an empty or missing segment; anything else must
// start with a comparison code.
func parseAdverb(segs []string) (Tag, error) {
	seg, _ := segment(segs, 0)
	if seg == "" {
		return Adverb{}, nil
	}
	f, err := decodeSegment(seg, req(CategoryComparison))
	if err != nil {
		return nil, err
	}
	return Adverb{comparison: f.comparison}, nil
}

// Article is the definite article, e.g. "Art-GMS".
type Article struct{ caseGenderNumber }

func (Article) PartOfSpeech() (PartOfSpeech, bool) { return POSArticle, true }
func (a Article) String() string                   { return format(POSArticle.Code(), a) }

// DemonstrativePronoun is e.g. "DPro-NMS".
type DemonstrativePronoun struct{ caseGenderNumber }

func (DemonstrativePronoun) PartOfSpeech() (PartOfSpeech, bool) {
	return POSDemonstrativePronoun, true
}
func (d DemonstrativePronoun) String() string { return format(POSDemonstrativePronoun.Code(), d) }

// InterrogativeIndefinitePronoun is e.g. "IPro-ANS".
type InterrogativeIndefinitePronoun struct{ caseGenderNumber }

func (InterrogativeIndefinitePronoun) PartOfSpeech() (PartOfSpeech, bool) {
	return POSInterrogativeIndefinitePronoun, true
}
func (p InterrogativeIndefinitePronoun) String() string {
	return format(POSInterrogativeIndefinitePronoun.Code(), p)
}

// RelativePronoun is e.g. "RelPro-AFP".
type RelativePronoun struct{ caseGenderNumber }

func (RelativePronoun) PartOfSpeech() (PartOfSpeech, bool) { return POSRelativePronoun, true }
func (p RelativePronoun) String() string                   { return format(POSRelativePronoun.Code(), p) }

// ReciprocalPronoun is e.g. "RecPro-AMP".
type ReciprocalPronoun struct{ caseGenderNumber }

func (ReciprocalPronoun) PartOfSpeech() (PartOfSpeech, bool) { return POSReciprocalPronoun, true }
func (p ReciprocalPronoun) String() string                   { return format(POSReciprocalPronoun.Code(), p) }

// PersonalPossessivePronoun is e.g. "PPro-A1P", "PPro-AF1P" or "PPro-NFS".
// Case and Number are always present; Gender and Person may be either,
// both or neither.
type PersonalPossessivePronoun struct {
	noComponents
	cas    Case
	gender Gender
	person Person
	number Number
}

func (PersonalPossessivePronoun) PartOfSpeech() (PartOfSpeech, bool) {
	return POSPersonalPossessivePronoun, true
}
func (p PersonalPossessivePronoun) Case() (Case, bool)     { return p.cas, p.cas != 0 }
func (p PersonalPossessivePronoun) Gender() (Gender, bool) { return p.gender, p.gender != 0 }
func (p PersonalPossessivePronoun) Person() (Person, bool) { return p.person, p.person != 0 }
func (p PersonalPossessivePronoun) Number() (Number, bool) { return p.number, p.number != 0 }
func (p PersonalPossessivePronoun) String() string {
	return format(POSPersonalPossessivePronoun.Code(), p)
}

func (p PersonalPossessivePronoun) layout() []group {
	return []group{group{}.with(p.Case()).with(p.Gender()).with(p.Person()).with(p.Number())}
}

func parsePersonalPossessivePronoun(segs []string) (Tag, error) {
	seg, _ := segment(segs, 0)
	f, err := decodeSegment(seg,
		req(CategoryCase), opt(CategoryGender), opt(CategoryPerson), req(CategoryNumber))
	if err != nil {
		return nil, err
	}
	return PersonalPossessivePronoun{cas: f.cas, gender: f.gender, person: f.person, number: f.number}, nil
}

// ReflexivePronoun is e.g. "RefPro-AM3S"; all four categories are required.
type ReflexivePronoun struct {
	noComponents
	cas    Case
	gender Gender
	person Person
	number Number
}

func (ReflexivePronoun) PartOfSpeech() (PartOfSpeech, bool) { return POSReflexivePronoun, true }
func (p ReflexivePronoun) Case() (Case, bool)               { return p.cas, p.cas != 0 }
func (p ReflexivePronoun) Gender() (Gender, bool)           { return p.gender, p.gender != 0 }
func (p ReflexivePronoun) Person() (Person, bool)           { return p.person, p.person != 0 }
func (p ReflexivePronoun) Number() (Number, bool)           { return p.number, p.number != 0 }
func (p ReflexivePronoun) String() string                   { return format(POSReflexivePronoun.Code(), p) }

func (p ReflexivePronoun) layout() []group {
	return []group{group{}.with(p.Case()).with(p.Gender()).with(p.Person()).with(p.Number())}
}

func parseReflexivePronoun(segs []string) (Tag, error) {
	seg, _ := segment(segs, 0)
	f, err := decodeSegment(seg,
		req(CategoryCase), req(CategoryGender), req(CategoryPerson), req(CategoryNumber))
	if err != nil {
		return nil, err
	}
	return ReflexivePronoun{cas: f.cas, gender: f.gender, person: f.person, number: f.number}, nil
}

// Preposition carries no categories; any tail is ignored.
type Preposition struct{ noComponents }

func (Preposition) PartOfSpeech() (PartOfSpeech, bool) { return POSPreposition, true }
func (Preposition) String() string                     { return POSPreposition.Code() }

// Conjunction carries no categories; any tail is ignored.
type Conjunction struct{ noComponents }

func (Conjunction) PartOfSpeech() (PartOfSpeech, bool) { return POSConjunction, true }
func (Conjunction) String() string                     { return POSConjunction.Code() }

// Interjection carries no categories; any tail is ignored.
type Interjection struct{ noComponents }

func (Interjection) PartOfSpeech() (PartOfSpeech, bool) { return POSInterjection, true }
func (Interjection) String() string                     { return POSInterjection.Code() }

// Particle carries no categories; any tail is ignored.
type Particle struct{ noComponents }

func (Particle) PartOfSpeech() (PartOfSpeech, bool) { return POSParticle, true }
func (Particle) String() string                     { return POSParticle.Code() }

// HebrewWord marks a transliterated Hebrew word inside Greek text.
type HebrewWord struct{ noComponents }

func (HebrewWord) PartOfSpeech() (PartOfSpeech, bool) { return POSHebrewWord, true }
func (HebrewWord) String() string                     { return POSHebrewWord.Code() }

// AramaicWord marks a transliterated Aramaic word inside Greek text.
type AramaicWord struct{ noComponents }

func (AramaicWord) PartOfSpeech() (PartOfSpeech, bool) { return POSAramaicWord, true }
func (AramaicWord) String() string                     { return POSAramaicWord.Code() }

// Indeclinable is the opaque "Indec" marker.
type Indeclinable struct{ noComponents }

func (Indeclinable) PartOfSpeech() (PartOfSpeech, bool) { return 0, false }
func (Indeclinable) String() string                     { return literalIndeclinable }

// IntensiveParticle is the opaque "IntPrtcl" marker.
type IntensiveParticle struct{ noComponents }

func (IntensiveParticle) PartOfSpeech() (PartOfSpeech, bool) { return 0, false }
func (IntensiveParticle) String() string                     { return literalIntensiveParticle }
