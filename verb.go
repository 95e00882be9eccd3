package greekparse

// Verb is a verb form.
//
// The first segment holds an optional tense, the mood and an optional voice:
// "V-PI-3S", "V-M-2P", "V-ANM/P". The optional second segment holds person
// and number for finite forms ("V-AIA-1P") or case, gender and number for
// participles ("V-APA-AFP").
//
// The second segment is decoded without regard to the mood, so whatever
// subset of Case, Person, Gender and Number parses is recorded.
type Verb struct {
	noComponents
	tense Tense
	mood  Mood
	voice Voice

	cas    Case
	person Person
	gender Gender
	number Number
}

func (Verb) PartOfSpeech() (PartOfSpeech, bool) { return POSVerb, true }

func (v Verb) Tense() (Tense, bool)   { return v.tense, v.tense != 0 }
func (v Verb) Mood() (Mood, bool)     { return v.mood, v.mood != 0 }
func (v Verb) Voice() (Voice, bool)   { return v.voice, v.voice != 0 }
func (v Verb) Case() (Case, bool)     { return v.cas, v.cas != 0 }
func (v Verb) Person() (Person, bool) { return v.person, v.person != 0 }
func (v Verb) Gender() (Gender, bool) { return v.gender, v.gender != 0 }
func (v Verb) Number() (Number, bool) { return v.number, v.number != 0 }

// Finite reports whether the mood is one that takes person and number.
func (v Verb) Finite() bool {
	switch v.mood {
	case Indicative, Imperative, Subjunctive, Optative:
		return true
	}
	return false
}

func (v Verb) String() string { return format(POSVerb.Code(), v) }

func (v Verb) layout() []group {
	return []group{
		group{}.with(v.Tense()).with(v.Mood()).with(v.Voice()),
		group{}.with(v.Case()).with(v.Person()).with(v.Gender()).with(v.Number()),
	}
}

func parseVerb(segs []string) (Tag, error) {
	seg, _ := segment(segs, 0)
	head, err := decodeSegment(seg, opt(CategoryTense), req(CategoryMood), opt(CategoryVoice))
	if err != nil {
		return nil, err
	}
	v := Verb{tense: head.tense, mood: head.mood, voice: head.voice}

	if seg, ok := segment(segs, 1); ok {
		tail, err := decodeSegment(seg,
			opt(CategoryCase), opt(CategoryPerson), opt(CategoryGender), opt(CategoryNumber))
		if err != nil {
			return nil, err
		}
		v.cas, v.person, v.gender, v.number = tail.cas, tail.person, tail.gender, tail.number
	}
	return v, nil
}
