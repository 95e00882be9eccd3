package greekparse

// PartOfSpeech is the grammatical class named by the first segment of a code.
type PartOfSpeech uint8

const (
	POSVerb PartOfSpeech = iota + 1
	POSNoun
	POSAdverb
	POSAdjective
	POSArticle
	POSDemonstrativePronoun
	POSInterrogativeIndefinitePronoun
	POSPersonalPossessivePronoun
	POSReciprocalPronoun
	POSRelativePronoun
	POSReflexivePronoun
	POSPreposition
	POSConjunction
	POSInterjection
	POSParticle
	POSHebrewWord
	POSAramaicWord
)

var partOfSpeechTable = &codeTable[PartOfSpeech]{
	category: CategoryPartOfSpeech,
	entries: []codeEntry[PartOfSpeech]{
		{POSVerb, "V", "Verb"},
		{POSNoun, "N", "Noun"},
		{POSAdverb, "Adv", "Adverb"},
		{POSAdjective, "Adj", "Adjective"},
		{POSArticle, "Art", "Article"},
		{POSDemonstrativePronoun, "DPro", "Demonstrative Pronoun"},
		{POSInterrogativeIndefinitePronoun, "IPro", "Interrogative / Indefinite Pronoun"},
		{POSPersonalPossessivePronoun, "PPro", "Personal / Possessive Pronoun"},
		{POSReciprocalPronoun, "RecPro", "Reciprocal Pronoun"},
		{POSRelativePronoun, "RelPro", "Relative Pronoun"},
		{POSReflexivePronoun, "RefPro", "Reflexive Pronoun"},
		{POSPreposition, "Prep", "Preposition"},
		{POSConjunction, "Conj", "Conjunction"},
		{POSInterjection, "I", "Interjection"},
		{POSParticle, "Prtcl", "Particle"},
		{POSHebrewWord, "Heb", "Hebrew Word"},
		{POSAramaicWord, "Aram", "Aramaic Word"},
	},
}

// ParsePartOfSpeech parses a part-of-speech code such as "V" or "RelPro",
// ignoring case.
func ParsePartOfSpeech(s string) (PartOfSpeech, error) { return partOfSpeechTable.parse(s) }

// PartsOfSpeech returns every part of speech in declared order.
func PartsOfSpeech() []PartOfSpeech { return partOfSpeechTable.values() }

// Code returns the canonical code, e.g. "DPro".
func (p PartOfSpeech) Code() string { return partOfSpeechTable.code(p) }

// Name returns the display name, e.g. "Demonstrative Pronoun".
func (p PartOfSpeech) Name() string { return partOfSpeechTable.name(p) }

func (p PartOfSpeech) String() string { return p.Code() }

// Case is the grammatical case.
type Case uint8

const (
	Nominative Case = iota + 1
	Vocative
	Accusative
	Genitive
	Dative
)

var caseTable = &codeTable[Case]{
	category: CategoryCase,
	entries: []codeEntry[Case]{
		{Nominative, "N", "Nominative"},
		{Vocative, "V", "Vocative"},
		{Accusative, "A", "Accusative"},
		{Genitive, "G", "Genitive"},
		{Dative, "D", "Dative"},
	},
}

// ParseCase parses a case code, ignoring case.
func ParseCase(s string) (Case, error) { return caseTable.parse(s) }

// Cases returns every case in declared order.
func Cases() []Case { return caseTable.values() }

func (c Case) Code() string   { return caseTable.code(c) }
func (c Case) Name() string   { return caseTable.name(c) }
func (c Case) String() string { return c.Code() }

// Number is the grammatical number.
type Number uint8

const (
	Singular Number = iota + 1
	Plural
)

var numberTable = &codeTable[Number]{
	category: CategoryNumber,
	entries: []codeEntry[Number]{
		{Singular, "S", "Singular"},
		{Plural, "P", "Plural"},
	},
}

// ParseNumber parses a number code, ignoring case.
func ParseNumber(s string) (Number, error) { return numberTable.parse(s) }

// Numbers returns every number in declared order.
func Numbers() []Number { return numberTable.values() }

func (n Number) Code() string   { return numberTable.code(n) }
func (n Number) Name() string   { return numberTable.name(n) }
func (n Number) String() string { return n.Code() }

// Gender is the grammatical gender.
type Gender uint8

const (
	Masculine Gender = iota + 1
	Feminine
	Neuter
)

var genderTable = &codeTable[Gender]{
	category: CategoryGender,
	entries: []codeEntry[Gender]{
		{Masculine, "M", "Masculine"},
		{Feminine, "F", "Feminine"},
		{Neuter, "N", "Neuter"},
	},
}

// ParseGender parses a gender code, ignoring case.
func ParseGender(s string) (Gender, error) { return genderTable.parse(s) }

// Genders returns every gender in declared order.
func Genders() []Gender { return genderTable.values() }

func (g Gender) Code() string   { return genderTable.code(g) }
func (g Gender) Name() string   { return genderTable.name(g) }
func (g Gender) String() string { return g.Code() }

// Person is the grammatical person.
type Person uint8

const (
	First Person = iota + 1
	Second
	Third
)

var personTable = &codeTable[Person]{
	category: CategoryPerson,
	entries: []codeEntry[Person]{
		{First, "1", "1st Person"},
		{Second, "2", "2nd Person"},
		{Third, "3", "3rd Person"},
	},
}

// ParsePerson parses a person code ("1", "2" or "3").
func ParsePerson(s string) (Person, error) { return personTable.parse(s) }

// Persons returns every person in declared order.
func Persons() []Person { return personTable.values() }

func (p Person) Code() string   { return personTable.code(p) }
func (p Person) Name() string   { return personTable.name(p) }
func (p Person) String() string { return p.Code() }

// Tense is the verbal tense.
type Tense uint8

const (
	Present Tense = iota + 1
	Imperfect
	Future
	Aorist
	Perfect
	Pluperfect
)

var tenseTable = &codeTable[Tense]{
	category: CategoryTense,
	entries: []codeEntry[Tense]{
		{Present, "P", "Present"},
		{Imperfect, "I", "Imperfect"},
		{Future, "F", "Future"},
		{Aorist, "A", "Aorist"},
		{Perfect, "R", "Perfect"},
		{Pluperfect, "L", "Pluperfect"},
	},
}

// ParseTense parses a tense code, ignoring case.
func ParseTense(s string) (Tense, error) { return tenseTable.parse(s) }

// Tenses returns every tense in declared order.
func Tenses() []Tense { return tenseTable.values() }

func (t Tense) Code() string   { return tenseTable.code(t) }
func (t Tense) Name() string   { return tenseTable.name(t) }
func (t Tense) String() string { return t.Code() }

// Voice is the verbal voice. MiddlePassive is the only code longer than
// one character ("M/P").
type Voice uint8

const (
	Active Voice = iota + 1
	Middle
	Passive
	MiddlePassive
)

var voiceTable = &codeTable[Voice]{
	category: CategoryVoice,
	entries: []codeEntry[Voice]{
		{Active, "A", "Active"},
		{Middle, "M", "Middle"},
		{Passive, "P", "Passive"},
		{MiddlePassive, "M/P", "Middle or Passive"},
	},
}

// ParseVoice parses a voice code, ignoring case.
func ParseVoice(s string) (Voice, error) { return voiceTable.parse(s) }

// Voices returns every voice in declared order.
func Voices() []Voice { return voiceTable.values() }

func (v Voice) Code() string   { return voiceTable.code(v) }
func (v Voice) Name() string   { return voiceTable.name(v) }
func (v Voice) String() string { return v.Code() }

// Mood is the verbal mood. Infinitive and Participle are counted as moods.
type Mood uint8

const (
	Indicative Mood = iota + 1
	Imperative
	Subjunctive
	Optative
	Infinitive
	Participle
)

var moodTable = &codeTable[Mood]{
	category: CategoryMood,
	entries: []codeEntry[Mood]{
		{Indicative, "I", "Indicative"},
		{Imperative, "M", "Imperative"},
		{Subjunctive, "S", "Subjunctive"},
		{Optative, "O", "Optative"},
		{Infinitive, "N", "Infinitive"},
		{Participle, "P", "Participle"},
	},
}

// ParseMood parses a mood code, ignoring case.
func ParseMood(s string) (Mood, error) { return moodTable.parse(s) }

// Moods returns every mood in declared order.
func Moods() []Mood { return moodTable.values() }

func (m Mood) Code() string   { return moodTable.code(m) }
func (m Mood) Name() string   { return moodTable.name(m) }
func (m Mood) String() string { return m.Code() }

// Comparison is the degree of an adjective or adverb.
type Comparison uint8

const (
	Comparative Comparison = iota + 1
	Superlative
)

var comparisonTable = &codeTable[Comparison]{
	category: CategoryComparison,
	entries: []codeEntry[Comparison]{
		{Comparative, "C", "Comparative"},
		{Superlative, "S", "Superlative"},
	},
}

// ParseComparison parses a comparison code, ignoring case.
func ParseComparison(s string) (Comparison, error) { return comparisonTable.parse(s) }

// Comparisons returns every comparison degree in declared order.
func Comparisons() []Comparison { return comparisonTable.values() }

func (c Comparison) Code() string   { return comparisonTable.code(c) }
func (c Comparison) Name() string   { return comparisonTable.name(c) }
func (c Comparison) String() string { return c.Code() }

// CodeName is one row of a category alphabet.
type CodeName struct {
	Code string
	Name string
}

func pairs[T ~uint8](t *codeTable[T]) []CodeName {
	out := make([]CodeName, len(t.entries))
	for i, e := range t.entries {
		out[i] = CodeName{Code: e.code, Name: e.name}
	}
	return out
}

// Alphabet returns the code/name rows of category c in declared order,
// or nil for an unknown category.
func Alphabet(c Category) []CodeName {
	switch c {
	case CategoryPartOfSpeech:
		return pairs(partOfSpeechTable)
	case CategoryCase:
		return pairs(caseTable)
	case CategoryNumber:
		return pairs(numberTable)
	case CategoryGender:
		return pairs(genderTable)
	case CategoryPerson:
		return pairs(personTable)
	case CategoryTense:
		return pairs(tenseTable)
	case CategoryVoice:
		return pairs(voiceTable)
	case CategoryMood:
		return pairs(moodTable)
	case CategoryComparison:
		return pairs(comparisonTable)
	}
	return nil
}
