package greekparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coded interface {
	~uint8
	Code() string
	Name() string
}

func roundTrip[T coded](t *testing.T, values []T, parse func(string) (T, error)) {
	t.Helper()
	require.NotEmpty(t, values)
	for _, v := range values {
		assert.NotEmpty(t, v.Name(), "value %d has no name", v)
		for _, in := range []string{v.Code(), strings.ToLower(v.Code()), strings.ToUpper(v.Code())} {
			got, err := parse(in)
			require.NoError(t, err, "parse(%q)", in)
			assert.Equal(t, v, got, "parse(%q)", in)
			assert.Equal(t, v.Code(), got.Code())
		}
	}
	_, err := parse("?")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestCodeRoundTrip(t *testing.T) {
	t.Run("PartOfSpeech", func(t *testing.T) { roundTrip(t, PartsOfSpeech(), ParsePartOfSpeech) })
	t.Run("Case", func(t *testing.T) { roundTrip(t, Cases(), ParseCase) })
	t.Run("Number", func(t *testing.T) { roundTrip(t, Numbers(), ParseNumber) })
	t.Run("Gender", func(t *testing.T) { roundTrip(t, Genders(), ParseGender) })
	t.Run("Person", func(t *testing.T) { roundTrip(t, Persons(), ParsePerson) })
	t.Run("Tense", func(t *testing.T) { roundTrip(t, Tenses(), ParseTense) })
	t.Run("Voice", func(t *testing.T) { roundTrip(t, Voices(), ParseVoice) })
	t.Run("Mood", func(t *testing.T) { roundTrip(t, Moods(), ParseMood) })
	t.Run("Comparison", func(t *testing.T) { roundTrip(t, Comparisons(), ParseComparison) })
}

func bijective[T ~uint8](t *testing.T, tbl *codeTable[T]) {
	t.Helper()
	codes := make(map[string]bool)
	values := make(map[T]bool)
	for i, e := range tbl.entries {
		code := strings.ToLower(e.code)
		assert.False(t, codes[code], "%s: duplicate code %q", tbl.category, e.code)
		assert.False(t, values[e.value], "%s: duplicate value %d", tbl.category, e.value)
		codes[code] = true
		values[e.value] = true
		// declared order is the integer order
		assert.Equal(t, T(i+1), e.value, "%s: entry %d out of order", tbl.category, i)
	}
}

func TestTablesBijective(t *testing.T) {
	bijective(t, partOfSpeechTable)
	bijective(t, caseTable)
	bijective(t, numberTable)
	bijective(t, genderTable)
	bijective(t, personTable)
	bijective(t, tenseTable)
	bijective(t, voiceTable)
	bijective(t, moodTable)
	bijective(t, comparisonTable)
}

func TestCodesAndNames(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{MiddlePassive.Code(), "M/P"},
		{MiddlePassive.Name(), "Middle or Passive"},
		{POSRelativePronoun.Code(), "RelPro"},
		{POSInterrogativeIndefinitePronoun.Name(), "Interrogative / Indefinite Pronoun"},
		{Third.Name(), "3rd Person"},
		{Pluperfect.Code(), "L"},
		{Perfect.Code(), "R"},
		{Infinitive.Code(), "N"},
		{Dative.String(), "D"},
		{CategoryPartOfSpeech.String(), "Part of Speech"},
		{Category(42).String(), "Category(42)"},
		{Case(0).Code(), ""},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestAlphabet(t *testing.T) {
	for _, c := range Categories() {
		assert.NotEmpty(t, Alphabet(c), c.String())
	}
	assert.Nil(t, Alphabet(Category(0)))
	assert.Equal(t, []CodeName{{"S", "Singular"}, {"P", "Plural"}}, Alphabet(CategoryNumber))
	assert.Len(t, Alphabet(CategoryPartOfSpeech), 17)
}

func TestVoiceConsumesSegmentRemainder(t *testing.T) {
	f, err := decodeSegment("ANM/P", opt(CategoryTense), req(CategoryMood), opt(CategoryVoice))
	require.NoError(t, err)
	assert.Equal(t, Aorist, f.tense)
	assert.Equal(t, Infinitive, f.mood)
	assert.Equal(t, MiddlePassive, f.voice)

	// a remainder that is not a voice code is left alone
	f, err = decodeSegment("AIX", opt(CategoryTense), req(CategoryMood), opt(CategoryVoice))
	require.NoError(t, err)
	assert.Zero(t, f.voice)
}
