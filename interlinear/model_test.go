package interlinear

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"Greek", Greek},
		{"hebrew", Hebrew},
		{" ARAMAIC ", Aramaic},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		require.NoError(t, err, tt.in)
		if got != tt.want {
			t.Errorf("ParseLanguage(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	_, err := ParseLanguage("Latin")
	assert.Error(t, err)
	assert.Equal(t, "Unknown", LanguageUnknown.String())
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		in   string
		want Reference
	}{
		{"Matthew 1:1", Reference{"Matthew", 1, 1}},
		{"1 John 3:16", Reference{"1 John", 3, 16}},
		{"Song of Solomon 2:10", Reference{"Song of Solomon", 2, 10}},
		{"  Jude 1:25 ", Reference{"Jude", 1, 25}},
	}
	for _, tt := range tests {
		got, err := ParseReference(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	for _, in := range []string{"", "Matthew", "Matthew 1", "1:1", "Matthew a:b"} {
		_, err := ParseReference(in)
		assert.Error(t, err, "ParseReference(%q)", in)
	}
	_, err := ParseReference("Matthew 99999999999999999999:1")
	assert.ErrorIs(t, err, strconv.ErrRange)
	_, err = ParseReference("Matthew 1:99999999999999999999")
	assert.ErrorIs(t, err, strconv.ErrRange)
	assert.Equal(t, "1 John 3:16", Reference{"1 John", 3, 16}.String())
	assert.Equal(t, "", Reference{}.String())
}

func TestParseTranslation(t *testing.T) {
	tests := []struct {
		in   string
		want Translation
	}{
		{" - ", Translation{Kind: Omitted}},
		{" . . . ", Translation{Kind: Earlier}},
		{" vvv ", Translation{Kind: Later}},
		{"", Translation{Kind: Translated}},
		{" record ", Translation{Segments: []Segment{{SegmentWord, "record"}}}},
		{" [This is the] record ", Translation{Segments: []Segment{
			{SegmentGrammar, "This is the"},
			{SegmentWord, "record"},
		}}},
		{" [the] son [of] ", Translation{Segments: []Segment{
			{SegmentGrammar, "the"},
			{SegmentWord, "son"},
			{SegmentGrammar, "of"},
		}}},
		{"was  the father  of", Translation{Segments: []Segment{{SegmentWord, "was the father of"}}}},
		{"[unclosed bracket", Translation{Segments: []Segment{{SegmentGrammar, "unclosed bracket"}}}},
		{"[]", Translation{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTranslation(tt.in), "ParseTranslation(%q)", tt.in)
	}
}

func TestTranslationString(t *testing.T) {
	for _, in := range []string{"-", ". . .", "vvv", "[This is the] record", "[the] son [of]", "Jesus"} {
		if got := ParseTranslation(in).String(); got != in {
			t.Errorf("ParseTranslation(%q).String() = %q", in, got)
		}
	}
}
