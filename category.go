package greekparse

import (
	"errors"
	"fmt"
	"strings"
)

// Category identifies one of the closed code alphabets a tag is built from.
type Category uint8

const (
	CategoryPartOfSpeech Category = iota + 1
	CategoryCase
	CategoryNumber
	CategoryGender
	CategoryPerson
	CategoryTense
	CategoryVoice
	CategoryMood
	CategoryComparison
)

var categoryNames = [...]string{
	CategoryPartOfSpeech: "Part of Speech",
	CategoryCase:         "Case",
	CategoryNumber:       "Number",
	CategoryGender:       "Gender",
	CategoryPerson:       "Person",
	CategoryTense:        "Tense",
	CategoryVoice:        "Voice",
	CategoryMood:         "Mood",
	CategoryComparison:   "Comparison",
}

// String returns the display name of the category, e.g. "Part of Speech".
func (c Category) String() string {
	if int(c) < len(categoryNames) && categoryNames[c] != "" {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Categories returns all categories in declared order.
func Categories() []Category {
	return []Category{
		CategoryPartOfSpeech, CategoryCase, CategoryNumber, CategoryGender,
		CategoryPerson, CategoryTense, CategoryVoice, CategoryMood, CategoryComparison,
	}
}

// ErrInvalidCode matches every *DecodeError through errors.Is.
var ErrInvalidCode = errors.New("invalid code")

// DecodeError reports a code that does not fit the grammar expected for it.
// Input is the offending substring; it is empty when the code ended before a
// required category was found.
type DecodeError struct {
	Category Category
	Input    string
}

func (e *DecodeError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("missing %s", e.Category)
	}
	return fmt.Sprintf("invalid %s - %q", e.Category, e.Input)
}

// Is reports whether target is ErrInvalidCode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidCode
}

// codeEntry binds one enumeration value to its canonical code and name.
type codeEntry[T ~uint8] struct {
	value T
	code  string
	name  string
}

// codeTable is the static code/value/name table of a single category.
type codeTable[T ~uint8] struct {
	category Category
	entries  []codeEntry[T]
}

// parse matches s against the table codes, ignoring case.
func (t *codeTable[T]) parse(s string) (T, error) {
	for _, e := range t.entries {
		if strings.EqualFold(e.code, s) {
			return e.value, nil
		}
	}
	return 0, &DecodeError{Category: t.category, Input: s}
}

// entry returns the table row for v.
func (t *codeTable[T]) entry(v T) (codeEntry[T], bool) {
	for _, e := range t.entries {
		if e.value == v {
			return e, true
		}
	}
	return codeEntry[T]{}, false
}

func (t *codeTable[T]) code(v T) string {
	e, _ := t.entry(v)
	return e.code
}

func (t *codeTable[T]) name(v T) string {
	e, _ := t.entry(v)
	return e.name
}

// values returns the declared values in table order.
func (t *codeTable[T]) values() []T {
	out := make([]T, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.value
	}
	return out
}
