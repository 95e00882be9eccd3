// Package interlinear reads the BSB translation tables and turns each row
// into a Word: original-language text, transliteration, Strong's numbers,
// the English rendering and its layout markup, and for Greek words the
// decoded parsing code.
package interlinear

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bsb-interlinear/greekparse"
)

// Language is the source language of a word.
type Language uint8

const (
	LanguageUnknown Language = iota
	Hebrew
	Greek
	Aramaic
)

var languageNames = map[Language]string{
	Hebrew:  "Hebrew",
	Greek:   "Greek",
	Aramaic: "Aramaic",
}

// ParseLanguage parses the "Language" column, ignoring case.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for l, name := range languageNames {
		if strings.EqualFold(name, s) {
			return l, nil
		}
	}
	return LanguageUnknown, fmt.Errorf("invalid language %q", s)
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return "Unknown"
}

// Reference locates a verse, e.g. "1 John 3:16".
type Reference struct {
	Book    string
	Chapter int
	Verse   int
}

// refRe matches "<book> <chapter>:<verse>"; book names may start with a digit.
var refRe = regexp.MustCompile(`^(.+?)\s+(\d+):(\d+)$`)

// ParseReference parses a verse reference such as "Matthew 1:1".
func ParseReference(s string) (Reference, error) {
	m := refRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Reference{}, fmt.Errorf("invalid verse reference %q", s)
	}
	chapter, err := strconv.Atoi(m[2])
	if err != nil {
		return Reference{}, fmt.Errorf("verse reference %q: chapter: %w", s, err)
	}
	verse, err := strconv.Atoi(m[3])
	if err != nil {
		return Reference{}, fmt.Errorf("verse reference %q: verse: %w", s, err)
	}
	return Reference{Book: m[1], Chapter: chapter, Verse: verse}, nil
}

// IsZero reports whether r is unset.
func (r Reference) IsZero() bool { return r.Book == "" }

func (r Reference) String() string {
	if r.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// TranslationKind tells how a source word shows up in the English text.
type TranslationKind uint8

const (
	// Translated: the word has its own English segments.
	Translated TranslationKind = iota
	// Omitted: not directly translated (" - ").
	Omitted
	// Earlier: rendered together with the previous word (" . . . ").
	Earlier
	// Later: rendered together with an upcoming word (" vvv ").
	Later
)

// SegmentKind separates the English words that render a source word from
// bracketed words supplied for grammar or context.
type SegmentKind uint8

const (
	SegmentWord SegmentKind = iota
	SegmentGrammar
)

// Segment is one run of English text.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Translation is the parsed "BSB version" column.
type Translation struct {
	Kind     TranslationKind
	Segments []Segment
}

// ParseTranslation parses the English column: " [This is the] record "
// yields a grammar segment "This is the" followed by the word "record".
// An unterminated bracket runs to the end of the text.
func ParseTranslation(s string) Translation {
	switch strings.TrimSpace(s) {
	case "-":
		return Translation{Kind: Omitted}
	case ". . .":
		return Translation{Kind: Earlier}
	case "vvv":
		return Translation{Kind: Later}
	}

	var t Translation
	add := func(kind SegmentKind, text string) {
		if text = strings.Join(strings.Fields(text), " "); text != "" {
			t.Segments = append(t.Segments, Segment{Kind: kind, Text: text})
		}
	}
	rest := s
	for rest != "" {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			add(SegmentWord, rest)
			break
		}
		add(SegmentWord, rest[:open])
		rest = rest[open+1:]
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			add(SegmentGrammar, rest)
			break
		}
		add(SegmentGrammar, rest[:end])
		rest = rest[end+1:]
	}
	return t
}

// String renders the English text back with grammar runs in brackets.
func (t Translation) String() string {
	switch t.Kind {
	case Omitted:
		return "-"
	case Earlier:
		return ". . ."
	case Later:
		return "vvv"
	}
	parts := make([]string, len(t.Segments))
	for i, s := range t.Segments {
		if s.Kind == SegmentGrammar {
			parts[i] = "[" + s.Text + "]"
		} else {
			parts[i] = s.Text
		}
	}
	return strings.Join(parts, " ")
}

// Word is one row of the translation tables.
type Word struct {
	// Row is the 1-based row number in the source sheet.
	Row int
	// HebrewSort, GreekSort and BSBSort order the word in the Hebrew,
	// Greek and English word orders.
	HebrewSort int
	GreekSort  int
	BSBSort    int

	Reference Reference
	Language  Language

	// Text is the word in the base text; VariantText holds words found
	// only in other editions.
	Text            string
	VariantText     string
	Transliteration string

	// Code is the raw parsing code and Description its English rendering.
	Code        string
	Description string
	// Tag is the decoded Code; nil for non-Greek words and failed decodes.
	Tag greekparse.Tag

	// StrongsHebrew and StrongsGreek are 0 when absent.
	StrongsHebrew int
	StrongsGreek  int

	Translation     Translation
	Heading         string
	CrossReferences []string
	Paragraph       Paragraph
	StartQuote      string
	Punctuation     string
	EndQuote        string
	Footnote        string
	EndText         string
}

// Verse is the ordered list of words sharing a verse.
type Verse struct {
	ID        int
	Reference Reference
	Words     []Word
}
