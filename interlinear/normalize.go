package interlinear

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldReplacer maps letters that survive diacritic stripping but should
// still compare equal.
var foldReplacer = strings.NewReplacer(
	"ς", "σ", // final sigma
	"ϐ", "β", // curled beta
	"ϑ", "θ", // script theta
	"ϕ", "φ", // straight phi
)

// Fold returns the lookup key of a word or transliteration: lower case,
// without accents, breathings, iota subscripts or vowel-length marks, with
// collapsed whitespace. "ἐγέννησεν" becomes "εγεννησεν" and "Egennēsen"
// becomes "egennesen".
func Fold(s string) string {
	// transform chains keep state, so build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = foldReplacer.Replace(strings.ToLower(out))
	return strings.Join(strings.Fields(out), " ")
}
