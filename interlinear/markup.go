package interlinear

import (
	"strings"

	"golang.org/x/net/html"
)

// quoteReplacer restores attribute quotes; the tables write `|` for `"`
// inside their HTML markup.
var quoteReplacer = strings.NewReplacer("|", `"`)

// Paragraph is the layout markup of the "Par" column, e.g.
// `<p class=|reg|><span class=|red|>`.
type Paragraph struct {
	// Break is set for a bare line break ("<br />").
	Break bool
	// Classes lists the class attributes in document order.
	Classes []string
}

// IsZero reports whether no paragraph markup was present.
func (p Paragraph) IsZero() bool { return !p.Break && len(p.Classes) == 0 }

// visit tokenizes markup and calls fn for every token until fn returns
// false or the input ends.
func visit(markup string, fn func(tt html.TokenType, tok html.Token) bool) {
	z := html.NewTokenizer(strings.NewReader(quoteReplacer.Replace(markup)))
	for {
		tt := z.Next()
		// io.EOF or malformed markup: keep what was read so far.
		if tt == html.ErrorToken {
			return
		}
		if !fn(tt, z.Token()) {
			return
		}
	}
}

// PlainText strips the tags from markup, decodes entities and collapses
// whitespace: `Greek <i>Am&#333;s</i>` becomes "Greek Amōs".
func PlainText(markup string) string {
	var sb strings.Builder
	visit(markup, func(tt html.TokenType, tok html.Token) bool {
		switch tt {
		case html.TextToken:
			sb.WriteString(tok.Data)
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			// inline tags such as <i> join their text to the neighbours
			if blockTags[tok.Data] {
				sb.WriteByte(' ')
			}
		}
		return true
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}

// blockTags separate the text around them.
var blockTags = map[string]bool{
	"br": true, "p": true, "div": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true,
}

// Heading returns the text of the "Hdg" column, e.g.
// `<p class=|hdg|>The Genealogy of Jesus` yields "The Genealogy of Jesus".
func Heading(markup string) string {
	return PlainText(markup)
}

// CrossReferences returns the anchor texts of the "Crossref" column:
// `(<a href=|../ruth/4.htm#18|>Ruth 4:18–22</a>; <a ...>Luke 3:23–38</a>)`
// yields ["Ruth 4:18–22", "Luke 3:23–38"].
func CrossReferences(markup string) []string {
	var (
		refs  []string
		depth int
		cur   strings.Builder
	)
	visit(markup, func(tt html.TokenType, tok html.Token) bool {
		switch tt {
		case html.StartTagToken:
			if tok.Data == "a" {
				depth++
				cur.Reset()
			}
		case html.EndTagToken:
			if tok.Data == "a" && depth > 0 {
				depth--
				if text := strings.Join(strings.Fields(cur.String()), " "); text != "" {
					refs = append(refs, text)
				}
			}
		case html.TextToken:
			if depth > 0 {
				cur.WriteString(tok.Data)
			}
		}
		return true
	})
	return refs
}

// ParseParagraph reads the "Par" column.
func ParseParagraph(markup string) Paragraph {
	var p Paragraph
	visit(markup, func(tt html.TokenType, tok html.Token) bool {
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			return true
		}
		if tok.Data == "br" {
			p.Break = true
		}
		for _, a := range tok.Attr {
			if a.Key == "class" && a.Val != "" {
				p.Classes = append(p.Classes, a.Val)
			}
		}
		return true
	})
	return p
}
