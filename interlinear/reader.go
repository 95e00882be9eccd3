package interlinear

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet holding the tables in the published workbook.
const DefaultSheet = "biblosinterlinear96"

// RawEntry is one data row with every cell as read, before any parsing.
type RawEntry struct {
	// Row is the 1-based row number in the sheet.
	Row int

	HebrewSort  string
	GreekSort   string
	BSBSort     string
	Verse       string
	Language    string
	Text        string
	VariantText string
	Translit    string
	Code        string
	Description string
	StrongsHeb  string
	StrongsGrk  string
	VerseID     string
	Heading     string
	Crossref    string
	Paragraph   string
	StartQuote  string
	English     string
	Punctuation string
	EndQuote    string
	Footnotes   string
	EndText     string
}

type column int

const (
	colHebrewSort column = iota
	colGreekSort
	colBSBSort
	colVerse
	colLanguage
	colText
	colVariantText
	colTranslit
	colCode
	colDescription
	colStrongsHeb
	colStrongsGrk
	colVerseID
	colHeading
	colCrossref
	colParagraph
	colStartQuote
	colEnglish
	colPunctuation
	colEndQuote
	colFootnotes
	colEndText
)

// headerColumns maps trimmed, lower-cased header text to its column. The
// second "Parsing" header is the description; see header.
var headerColumns = map[string]column{
	"heb sort":   colHebrewSort,
	"greek sort": colGreekSort,
	"grk sort":   colGreekSort,
	"bsb sort":   colBSBSort,
	"verse":      colVerse,
	"language":   colLanguage,
	"wlc / nestle base tr rp wh ne na sbl":                      colText,
	"wlc / nestle base {tr} ⧼rp⧽ (wh) 〈ne〉 [na] ‹sbl› [[ecm]]": colVariantText,
	"translit":    colTranslit,
	"parsing":     colCode,
	"str heb":     colStrongsHeb,
	"str grk":     colStrongsGrk,
	"verseid":     colVerseID,
	"hdg":         colHeading,
	"crossref":    colCrossref,
	"par":         colParagraph,
	"“":           colStartQuote,
	"bsb version": colEnglish,
	"pnc":         colPunctuation,
	"”":           colEndQuote,
	"footnotes":   colFootnotes,
	"end text":    colEndText,
}

func (e *RawEntry) field(c column) *string {
	switch c {
	case colHebrewSort:
		return &e.HebrewSort
	case colGreekSort:
		return &e.GreekSort
	case colBSBSort:
		return &e.BSBSort
	case colVerse:
		return &e.Verse
	case colLanguage:
		return &e.Language
	case colText:
		return &e.Text
	case colVariantText:
		return &e.VariantText
	case colTranslit:
		return &e.Translit
	case colCode:
		return &e.Code
	case colDescription:
		return &e.Description
	case colStrongsHeb:
		return &e.StrongsHeb
	case colStrongsGrk:
		return &e.StrongsGrk
	case colVerseID:
		return &e.VerseID
	case colHeading:
		return &e.Heading
	case colCrossref:
		return &e.Crossref
	case colParagraph:
		return &e.Paragraph
	case colStartQuote:
		return &e.StartQuote
	case colEnglish:
		return &e.English
	case colPunctuation:
		return &e.Punctuation
	case colEndQuote:
		return &e.EndQuote
	case colFootnotes:
		return &e.Footnotes
	case colEndText:
		return &e.EndText
	}
	return nil
}

// ErrMissingColumn is returned when the header row lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// header maps cell index to column; unknown headers map to -1.
type header []column

func newHeader(cells []string) (header, error) {
	h := make(header, len(cells))
	seen := make(map[column]bool)
	for i, cell := range cells {
		c, ok := headerColumns[strings.ToLower(strings.TrimSpace(cell))]
		if !ok {
			h[i] = -1
			continue
		}
		if c == colCode && seen[colCode] {
			c = colDescription
		}
		if seen[c] {
			h[i] = -1
			continue
		}
		seen[c] = true
		h[i] = c
	}
	for _, c := range []column{colLanguage, colCode} {
		if !seen[c] {
			name := "Language"
			if c == colCode {
				name = "Parsing"
			}
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
	}
	return h, nil
}

func (h header) entry(row int, cells []string) RawEntry {
	e := RawEntry{Row: row}
	for i, cell := range cells {
		if i >= len(h) || h[i] < 0 {
			continue
		}
		*e.field(h[i]) = cell
	}
	return e
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// entries turns sheet rows into RawEntry values. The first non-blank row is
// the header; blank rows are skipped.
func entries(rows [][]string) ([]RawEntry, error) {
	var (
		h   header
		out []RawEntry
	)
	for i, cells := range rows {
		if blank(cells) {
			continue
		}
		if h == nil {
			var err error
			if h, err = newHeader(cells); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			continue
		}
		out = append(out, h.entry(i+1, cells))
	}
	if h == nil {
		return nil, errors.New("no header row")
	}
	return out, nil
}

// ReadWorkbook reads sheet from the .xlsx file at path. An empty sheet
// name selects the first worksheet.
func ReadWorkbook(path, sheet string) ([]RawEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readSheet(f, sheet)
}

// ReadWorkbookFrom is like ReadWorkbook but reads the workbook from r.
func ReadWorkbookFrom(r io.Reader, sheet string) ([]RawEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readSheet(f, sheet)
}

func readSheet(f *excelize.File, sheet string) ([]RawEntry, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheet, err)
	}
	defer rows.Close()

	var cells [][]string
	for rows.Next() {
		row, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("sheet %s: row %d: %w", sheet, len(cells)+1, err)
		}
		cells = append(cells, row)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheet, err)
	}
	out, err := entries(cells)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheet, err)
	}
	return out, nil
}

// ReadCSV reads a delimited export of the tables; comma is ',' for CSV and
// '\t' for TSV.
func ReadCSV(r io.Reader, comma rune) ([]RawEntry, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return entries(rows)
}
