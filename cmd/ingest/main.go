// Command ingest reads the BSB translation tables, decodes every Greek
// parsing code and reports the rows that fail.
//
// Usage:
//
//	ingest -file bsb_tables.xlsx [-sheet name] [-policy abort|skip|keep] [-limit n]
//	ingest -file bsb_tables.tsv
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bsb-interlinear/greekparse"
	"github.com/bsb-interlinear/greekparse/interlinear"
)

func readEntries(path, sheet string) ([]interlinear.RawEntry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		comma := ','
		if strings.EqualFold(filepath.Ext(path), ".tsv") {
			comma = '\t'
		}
		return interlinear.ReadCSV(f, comma)
	default:
		return interlinear.ReadWorkbook(path, sheet)
	}
}

// printVerses writes up to limit verses, one word per line.
func printVerses(w io.Writer, verses []interlinear.Verse, limit int) {
	for i, v := range verses {
		if i == limit {
			break
		}
		fmt.Fprintf(w, "%s\n", v.Reference)
		for _, word := range v.Words {
			desc := word.Description
			if word.Tag != nil {
				desc = greekparse.Describe(word.Tag)
			}
			fmt.Fprintf(w, "  %-16s %-16s %-12s %-28s %s\n",
				word.Text, word.Transliteration, word.Code, word.Translation, desc)
		}
	}
}

func main() {
	file := flag.String("file", "", "translation-table workbook (.xlsx) or export (.csv, .tsv)")
	sheet := flag.String("sheet", interlinear.DefaultSheet, "worksheet name")
	policyName := flag.String("policy", "keep", "on decode failure: abort, skip or keep")
	limit := flag.Int("limit", 0, "print the first n verses")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}
	policy, err := interlinear.ParsePolicy(*policyName)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("reading %s …", *file)
	entries, err := readEntries(*file, *sheet)
	if err != nil {
		log.Fatalf("failed to read data: %v", err)
	}

	res, err := interlinear.NewIngester(policy).Ingest(entries)
	for _, f := range res.Failures {
		log.Printf("row %d %q: %v", f.Row, f.Code, f.Err)
	}
	log.Printf("%d rows, %d verses, %d words, %d failures (policy %s)",
		len(entries), len(res.Verses), res.Words, len(res.Failures), policy)
	if err != nil {
		log.Fatalf("aborted: %v", err)
	}

	printVerses(os.Stdout, res.Verses, *limit)
}
