// Command server exposes the parsing-code decoder as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/parse?code=<code>
//	POST /api/parse/batch   body: {"codes":["..."]}
//	GET  /api/categories
//	GET  /api/verse?ref=<book chapter:verse>   (only with -file)
//	GET  /api/search?q=<word or transliteration>  (only with -file)
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/bsb-interlinear/greekparse"
	"github.com/bsb-interlinear/greekparse/interlinear"
)

// ---- JSON response types ------------------------------------------------

type valueJSON struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type tagJSON struct {
	Code         string     `json:"code"`
	Description  string     `json:"description"`
	PartOfSpeech *valueJSON `json:"part_of_speech,omitempty"`
	Case         *valueJSON `json:"case,omitempty"`
	Gender       *valueJSON `json:"gender,omitempty"`
	Number       *valueJSON `json:"number,omitempty"`
	Person       *valueJSON `json:"person,omitempty"`
	Tense        *valueJSON `json:"tense,omitempty"`
	Voice        *valueJSON `json:"voice,omitempty"`
	Mood         *valueJSON `json:"mood,omitempty"`
	Comparison   *valueJSON `json:"comparison,omitempty"`
}

type batchResultJSON struct {
	Input string         `json:"input"`
	Tag   *tagJSON       `json:"tag,omitempty"`
	Error *errorResponse `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchResultJSON `json:"results"`
}

type categoryJSON struct {
	Category string      `json:"category"`
	Values   []valueJSON `json:"values"`
}

type categoriesResponse struct {
	Categories []categoryJSON `json:"categories"`
}

type wordJSON struct {
	Reference       string   `json:"reference,omitempty"`
	Text            string   `json:"text"`
	Transliteration string   `json:"transliteration,omitempty"`
	Language        string   `json:"language"`
	Strongs         int      `json:"strongs,omitempty"`
	English         string   `json:"english"`
	Code            string   `json:"code,omitempty"`
	Tag             *tagJSON `json:"tag,omitempty"`
}

type verseResponse struct {
	Reference string     `json:"reference"`
	Heading   string     `json:"heading,omitempty"`
	Words     []wordJSON `json:"words"`
}

type searchResponse struct {
	Query string     `json:"query"`
	Total int        `json:"total"`
	Words []wordJSON `json:"words"`
}

type errorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category,omitempty"`
	Input    string `json:"input,omitempty"`
}

// ---- helpers ------------------------------------------------------------

type named interface {
	Code() string
	Name() string
}

func value(v named, ok bool) *valueJSON {
	if !ok {
		return nil
	}
	return &valueJSON{Code: v.Code(), Name: v.Name()}
}

func toTagJSON(t greekparse.Tag) *tagJSON {
	if t == nil {
		return nil
	}
	return &tagJSON{
		Code:         t.String(),
		Description:  greekparse.Describe(t),
		PartOfSpeech: value(t.PartOfSpeech()),
		Case:         value(t.Case()),
		Gender:       value(t.Gender()),
		Number:       value(t.Number()),
		Person:       value(t.Person()),
		Tense:        value(t.Tense()),
		Voice:        value(t.Voice()),
		Mood:         value(t.Mood()),
		Comparison:   value(t.Comparison()),
	}
}

func toErrorResponse(err error) *errorResponse {
	resp := &errorResponse{Error: err.Error()}
	var de *greekparse.DecodeError
	if errors.As(err, &de) {
		resp.Category = de.Category.String()
		resp.Input = de.Input
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleParse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			writeError(w, http.StatusBadRequest, "missing 'code' query parameter")
			return
		}
		tag, err := greekparse.Parse(code)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, toErrorResponse(err))
			return
		}
		writeJSON(w, http.StatusOK, toTagJSON(tag))
	}
}

// maxBatch bounds the number of codes per batch request.
const maxBatch = 10000

func handleParseBatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Codes []string `json:"codes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Codes) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'codes' array")
			return
		}
		if len(body.Codes) > maxBatch {
			writeError(w, http.StatusRequestEntityTooLarge, "too many codes")
			return
		}

		out := make([]batchResultJSON, 0, len(body.Codes))
		for _, code := range body.Codes {
			res := batchResultJSON{Input: code}
			if tag, err := greekparse.Parse(code); err != nil {
				res.Error = toErrorResponse(err)
			} else {
				res.Tag = toTagJSON(tag)
			}
			out = append(out, res)
		}
		writeJSON(w, http.StatusOK, batchResponse{Results: out})
	}
}

func handleCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		var resp categoriesResponse
		for _, c := range greekparse.Categories() {
			cj := categoryJSON{Category: c.String()}
			for _, cn := range greekparse.Alphabet(c) {
				cj.Values = append(cj.Values, valueJSON{Code: cn.Code, Name: cn.Name})
			}
			resp.Categories = append(resp.Categories, cj)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// corpus holds an ingested workbook for verse and word lookups.
type corpus struct {
	verses map[interlinear.Reference]*interlinear.Verse
	// forms maps the folded text and transliteration of each word to its
	// occurrences.
	forms map[string][]*interlinear.Word
}

func newCorpus(verses []interlinear.Verse) *corpus {
	c := &corpus{
		verses: make(map[interlinear.Reference]*interlinear.Verse, len(verses)),
		forms:  make(map[string][]*interlinear.Word),
	}
	for i := range verses {
		v := &verses[i]
		if !v.Reference.IsZero() {
			c.verses[v.Reference] = v
		}
		for j := range v.Words {
			w := &v.Words[j]
			keys := []string{interlinear.Fold(w.Text), interlinear.Fold(w.Transliteration)}
			for k, key := range keys {
				if key == "" || (k == 1 && key == keys[0]) {
					continue
				}
				c.forms[key] = append(c.forms[key], w)
			}
		}
	}
	return c
}

func toWordJSON(w *interlinear.Word) wordJSON {
	strongs := w.StrongsGreek
	if w.Language != interlinear.Greek {
		strongs = w.StrongsHebrew
	}
	return wordJSON{
		Reference:       w.Reference.String(),
		Text:            w.Text,
		Transliteration: w.Transliteration,
		Language:        w.Language.String(),
		Strongs:         strongs,
		English:         w.Translation.String(),
		Code:            w.Code,
		Tag:             toTagJSON(w.Tag),
	}
}

func handleVerse(c *corpus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		ref, err := interlinear.ParseReference(r.URL.Query().Get("ref"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		v, ok := c.verses[ref]
		if !ok {
			writeError(w, http.StatusNotFound, "verse "+ref.String()+" not found")
			return
		}
		resp := verseResponse{Reference: v.Reference.String(), Words: make([]wordJSON, 0, len(v.Words))}
		for i := range v.Words {
			if resp.Heading == "" {
				resp.Heading = v.Words[i].Heading
			}
			resp.Words = append(resp.Words, toWordJSON(&v.Words[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// maxSearch bounds the number of words per search response.
const maxSearch = 200

func handleSearch(c *corpus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		q := interlinear.Fold(r.URL.Query().Get("q"))
		if q == "" {
			writeError(w, http.StatusBadRequest, "missing 'q' query parameter")
			return
		}
		words := c.forms[q]
		resp := searchResponse{Query: q, Total: len(words), Words: make([]wordJSON, 0, min(len(words), maxSearch))}
		for _, word := range words {
			if len(resp.Words) == maxSearch {
				break
			}
			resp.Words = append(resp.Words, toWordJSON(word))
		}
		status := http.StatusOK
		if len(words) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, resp)
	}
}

// ---- middleware ---------------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestID tags every request with an X-Request-ID and logs it.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %s %d %s", id, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

func newHandler(c *corpus, origins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse/batch", handleParseBatch())
	mux.HandleFunc("/api/parse", handleParse())
	mux.HandleFunc("/api/categories", handleCategories())
	if c != nil {
		mux.HandleFunc("/api/verse", handleVerse(c))
		mux.HandleFunc("/api/search", handleSearch(c))
	}

	cr := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return withRequestID(cr.Handler(mux))
}

// ---- main ---------------------------------------------------------------

func main() {
	file := flag.String("file", "", "optional BSB translation-table workbook to serve verses from")
	sheet := flag.String("sheet", interlinear.DefaultSheet, "worksheet name")
	addr := flag.String("addr", ":8080", "listen address")
	origins := flag.String("origins", "*", "comma-separated CORS allowed origins")
	flag.Parse()

	var c *corpus
	if *file != "" {
		log.Printf("loading %s …", *file)
		entries, err := interlinear.ReadWorkbook(*file, *sheet)
		if err != nil {
			log.Fatalf("failed to load data: %v", err)
		}
		res, err := interlinear.NewIngester(interlinear.PolicyKeep).Ingest(entries)
		if err != nil {
			log.Fatalf("failed to ingest data: %v", err)
		}
		c = newCorpus(res.Verses)
		log.Printf("data loaded: %d verses, %d words, %d failures", len(res.Verses), res.Words, len(res.Failures))
	}

	h := newHandler(c, strings.Split(*origins, ","))
	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, h); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
