package store

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"ciphertoy/internal/domain"
	"ciphertoy/internal/rank"
)

// Results is the document a FileSink writes when its path ends in .json.
type Results struct {
	Top []domain.Candidate
	All []domain.Candidate
}

// JSON has no infinities; a text without letters is stored with a null score.
type resultsDoc struct {
	Top []candidateDoc `json:"top"`
	All []candidateDoc `json:"all"`
}

type candidateDoc struct {
	Score *float64 `json:"score"`
	Text  string   `json:"text"`
	Label string   `json:"label"`
}

func toDocs(cands []domain.Candidate) []candidateDoc {
	out := make([]candidateDoc, len(cands))
	for i, c := range cands {
		out[i] = candidateDoc{Text: c.Text, Label: c.Label}
		if !math.IsInf(c.Score, 0) && !math.IsNaN(c.Score) {
			score := c.Score
			out[i].Score = &score
		}
	}
	return out
}

func fromDocs(docs []candidateDoc) []domain.Candidate {
	out := make([]domain.Candidate, len(docs))
	for i, d := range docs {
		out[i] = domain.Candidate{Score: math.Inf(-1), Text: d.Text, Label: d.Label}
		if d.Score != nil {
			out[i].Score = *d.Score
		}
	}
	return out
}

// FileSink writes ranked candidates to a file. A .json path receives a
// Results document; any other path receives one "(score): text [label]" line
// per candidate of the full list.
type FileSink struct {
	path string
}

// NewFileSink returns a sink writing to path.
func NewFileSink(path string) *FileSink { return &FileSink{path: path} }

// Path returns the output file path.
func (s *FileSink) Path() string { return s.path }

// WriteResults replaces the output file.
func (s *FileSink) WriteResults(top, all []domain.Candidate) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create results directory: %w", err)
		}
	}
	var err error
	if s.isJSON() {
		err = writeJSON(s.path, resultsDoc{Top: toDocs(top), All: toDocs(all)}, 0o644)
	} else {
		err = writeFile(s.path, []byte(rank.Report(all)), 0o644)
	}
	if err != nil {
		return fmt.Errorf("write results %s: %w", s.path, err)
	}
	return nil
}

// ReadResults loads a document written by a .json FileSink.
func ReadResults(path string) (Results, error) {
	var doc resultsDoc
	if err := readJSON(path, &doc); err != nil {
		return Results{}, fmt.Errorf("read results %s: %w", path, err)
	}
	return Results{Top: fromDocs(doc.Top), All: fromDocs(doc.All)}, nil
}

func (s *FileSink) isJSON() bool {
	return strings.EqualFold(filepath.Ext(s.path), ".json")
}

var _ domain.ResultSink = (*FileSink)(nil)
