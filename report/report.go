// Package report writes analysis results: per-vertex CSV tables for
// distances and betweenness scores, and a YAML run summary.
//
// CSV tables share the layout
//
//	address,degree,<metric>
//
// where degree is the number of incident edges, so scores can be plotted
// against activity. Unreached distances are written as "inf".
package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/katalvlaran/txgraph/core"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Unreached is written in place of an infinite distance.
const Unreached = "inf"

// WriteDistances writes one row per vertex with its shortest-path distance.
func WriteDistances(w io.Writer, rows []core.DistanceRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"address", "degree", "distance"}); err != nil {
		return errors.Wrap(err, "report: write header")
	}
	for _, r := range rows {
		d := Unreached
		if r.Reached() {
			d = strconv.FormatUint(r.Distance, 10)
		}
		if err := cw.Write([]string{r.Address, strconv.Itoa(r.Degree), d}); err != nil {
			return errors.Wrapf(err, "report: write %s", r.Address)
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "report: flush distances")
}

// WriteScores writes one row per vertex with its betweenness score.
func WriteScores(w io.Writer, rows []core.ScoreRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"address", "degree", "score"}); err != nil {
		return errors.Wrap(err, "report: write header")
	}
	for _, r := range rows {
		rec := []string{r.Address, strconv.Itoa(r.Degree), strconv.FormatFloat(r.Score, 'g', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return errors.Wrapf(err, "report: write %s", r.Address)
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "report: flush scores")
}

// Summary is the YAML document produced by an analyze run.
type Summary struct {
	RunID      string             `yaml:"run_id,omitempty"`
	Dataset    string             `yaml:"dataset"`
	Vertices   int                `yaml:"vertices"`
	Edges      int                `yaml:"edges"`
	SelfLoops  int                `yaml:"self_loops"`
	TotalGas   uint64             `yaml:"total_gas"`
	Components int                `yaml:"components,omitempty"`
	Largest    int                `yaml:"largest_component,omitempty"`
	Path       *PathSummary       `yaml:"shortest_paths,omitempty"`
	Centrality *CentralitySummary `yaml:"centrality,omitempty"`
	Elapsed    time.Duration      `yaml:"elapsed"`
}

// PathSummary describes a single-source shortest-path run.
type PathSummary struct {
	Start    string `yaml:"start"`
	Fallback bool   `yaml:"fallback,omitempty"`
	Reached  int    `yaml:"reached"`
	Paths    uint64 `yaml:"paths"`
	MaxDist  uint64 `yaml:"max_distance"`
}

// CentralitySummary describes a betweenness run.
type CentralitySummary struct {
	Workers int     `yaml:"workers"`
	Top     []Entry `yaml:"top"`
}

// Entry is one ranked address.
type Entry struct {
	Address string  `yaml:"address"`
	Score   float64 `yaml:"score"`
}

// WriteSummary encodes s as YAML.
func WriteSummary(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "report: encode summary")
	}

	return errors.Wrap(enc.Close(), "report: close summary")
}

// ReadSummary decodes a document written by WriteSummary.
func ReadSummary(r io.Reader) (Summary, error) {
	var s Summary
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return s, errors.Wrap(err, "report: decode summary")
	}

	return s, nil
}
