// Package ingest loads transaction CSV exports into a core.Graph.
//
// The expected layout is a header row followed by records of the form
//
//	idx,from_address,to_address,value,gas,gas_price
//
// The leading index column is ignored. Each record adds one edge; repeated
// addresses reuse their vertex.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/txgraph/core"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrMalformedRecord is returned, wrapped with the line number, when a record
// has too few columns, an empty address or an unparsable number.
var ErrMalformedRecord = errors.New("ingest: malformed record")

// minColumns is idx, from, to, value, gas, gas_price.
const minColumns = 6

// Stats summarizes one ingestion.
type Stats struct {
	Records   int // data rows read
	Edges     int // edges added
	Vertices  int // distinct addresses
	SelfLoops int // self-loop rows seen (added or skipped)
	Skipped   int // rows dropped by options
}

type options struct {
	limit         int
	skipSelfLoops bool
	logger        logrus.FieldLogger
}

// Option configures Read and Load.
type Option func(*options)

// WithLimit stops after n data rows; n <= 0 reads everything.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

// WithSkipSelfLoops drops rows whose sender and receiver are the same address.
func WithSkipSelfLoops() Option {
	return func(o *options) { o.skipSelfLoops = true }
}

// WithLogger sets the logger for ingestion messages.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Load opens path and reads it with Read.
func Load(path string, opts ...Option) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, errors.Wrapf(err, "ingest: open %s", path)
	}
	defer f.Close()

	g, st, err := Read(f, opts...)
	if err != nil {
		return nil, st, errors.WithMessagef(err, "ingest: %s", path)
	}

	return g, st, nil
}

// Read parses CSV transactions from r into a new graph.
// An input holding only a header, or nothing at all, yields an empty graph.
func Read(r io.Reader, opts ...Option) (*core.Graph, Stats, error) {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var st Stats
	g := core.NewGraph()
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return g, st, nil
		}
		return nil, st, errors.Wrap(err, "ingest: read header")
	}

	for o.limit <= 0 || st.Records < o.limit {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, st, errors.Wrap(err, "ingest: read record")
		}
		st.Records++
		line, _ := cr.FieldPos(0)

		tx, err := parseRecord(rec, line)
		if err != nil {
			return nil, st, err
		}
		if tx.from == tx.to {
			st.SelfLoops++
			if o.skipSelfLoops {
				st.Skipped++
				o.logger.WithFields(logrus.Fields{"line": line, "address": tx.from}).Debug("skipping self-loop")
				continue
			}
		}
		if _, err := g.AddTransaction(tx.from, tx.to, tx.value, tx.gas, tx.gasPrice); err != nil {
			return nil, st, errors.Wrapf(err, "ingest: line %d", line)
		}
		st.Edges++
	}
	st.Vertices = g.Order()

	o.logger.WithFields(logrus.Fields{
		"records":  st.Records,
		"edges":    st.Edges,
		"vertices": st.Vertices,
	}).Debug("transactions loaded")

	return g, st, nil
}

type transaction struct {
	from, to      string
	value         float64
	gas, gasPrice uint64
}

func parseRecord(rec []string, line int) (transaction, error) {
	if len(rec) < minColumns {
		return transaction{}, errors.Wrapf(ErrMalformedRecord, "line %d: %d columns, want %d", line, len(rec), minColumns)
	}
	tx := transaction{
		from: strings.TrimSpace(rec[1]),
		to:   strings.TrimSpace(rec[2]),
	}
	if tx.from == "" || tx.to == "" {
		return tx, errors.Wrapf(ErrMalformedRecord, "line %d: empty address", line)
	}

	var err error
	if tx.value, err = strconv.ParseFloat(strings.TrimSpace(rec[3]), 64); err != nil {
		return tx, errors.Wrapf(ErrMalformedRecord, "line %d: value %q", line, rec[3])
	}
	if tx.gas, err = strconv.ParseUint(strings.TrimSpace(rec[4]), 10, 64); err != nil {
		return tx, errors.Wrapf(ErrMalformedRecord, "line %d: gas %q", line, rec[4])
	}
	if tx.gasPrice, err = strconv.ParseUint(strings.TrimSpace(rec[5]), 10, 64); err != nil {
		return tx, errors.Wrapf(ErrMalformedRecord, "line %d: gas_price %q", line, rec[5])
	}

	return tx, nil
}
