package ingest

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/katalvlaran/txgraph/core"
	"github.com/pkg/errors"
)

// Header is the column row written by Write and skipped by Read.
var Header = []string{"idx", "from_address", "to_address", "value", "gas", "gas_price"}

// Write emits every edge of g as one CSV record in edge-handle order, so
// Read on the output rebuilds the same vertices and edges.
// Isolated vertices have no record and are lost.
func Write(w io.Writer, g *core.Graph) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return errors.Wrap(err, "ingest: write header")
	}
	rec := make([]string, len(Header))
	for i, e := range g.Edges() {
		rec[0] = strconv.Itoa(i)
		rec[1] = g.Address(e.From)
		rec[2] = g.Address(e.To)
		rec[3] = strconv.FormatFloat(e.Value, 'g', -1, 64)
		rec[4] = strconv.FormatUint(e.Gas, 10)
		rec[5] = strconv.FormatUint(e.GasPrice, 10)
		if err := cw.Write(rec); err != nil {
			return errors.Wrapf(err, "ingest: write edge %d", i)
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "ingest: flush")
}
