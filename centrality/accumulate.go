package centrality

import "github.com/katalvlaran/txgraph/core"

// Accumulate back-propagates dependencies from a finished shortest-path run
// on st and adds each vertex's share to scores (indexed by VertexID).
//
// Vertices are popped from st's ordered stack, farthest first. For every
// predecessor v of a popped w:
//
//	delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
//
// A w with sigma[w] == 0 contributes nothing. Each w other than source adds
// delta[w]/2 to its score: every unordered pair is seen from both ends.
//
// The ordered stack is empty on return.
func Accumulate(st *core.State, source core.VertexID, scores []float64) {
	for st.HasOrdered() {
		w := st.PopOrdered()
		if sw := st.Sigma[w]; sw != 0 {
			for _, v := range st.Preds[w] {
				st.Delta[v] += st.Sigma[v] / sw * (1 + st.Delta[w])
			}
		}
		if w != source {
			scores[w] += st.Delta[w] / 2
		}
	}
}
