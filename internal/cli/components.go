package cli

import (
	"fmt"

	"github.com/katalvlaran/txgraph/bfs"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newComponentsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "Count connected components and size the largest one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			n, err := bfs.ConnectedComponents(g)
			if err != nil {
				return err
			}
			if !g.State().AllExplored() {
				log.Warn("BFS left vertices or edges unexplored")
			}
			largest, err := bfs.LargestComponent(g)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices: %d\nedges: %d\n", g.Order(), g.Size())
			fmt.Fprintf(out, "components: %d\nlargest component: %d vertices\n", n, len(largest))

			return nil
		},
	}
}
