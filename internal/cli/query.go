package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treekit/pkg/tree"
)

// newQueryCmd creates the query command group for ancestry queries.
func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run ancestry queries against a tree",
		Long: `Query runs ancestry computations on a tree document. Nodes are
addressed by identity; when identities repeat, the first match in
pre-order wins.`,
	}

	cmd.AddCommand(newQueryLCACmd())
	cmd.AddCommand(newQueryPathCmd())
	cmd.AddCommand(newQueryDistanceCmd())
	return cmd
}

// newQueryLCACmd computes the lowest common ancestor of two or more nodes.
func newQueryLCACmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lca [file] [node] [node]...",
		Short: "Find the lowest common ancestor of nodes",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())

			t, err := loadTree(args[0], cfg)
			if err != nil {
				return err
			}

			refs := make([]tree.Ref[string], len(args)-1)
			for i, id := range args[1:] {
				refs[i] = byIdentity(id)
			}

			anc, err := t.LCA(refs...)
			if err != nil {
				return err
			}

			id, _ := anc.Identity()
			printKeyValue("ancestor", id)
			printKeyValue("depth", fmt.Sprintf("%d", anc.Depth()))
			return nil
		},
	}
}

// newQueryPathCmd prints the node-to-node path between two nodes.
func newQueryPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path [file] [a] [b]",
		Short: "Show the path between two nodes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())

			t, err := loadTree(args[0], cfg)
			if err != nil {
				return err
			}

			path, err := t.Path(byIdentity(args[1]), byIdentity(args[2]))
			if err != nil {
				return err
			}

			ids := make([]string, len(path))
			for i, n := range path {
				ids[i], _ = n.Identity()
			}
			printKeyValue("path", strings.Join(ids, " "+iconArrow+" "))
			printKeyValue("distance", fmt.Sprintf("%d", len(path)-1))
			return nil
		},
	}
}

// newQueryDistanceCmd computes edge distances between nodes or node groups.
//
// With single identities the distance is a single number:
//
//	treekit query distance tree.json 5 9
//
// Comma-separated identities form groups; the full distance matrix is
// printed, or folded to one number with --aggregate:
//
//	treekit query distance tree.json 5,6 9,3 --aggregate mean
func newQueryDistanceCmd() *cobra.Command {
	var aggregate string

	cmd := &cobra.Command{
		Use:   "distance [file] [a] [b]",
		Short: "Compute the edge distance between nodes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())

			t, err := loadTree(args[0], cfg)
			if err != nil {
				return err
			}

			as := strings.Split(args[1], ",")
			bs := strings.Split(args[2], ",")

			if len(as) == 1 && len(bs) == 1 && aggregate == "" {
				d, err := t.Distance(byIdentity(as[0]), byIdentity(bs[0]))
				if err != nil {
					return err
				}
				printKeyValue("distance", fmt.Sprintf("%d", d))
				return nil
			}

			a, b := groupRef(as), groupRef(bs)
			if aggregate != "" {
				agg, err := tree.ParseAggregate(aggregate)
				if err != nil {
					return err
				}
				v, err := t.AggregateDistance(a, b, agg)
				if err != nil {
					return err
				}
				printKeyValue(agg.String(), fmt.Sprintf("%g", v))
				return nil
			}

			rows, err := t.Resolve(a, t.DefaultOrder())
			if err != nil {
				return err
			}
			matrix, err := t.DistanceMatrix(tree.AtAll(rows...), b)
			if err != nil {
				return err
			}
			for i, row := range matrix {
				cells := make([]string, len(row))
				for j, d := range row {
					cells[j] = fmt.Sprintf("%d", d)
				}
				id, _ := rows[i].Identity()
				printKeyValue(id, strings.Join(cells, " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&aggregate, "aggregate", "", "fold the distance matrix: min, max, or mean")
	return cmd
}

// groupRef references every node whose identity is in ids.
func groupRef(ids []string) tree.Ref[string] {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return tree.Where(func(n *tree.Node[string]) bool {
		got, ok := n.Identity()
		if !ok {
			return false
		}
		_, member := set[got]
		return member
	})
}
