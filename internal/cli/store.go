package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treekit/pkg/store"
	"github.com/matzehuels/treekit/pkg/treedoc"
)

// newStoreCmd creates the store command group for managing named trees.
func newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Save, load, list, and delete named trees",
		Long:  `Store persists trees under a name in the configured backend (file by default; redis and mongo via config).`,
	}

	cmd.AddCommand(newStoreSaveCmd())
	cmd.AddCommand(newStoreLoadCmd())
	cmd.AddCommand(newStoreListCmd())
	cmd.AddCommand(newStoreDeleteCmd())
	return cmd
}

// newStoreSaveCmd saves a tree document under a name.
func newStoreSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [name] [file]",
		Short: "Save a tree under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			doc, err := loadDocument(args[1])
			if err != nil {
				return err
			}
			if _, err := doc.Build(); err != nil {
				return fmt.Errorf("invalid tree: %w", err)
			}

			st, err := openStore(ctx, configFromContext(ctx))
			if err != nil {
				return err
			}
			defer st.Close()

			rec := store.NewRecord(args[0], doc)
			if err := st.Put(ctx, rec); err != nil {
				return err
			}
			printSuccess("Saved %s", args[0])
			printDetail("id: %s", rec.ID)
			return nil
		},
	}
}

// newStoreLoadCmd writes a stored tree back out as JSON.
func newStoreLoadCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "load [name]",
		Short: "Load a stored tree as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx, configFromContext(ctx))
			if err != nil {
				return err
			}
			defer st.Close()

			rec, err := st.Get(ctx, args[0])
			if errors.Is(err, store.ErrNotFound) {
				printError("No stored tree named %q", args[0])
				return err
			}
			if err != nil {
				return err
			}

			if output == "" {
				return treedoc.WriteJSON(os.Stdout, rec.Tree)
			}
			if err := treedoc.ExportJSON(output, rec.Tree); err != nil {
				return err
			}
			printSuccess("Loaded %s", args[0])
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

// newStoreListCmd lists stored trees with their node counts.
func newStoreListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx, configFromContext(ctx))
			if err != nil {
				return err
			}
			defer st.Close()

			recs, err := st.List(ctx)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				printInfo("No stored trees")
				return nil
			}

			for _, rec := range recs {
				size := 0
				if root, err := rec.Tree.Build(); err == nil {
					size = root.Size()
				}
				printKeyValue(rec.Name, fmt.Sprintf("%d nodes, updated %s", size, rec.UpdatedAt.Format("2006-01-02 15:04")))
			}
			return nil
		},
	}
}

// newStoreDeleteCmd deletes a stored tree.
func newStoreDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a stored tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx, configFromContext(ctx))
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(ctx, args[0]); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					printError("No stored tree named %q", args[0])
				}
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}
