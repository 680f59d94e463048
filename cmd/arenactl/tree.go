package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/scene"
	"github.com/joshuapare/arenakit/vectree"
)

var (
	printDepth int
	printNodes bool
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Inspect scene tree documents",
}

func init() {
	cmd := newTreePrintCmd()
	cmd.Flags().IntVar(&printDepth, "depth", 0, "Maximum depth, 0 for unlimited")
	cmd.Flags().BoolVar(&printNodes, "info", false, "Show per-node layout info")
	treeCmd.AddCommand(cmd)
	rootCmd.AddCommand(treeCmd)
}

func newTreePrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <scene.json>",
		Short: "Render the hierarchy as an indented tree",
		Long: `The print command renders a scene document as an indented tree,
one node per line.

Example:
  arenactl tree print level.json
  arenactl tree print level.json --depth 2
  arenactl tree print level.json --info`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreePrint(args)
		},
	}
	return cmd
}

// loadScene opens and loads a scene document, shared by the tree subcommands.
func loadScene(path string) (*scene.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene: %w", err)
	}
	defer f.Close()

	g, err := scene.Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	return g, nil
}

func runTreePrint(args []string) error {
	scenePath := args[0]

	printVerbose("Loading scene: %s\n", scenePath)

	g, err := loadScene(scenePath)
	if err != nil {
		return err
	}

	// JSON output re-emits the document in canonical form
	if jsonOut {
		return g.Save(os.Stdout)
	}

	opts := vectree.DumpOptions{
		MaxDepth: printDepth,
		ShowInfo: printNodes,
	}
	if err := g.Dump(os.Stdout, opts); err != nil {
		return fmt.Errorf("failed to render tree: %w", err)
	}

	return nil
}
