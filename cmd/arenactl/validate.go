package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/scene"
)

func init() {
	treeCmd.AddCommand(newTreeValidateCmd())
}

func newTreeValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scene.json>",
		Short: "Validate scene document structure",
		Long: `The validate command loads a scene document and checks its structural
invariants: branch strides must partition the forest, parent offsets must
resolve to an ancestor, and node names must be unique after Unicode
normalization.

Example:
  arenactl tree validate level.json
  arenactl tree validate level.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreeValidate(args)
		},
	}
	return cmd
}

func runTreeValidate(args []string) error {
	scenePath := args[0]

	printVerbose("Validating scene: %s\n", scenePath)

	f, err := os.Open(scenePath)
	if err != nil {
		return fmt.Errorf("failed to open scene: %w", err)
	}
	g, loadErr := scene.Load(f)
	f.Close()

	// Prepare result
	result := map[string]interface{}{
		"file":  scenePath,
		"valid": loadErr == nil,
	}
	if loadErr != nil {
		result["error"] = loadErr.Error()
	} else {
		result["nodes"] = g.Len()
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(result)
	}

	// Text output
	printInfo("\nValidating %s...\n\n", scenePath)

	if loadErr != nil {
		printInfo("  ✗ Validation failed: %v\n", loadErr)
		printInfo("\nResult: ✗ INVALID\n")
		return loadErr
	}

	printInfo("Structure Validation:\n")
	printInfo("  ✓ Document decodes\n")
	printInfo("  ✓ Branch strides partition the forest\n")
	printInfo("  ✓ Parent offsets resolve\n")
	printInfo("  ✓ Names unique after normalization\n")

	printInfo("\nResult: ✓ VALID (%d nodes)\n", g.Len())

	return nil
}
