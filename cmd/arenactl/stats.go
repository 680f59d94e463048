package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/scene"
	"github.com/joshuapare/arenakit/vectree"
)

var statsNode string

func init() {
	cmd := newTreeStatsCmd()
	cmd.Flags().StringVar(&statsNode, "node", "", "Stats for a specific branch")
	treeCmd.AddCommand(cmd)
}

func newTreeStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <scene.json>",
		Short: "Show detailed statistics",
		Long: `The stats command shows detailed statistics about a scene document
including node counts, depth distribution, and branch sizes.

Example:
  arenactl tree stats level.json
  arenactl tree stats level.json --node "props"
  arenactl tree stats level.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTreeStats(args)
		},
	}
	return cmd
}

type SceneStats struct {
	FilePath     string
	FileSize     int64
	LastModified time.Time

	TotalNodes int
	Roots      int
	Leaves     int
	MaxDepth   int

	NodesByLevel map[int]int

	LargestBranch struct {
		Name  string
		Nodes int
	}

	WidestNode struct {
		Name     string
		Children int
	}
}

func runTreeStats(args []string) error {
	scenePath := args[0]

	printVerbose("Loading scene: %s\n", scenePath)

	// Get file info
	fileInfo, err := os.Stat(scenePath)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	g, err := loadScene(scenePath)
	if err != nil {
		return err
	}

	stats := SceneStats{
		FilePath:     scenePath,
		FileSize:     fileInfo.Size(),
		LastModified: fileInfo.ModTime(),
		NodesByLevel: make(map[int]int),
	}

	tr := g.Tree()

	visit := func(n *scene.Node, index, level int) {
		// Depth is 1-based for reporting
		depth := level + 1
		stats.TotalNodes++
		stats.NodesByLevel[depth]++
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}

		// Roots of the analyzed scope, not just forest roots
		if level == 0 {
			stats.Roots++
		}

		meta := tr.NodeAt(index)
		if meta.NbrChildren == 0 {
			stats.Leaves++
		}
		if int(meta.NbrChildren) > stats.WidestNode.Children {
			stats.WidestNode.Name = n.Name
			stats.WidestNode.Children = int(meta.NbrChildren)
		}
		if int(meta.BranchStride) > stats.LargestBranch.Nodes {
			stats.LargestBranch.Name = n.Name
			stats.LargestBranch.Nodes = int(meta.BranchStride)
		}
	}

	if statsNode != "" {
		start := g.Index(statsNode)
		if start == vectree.NullIndex {
			return fmt.Errorf("unknown node: %q", statsNode)
		}
		tr.DepthFirstLevelAt(start, visit)
	} else {
		tr.DepthFirstLevel(visit)
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(stats)
	}

	// Text output
	printInfo("\nScene Statistics: %s\n", scenePath)
	printInfo("%s\n\n", strings.Repeat("=", 40))

	// File information
	printInfo("File Information:\n")
	printInfo("  Path: %s\n", scenePath)
	printInfo("  Size: %s (%s bytes)\n", formatBytes(stats.FileSize), formatNumber(stats.FileSize))
	printInfo("  Last Modified: %s\n\n", stats.LastModified.Format("2006-01-02 15:04:05"))

	// Structure
	printInfo("Structure:\n")
	printInfo("  Total Nodes: %s\n", formatNumber(int64(stats.TotalNodes)))
	printInfo("  Roots: %d\n", stats.Roots)
	printInfo("  Leaves: %d\n", stats.Leaves)
	printInfo("  Max Depth: %d levels\n", stats.MaxDepth)
	printInfo("  Largest Branch: %s (%d nodes)\n", stats.LargestBranch.Name, stats.LargestBranch.Nodes)
	printInfo("  Most Children: %s (%d)\n\n", stats.WidestNode.Name, stats.WidestNode.Children)

	// Nodes by level
	if len(stats.NodesByLevel) > 0 {
		printInfo("Nodes by Level:\n")
		// Sort levels
		levels := make([]int, 0, len(stats.NodesByLevel))
		for level := range stats.NodesByLevel {
			levels = append(levels, level)
		}
		sort.Ints(levels)

		for _, level := range levels {
			if level <= 10 { // Only show first 10 levels
				printInfo("  Level %d: %s nodes\n", level, formatNumber(int64(stats.NodesByLevel[level])))
			}
		}
		if len(levels) > 10 {
			printInfo("  ... (%d more levels)\n", len(levels)-10)
		}
	}

	return nil
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func formatNumber(n int64) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	// Add commas
	var result strings.Builder
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}
	return result.String()
}
