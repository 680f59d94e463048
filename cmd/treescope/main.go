package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Parse flags first (before positional args)
	args := os.Args[1:]
	debugMode := false

	// Extract --debug/-d flag
	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("treescope %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	// Route framework logging to a file; stderr would corrupt the alt screen
	if debugMode {
		f, err := tea.LogToFile("treescope-debug.log", "treescope")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to open debug log: %v\n", err)
		} else {
			defer f.Close()
		}
	}

	scenePath := filteredArgs[0]

	// Check if file exists
	if _, err := os.Stat(scenePath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: scene file not found: %s\n", scenePath)
		os.Exit(1)
	}

	// Create the TUI model
	m := NewModel(scenePath)

	// Create the Bubbletea program
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	// Run the program
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: treescope [options] <scene.json>\n")
	fmt.Fprintf(os.Stderr, "Try 'treescope --help' for more information.\n")
}

func printHelp() {
	fmt.Println("treescope - Interactive TUI for Scene Tree Documents")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  treescope [options] <scene.json>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Launches an interactive terminal UI for browsing scene hierarchies.")
	fmt.Println()
	fmt.Println("  Features:")
	fmt.Println("    - Split-pane layout (tree view + node detail)")
	fmt.Println("    - Keyboard navigation (vim-style keys supported)")
	fmt.Println("    - Expand/collapse branches")
	fmt.Println("    - Local and world pose display per node")
	fmt.Println("    - Copy node paths to the clipboard (c)")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Navigate up/down")
	fmt.Println("    →/l         Expand branch")
	fmt.Println("    ←/h         Collapse branch / Go to parent")
	fmt.Println("    Enter       Expand/collapse")
	fmt.Println("    E / C       Expand all / Collapse all")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ./treescope-debug.log")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  treescope level.json")
	fmt.Println("  treescope --debug skeleton.json")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'arenactl' command instead.")
}
