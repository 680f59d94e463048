package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/arena/registry"
	"github.com/joshuapare/arenakit/profile"
	"github.com/joshuapare/arenakit/taskpool"
)

var (
	benchEntries int
	benchWorkers int
	benchKeep    int
)

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Exercise arena pools",
}

func init() {
	cmd := newPoolBenchCmd()
	cmd.Flags().IntVar(&benchEntries, "entries", 100000, "Entries created per worker")
	cmd.Flags().IntVar(&benchWorkers, "workers", 4, "Concurrent workers")
	cmd.Flags().IntVar(&benchKeep, "keep", 4, "Keep every Nth entry live until teardown")
	poolCmd.AddCommand(cmd)
	rootCmd.AddCommand(poolCmd)
}

func newPoolBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a concurrent create/destroy churn benchmark",
		Long: `The bench command churns a registry-backed pool from several task pool
workers: each worker creates entries and destroys most of them, keeping a
survivor fraction live so the embedded free list sees mixed pressure.

Example:
  arenactl pool bench
  arenactl pool bench --entries 250000 --workers 8
  arenactl pool bench --keep 10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoolBench()
		},
	}
	return cmd
}

// benchEntry is sized like a small game component.
type benchEntry struct {
	ID   int64
	Data [6]float32
}

type BenchResult struct {
	Workers   int
	Entries   int
	Keep      int
	ElapsedMS float64

	Creates   int
	Destroys  int
	Live      int
	GrowCalls int
	GrowBytes int64
}

func runPoolBench() error {
	if benchWorkers < 1 || benchEntries < 1 || benchKeep < 1 {
		return fmt.Errorf("workers, entries, and keep must all be positive")
	}

	printVerbose("Benchmarking: %d workers x %d entries, keeping every %dth\n",
		benchWorkers, benchEntries, benchKeep)

	reg := registry.New[benchEntry](registry.WithLabel[benchEntry]("bench"))
	tp := taskpool.New(taskpool.WithWorkers(benchWorkers), taskpool.WithLabel("bench"))
	defer tp.Close()

	prof := profile.NewProfiler()
	prof.Start("bench")

	futures := make([]*taskpool.Future[int], 0, benchWorkers)
	for w := 0; w < benchWorkers; w++ {
		task := fmt.Sprintf("worker%d", w)
		futures = append(futures, taskpool.Go(tp, func() (int, error) {
			prof.StartTask("bench", task)
			defer prof.StopTask("bench", task)
			return churnWorker(reg)
		}))
	}

	live := 0
	for _, fut := range futures {
		n, err := fut.Wait()
		if err != nil {
			return fmt.Errorf("bench worker failed: %w", err)
		}
		live += n
	}
	prof.Stop("bench")

	st := reg.Stats()
	total, _ := prof.Total("bench")

	result := BenchResult{
		Workers:   benchWorkers,
		Entries:   benchEntries,
		Keep:      benchKeep,
		ElapsedMS: total.TotalMS,
		Creates:   st.CreateCalls,
		Destroys:  st.DestroyCalls,
		Live:      live,
		GrowCalls: st.GrowCalls,
		GrowBytes: st.GrowBytes,
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(result)
	}

	// Text output
	printInfo("\nPool Benchmark\n")
	printInfo("%s\n\n", strings.Repeat("=", 40))

	printInfo("Configuration:\n")
	printInfo("  Workers: %d\n", result.Workers)
	printInfo("  Entries per worker: %s\n", formatNumber(int64(result.Entries)))
	printInfo("  Survivor stride: %d\n\n", result.Keep)

	printInfo("Pool Activity:\n")
	printInfo("  Creates: %s\n", formatNumber(int64(result.Creates)))
	printInfo("  Destroys: %s\n", formatNumber(int64(result.Destroys)))
	printInfo("  Live at teardown: %s\n", formatNumber(int64(result.Live)))
	printInfo("  Growths: %d (%s added)\n\n", result.GrowCalls, formatBytes(result.GrowBytes))

	printInfo("Timing:\n")
	if !quiet {
		if err := prof.Report(os.Stdout, "bench"); err != nil {
			return err
		}
	}

	return nil
}

// churnWorker creates entries and removes all but every benchKeep-th,
// returning the survivor count.
func churnWorker(reg *registry.Registry[benchEntry]) (int, error) {
	survivors := 0
	for i := 0; i < benchEntries; i++ {
		h, _, err := reg.Add(benchEntry{ID: int64(i)})
		if err != nil {
			return survivors, err
		}
		if i%benchKeep == 0 {
			survivors++
			continue
		}
		if err := reg.Remove(h); err != nil {
			return survivors, err
		}
	}
	return survivors, nil
}
