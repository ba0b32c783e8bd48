package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/OpenSwiftUIProject/OpenObservation/pkg/locking"
	"github.com/OpenSwiftUIProject/OpenObservation/pkg/logging"
	"github.com/OpenSwiftUIProject/OpenObservation/pkg/observation"
)

const (
	stageMutex = "mutex"
	stageSlot  = "slot"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a stress scenario against the synchronization primitives",
	Long: `Run executes the configured stages and reports per-stage throughput
and pass/fail.

Examples:
  # Default scenario: 8 workers x 10000 iterations, both stages
  obstress run

  # Heavier run from a scenario file, JSON report on the side
  obstress run --scenario soak.yaml --json-out report.json

  # Quick mutex-only check
  obstress run --workers 4 --iterations 1000 --stage mutex`,
	RunE: runStress,
}

var (
	runScenarioPath string
	runWorkers      int
	runIterations   int
	runStage        string
	runJSONOut      string
	runVerbose      bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runScenarioPath, "scenario", "", "Path to a YAML scenario file")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "Override worker count")
	runCmd.Flags().IntVar(&runIterations, "iterations", 0, "Override iterations per worker")
	runCmd.Flags().StringVar(&runStage, "stage", "", "Run a single stage (mutex or slot)")
	runCmd.Flags().StringVar(&runJSONOut, "json-out", "", "Write a JSON report to this path")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Enable debug logging")
}

func runStress(cmd *cobra.Command, args []string) error {
	level := logging.LevelInfo
	if runVerbose {
		level = logging.LevelDebug
	}
	if err := logging.Init(logging.Config{Level: level}); err != nil {
		return err
	}
	defer logging.Close()

	sc := defaultScenario()
	if runScenarioPath != "" {
		loaded, err := loadScenario(runScenarioPath)
		if err != nil {
			return err
		}
		sc = loaded
	}
	if runWorkers > 0 {
		sc.Workers = runWorkers
	}
	if runIterations > 0 {
		sc.Iterations = runIterations
	}
	if runStage != "" {
		sc.Stages = []string{runStage}
	}
	if err := sc.validate(); err != nil {
		return err
	}

	logging.Info("scenario starting",
		"name", sc.Name, "workers", sc.Workers, "iterations", sc.Iterations,
		"lock_size_bytes", locking.Size())

	report := Report{
		Scenario:  sc.Name,
		StartTime: time.Now(),
	}
	for _, stage := range sc.Stages {
		var result StageResult
		switch stage {
		case stageMutex:
			result = runMutexStage(sc)
		case stageSlot:
			result = runSlotStage(sc)
		}
		report.Results = append(report.Results, result)
	}
	report.EndTime = time.Now()

	fmt.Println(renderReport(report))

	if runJSONOut != "" {
		if err := writeJSONReport(report, runJSONOut); err != nil {
			return err
		}
		logging.Info("report written", "path", runJSONOut)
	}

	if !report.Passed() {
		return fmt.Errorf("scenario %q failed", sc.Name)
	}
	return nil
}

// runMutexStage checks mutual exclusion: every worker performs
// lock/increment/unlock cycles on one shared counter, so the final value
// must be exactly workers*iterations.
func runMutexStage(sc Scenario) StageResult {
	var mu locking.Mutex
	mu.Init()

	counter := 0
	start := time.Now()

	g := new(errgroup.Group)
	for w := 0; w < sc.Workers; w++ {
		g.Go(func() error {
			for i := 0; i < sc.Iterations; i++ {
				mu.Lock()
				counter++
				mu.Unlock()
			}
			return nil
		})
	}
	err := g.Wait()

	expected := int64(sc.Workers) * int64(sc.Iterations)
	return newStageResult(stageMutex, sc, start, int64(counter), expected, err)
}

// runSlotStage checks per-goroutine isolation: each worker installs its own
// transaction and every read along the way must return that exact handle.
func runSlotStage(sc Scenario) StageResult {
	start := time.Now()
	var observed int64

	g := new(errgroup.Group)
	results := make(chan int64, sc.Workers)
	for w := 0; w < sc.Workers; w++ {
		g.Go(func() error {
			tx := observation.NewTransaction()
			observation.SetCurrent(tx)
			defer observation.SetCurrent(nil)

			var n int64
			for i := 0; i < sc.Iterations; i++ {
				got := observation.Current()
				if got != tx {
					return fmt.Errorf("goroutine observed foreign transaction: want %v, got %v", tx, got)
				}
				n++
			}
			results <- n
			return nil
		})
	}
	err := g.Wait()
	close(results)
	for n := range results {
		observed += n
	}

	expected := int64(sc.Workers) * int64(sc.Iterations)
	return newStageResult(stageSlot, sc, start, observed, expected, err)
}
