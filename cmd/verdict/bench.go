package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/ericr/verdict/config"
	"github.com/ericr/verdict/encoding"
	"github.com/ericr/verdict/solver"
)

// benchResult is one file's outcome, reported back to the collecting
// goroutine over a channel rather than a shared, mutex-guarded slice — the
// teacher's own concurrency idiom is "workers own their output, the caller
// only ranges over a channel" (see its trail/clause ownership split), which
// this mirrors at the process level instead of the in-solver level.
type benchResult struct {
	path     string
	ok       bool
	err      error
	elapsed  time.Duration
	vars     int
	conflict int
}

func newBenchCmd(conf *config.Config) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "bench <directory>",
		Short: "solve every .cnf/.cnf.gz file under a directory with a bounded worker pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(conf, args[0], workers)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "j", 4, "number of files to solve concurrently")

	return cmd
}

func runBench(conf *config.Config, dir string, workers int) error {
	applyVerbosity(conf)

	paths, err := findCNFFiles(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("bench: no .cnf or .cnf.gz files under %s", dir)
	}

	jobs := make(chan string, len(paths))
	results := make(chan benchResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go benchWorker(conf, jobs, results, &wg)
	}

	for _, p := range paths {
		jobs <- p
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	return reportBench(conf, results, len(paths))
}

func benchWorker(conf *config.Config, jobs <-chan string, results chan<- benchResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for path := range jobs {
		results <- solveOne(conf, path)
	}
}

func solveOne(conf *config.Config, path string) benchResult {
	clauses, err := encoding.Open(path)
	if err != nil {
		return benchResult{path: path, err: err}
	}

	sat := solver.New(conf)
	for _, clause := range clauses {
		sat.AddClause(clause)
	}

	start := time.Now()
	_, ok := sat.Solve()

	return benchResult{
		path:     path,
		ok:       ok,
		elapsed:  time.Since(start),
		vars:     sat.NVars(),
		conflict: sat.NConflicts(),
	}
}

func reportBench(conf *config.Config, results <-chan benchResult, total int) error {
	solved, failed := 0, 0

	for r := range results {
		if r.err != nil {
			failed++
			conf.Logger.WithError(r.err).Warnf("bench: %s", r.path)
			continue
		}

		solved++
		outcome := "UNSAT"
		if r.ok {
			outcome = "SAT"
		}
		conf.Logger.WithFields(map[string]interface{}{
			"outcome":   outcome,
			"vars":      r.vars,
			"conflicts": r.conflict,
			"elapsed_s": r.elapsed.Seconds(),
		}).Infof("%s", r.path)
	}

	fmt.Fprintf(os.Stdout, "solved %d/%d (%d failed to parse)\n", solved, total, failed)

	return nil
}

func findCNFFiles(dir string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(p, ".cnf") || strings.HasSuffix(p, ".cnf.gz") {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)

	return paths, nil
}
