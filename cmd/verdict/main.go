// Command verdict solves DIMACS CNF files with the verdict CDCL solver.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/k0kubun/pp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ericr/verdict/config"
	"github.com/ericr/verdict/encoding"
	"github.com/ericr/verdict/solver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	conf := config.New()

	root := &cobra.Command{
		Use:           "verdict input.cnf",
		Short:         fmt.Sprintf("verdict %s: a CDCL SAT solver", solver.Version()),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(conf, args[0])
		},
	}

	root.PersistentFlags().BoolVarP(&conf.Verbose, "verbose", "v", false, "set the logger to debug level and pretty-print the model")
	root.PersistentFlags().StringVar((*string)(&conf.ModelFormat), "format", string(config.ModelDIMACS), "model output format: dimacs|assignments")

	root.AddCommand(newBenchCmd(conf))

	return root
}

// runSolve is the single-file path: parse, solve, print the model or
// UNSAT, report stats through conf.Logger (stdout with config.New's
// defaults), and set the process exit code to the
// teacher's own convention (0 SAT, 3 UNSAT, 2 on any usage/parse error).
func runSolve(conf *config.Config, path string) error {
	applyVerbosity(conf)

	clauses, err := encoding.Open(path)
	if err != nil {
		return err
	}

	sat := solver.New(conf)
	for _, clause := range clauses {
		sat.AddClause(clause)
	}

	conf.Logger.Infof("starting verdict %s solver on %s", solver.Version(), path)
	start := time.Now()

	model, ok := sat.Solve()

	conf.Logger.Info("finished solving")
	reportStats(conf, sat, time.Since(start))

	if conf.Verbose {
		pp.Println(model)
	}

	if !ok {
		fmt.Fprintln(os.Stdout, "p UNSAT")
		os.Exit(3)
	}

	fmt.Fprintln(os.Stdout, "p SAT")
	printModel(conf, model)

	return nil
}

func printModel(conf *config.Config, model map[int]bool) {
	if conf.ModelFormat == config.ModelAssignments {
		vars := encoding.Model(model)
		for _, p := range vars {
			fmt.Fprintf(os.Stdout, "x%d = %t\n", abs(p), p > 0)
		}
		return
	}

	fmt.Fprintln(os.Stdout, encoding.FormatModel(model))
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func reportStats(conf *config.Config, s *solver.Solver, t time.Duration) {
	conf.Logger.WithFields(logrus.Fields{
		"time_taken_s": t.Seconds(),
		"variables":    s.NVars(),
		"constraints":  s.NConstrs(),
		"learnts":      s.NLearnts(),
		"conflicts":    s.NConflicts(),
		"propagations": s.NPropagations(),
		"decisions":    s.NDecisions(),
	}).Info("solve stats")
}

func applyVerbosity(conf *config.Config) {
	if conf.Verbose {
		conf.Logger.SetLevel(logrus.DebugLevel)
	}
}
