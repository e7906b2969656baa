// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"qpeep/grammar"
	"qpeep/internal/dag"
	"qpeep/internal/rewrite"
)

func main() {
	fixpoint := flag.Bool("fixpoint", false, "rerun the rule list until no rule changes the circuit")
	maxSweeps := flag.Int("max-sweeps", rewrite.DefaultMaxSweeps, "sweep bound for -fixpoint")
	showDAG := flag.Bool("dag", false, "dump the optimized DAG node by node")
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: qpeep-cli [flags] <file.qpc>")
		os.Exit(1)
	}

	commonlog.Configure(*verbosity, nil)

	startTime := time.Now()
	path := flag.Arg(0)

	program, err := grammar.ParseFile(path)
	if err != nil {
		color.Red("Optimization failed after %s", formatDuration(time.Since(startTime)))
		os.Exit(1)
	}

	qc, err := grammar.ToCircuit(program)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		color.Red("Optimization failed after %s", formatDuration(time.Since(startTime)))
		os.Exit(1)
	}

	graph := dag.FromCircuit(qc)
	before := graph.NumOps()

	pipeline := rewrite.NewPipeline()
	if *fixpoint {
		pipeline.SetFixpoint(*maxSweeps)
	}
	if err := pipeline.Run(graph); err != nil {
		color.Yellow("Warning: %v", err)
	}

	for _, op := range graph.ToCircuit().Ops {
		fmt.Println(op)
	}
	if *showDAG {
		fmt.Print(dag.Print(graph))
	}

	duration := time.Since(startTime)
	color.Green("Optimized %s from %d to %d gates in %s",
		path, before, graph.NumOps(), formatDuration(duration))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
