package rewrite

import (
	"fmt"

	"github.com/tliron/commonlog"

	"qpeep/internal/dag"
)

var log = commonlog.GetLogger("qpeep.rewrite")

// DefaultMaxSweeps bounds fixpoint iteration when no explicit bound is
// given.
const DefaultMaxSweeps = 64

// NonTerminationError reports a fixpoint run that was still changing the
// graph when the sweep bound was reached. The graph holds the last state
// reached and is safe to use.
type NonTerminationError struct {
	Sweeps int
}

func (e *NonTerminationError) Error() string {
	return fmt.Sprintf("rewrite: pipeline still changing after %d sweeps", e.Sweeps)
}

// Pipeline applies an ordered list of passes to a graph. By default each
// pass runs exactly once, in order; in fixpoint mode the whole list
// repeats until a full sweep reports no change or the sweep bound is
// hit. Passes run strictly sequentially: they are not commutative in
// general, since one pass's removal can invalidate a match another pass
// has already located.
type Pipeline struct {
	passes    []Pass
	fixpoint  bool
	maxSweeps int
}

// NewPipeline returns a pipeline loaded with the default rule set in its
// standard order.
func NewPipeline() *Pipeline {
	p := &Pipeline{}
	p.AddPass(&XHXToHZ{})
	p.AddPass(&HXHToZ{})
	p.AddPass(&CancelAdjacentH{})
	p.AddPass(&MergeRotations{})
	p.AddPass(&TCountTemplate{})
	p.AddPass(&DecomposeToffoli{})
	p.AddPass(&CancelAdjacentSwaps{})
	p.AddPass(&MergeAdjacentSwaps{})
	return p
}

// AddPass appends a pass to the pipeline.
func (p *Pipeline) AddPass(pass Pass) {
	p.passes = append(p.passes, pass)
}

// SetFixpoint switches the pipeline to fixpoint mode, bounded by
// maxSweeps full sweeps. maxSweeps <= 0 selects DefaultMaxSweeps.
func (p *Pipeline) SetFixpoint(maxSweeps int) {
	p.fixpoint = true
	if maxSweeps <= 0 {
		maxSweeps = DefaultMaxSweeps
	}
	p.maxSweeps = maxSweeps
}

// Run applies the passes to g in place. In fixpoint mode it returns
// *NonTerminationError when the sweep bound is exceeded; the graph then
// holds the last state reached and the caller may still use it.
func (p *Pipeline) Run(g *dag.Graph) error {
	if !p.fixpoint {
		p.sweep(g, 1)
		return nil
	}
	for sweep := 1; sweep <= p.maxSweeps; sweep++ {
		if !p.sweep(g, sweep) {
			return nil
		}
	}
	return &NonTerminationError{Sweeps: p.maxSweeps}
}

// sweep applies every pass once, in order, threading the mutated graph
// to the next pass. Reports whether any pass changed the graph.
func (p *Pipeline) sweep(g *dag.Graph, sweep int) bool {
	changed := false
	for _, pass := range p.passes {
		applied := pass.Apply(g)
		log.Debugf("sweep %d: %s (changed=%t, ops=%d)", sweep, pass.Name(), applied, g.NumOps())
		changed = changed || applied
	}
	return changed
}
