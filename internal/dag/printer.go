package dag

import (
	"fmt"
	"strings"
)

// Printer renders a graph node by node for inspection. Purely
// diagnostic.
type Printer struct {
	indent int
	output strings.Builder
}

// NewPrinter creates a new graph printer.
func NewPrinter() *Printer {
	return &Printer{indent: 0}
}

// Print returns the string representation of a graph.
func Print(g *Graph) string {
	p := NewPrinter()
	p.printGraph(g)
	return p.output.String()
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.output.WriteString("  ")
	}
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.writeIndent()
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

// printGraph prints every node in program order, classified by variant.
func (p *Printer) printGraph(g *Graph) {
	p.writeLine("DAG (%d wires, %d ops)", g.NumWires(), g.NumOps())
	p.indent++
	for _, n := range g.TopologicalNodes() {
		switch v := n.(type) {
		case *InNode:
			p.writeLine("in   q%d", v.Wire)
		case *OutNode:
			p.writeLine("out  q%d", v.Wire)
		case *OpNode:
			p.writeLine("op   %s", v.Operation())
		}
	}
	p.indent--
}
