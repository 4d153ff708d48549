package pegtl

import "strings"

// PrintNode renders a parse tree in the box-drawing layout the CLI
// prints and the golden tests snapshot.
func PrintNode(n *Node) string {
	p := &nodePrinter{out: &strings.Builder{}}
	p.visit(n)
	return p.out.String()
}

type nodePrinter struct {
	pad []string
	out *strings.Builder
}

func (p *nodePrinter) visit(n *Node) {
	if n == nil {
		return
	}
	p.out.WriteString(n.Name)
	p.out.WriteString(" (")
	p.out.WriteString(n.Span.String())
	p.out.WriteString(")")
	p.out.WriteRune('\n')

	last := len(n.Children) - 1
	for i, child := range n.Children {
		p.padding()
		if i == last {
			p.out.WriteString("└── ")
			p.indent("    ")
		} else {
			p.out.WriteString("├── ")
			p.indent("│   ")
		}
		p.visit(child)
		p.unindent()
	}
}

func (p *nodePrinter) padding() {
	for _, item := range p.pad {
		p.out.WriteString(item)
	}
}

func (p *nodePrinter) indent(s string) {
	p.pad = append(p.pad, s)
}

func (p *nodePrinter) unindent() {
	p.pad = p.pad[:len(p.pad)-1]
}
