package pegtl

import (
	"fmt"
	"strings"
)

// Static grammar analysis.  Analyze never invokes a match: it walks
// the sub-rule lists reachable from a root and reports structural
// hazards a grammar author should fix before running the grammar.

type ProblemKind int

const (
	// ProblemLeftRecursion is a cycle reachable without consuming
	// input; matching it would recurse forever.
	ProblemLeftRecursion ProblemKind = iota

	// ProblemUnboundRule is a Named rule that was never bound.
	ProblemUnboundRule

	// ProblemEmptyRepetition is an unbounded repetition over a
	// rule that can succeed without consuming, an infinite loop.
	ProblemEmptyRepetition
)

func (k ProblemKind) String() string {
	switch k {
	case ProblemLeftRecursion:
		return "left recursion"
	case ProblemUnboundRule:
		return "unbound rule"
	default:
		return "empty repetition"
	}
}

// Problem is one structural hazard found by Analyze.
type Problem struct {
	Kind    ProblemKind
	Rule    Rule
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Kind, p.Message)
}

// Analyze statically checks every rule reachable from root.
func Analyze(root Rule) []Problem {
	a := &analyzer{
		nullable: map[Rule]bool{},
		color:    map[Rule]int{},
	}
	a.collect(root, map[Rule]bool{})
	a.solveNullable()

	var problems []Problem
	for _, r := range a.rules {
		if n, ok := r.(*NamedRule); ok && n.rule == nil {
			problems = append(problems, Problem{
				Kind:    ProblemUnboundRule,
				Rule:    r,
				Message: fmt.Sprintf("rule %s is never bound", n.name),
			})
		}
		if rep, ok := r.(*repRule); ok && rep.max < 0 && a.nullable[rep.sub] {
			problems = append(problems, Problem{
				Kind:    ProblemEmptyRepetition,
				Rule:    r,
				Message: fmt.Sprintf("%s repeats a rule that can match without consuming", rep.name),
			})
		}
	}
	problems = append(problems, a.findLeftRecursion(root)...)
	return problems
}

type analyzer struct {
	rules    []Rule
	nullable map[Rule]bool
	color    map[Rule]int
	stack    []Rule
}

// collect gathers reachable rules in a stable depth-first order.
func (a *analyzer) collect(r Rule, seen map[Rule]bool) {
	if r == nil || seen[r] {
		return
	}
	seen[r] = true
	a.rules = append(a.rules, r)
	for _, sub := range r.Subs() {
		a.collect(sub, seen)
	}
}

// solveNullable computes, by fixpoint, which rules can succeed
// without consuming input.
func (a *analyzer) solveNullable() {
	for changed := true; changed; {
		changed = false
		for _, r := range a.rules {
			if !a.nullable[r] && a.ruleNullable(r) {
				a.nullable[r] = true
				changed = true
			}
		}
	}
}

func (a *analyzer) ruleNullable(r Rule) bool {
	switch t := r.(type) {
	case successRule, eofRule, *atRule, *notAtRule, *optRule:
		return true
	case failureRule, anyRule, *runeRule, *runeRangeRule, *oneOfRule, *raiseRule:
		return false
	case *literalRule:
		return t.lit == ""
	case *seqRule:
		for _, sub := range t.subs {
			if !a.nullable[sub] {
				return false
			}
		}
		return true
	case *sorRule:
		for _, sub := range t.subs {
			if a.nullable[sub] {
				return true
			}
		}
		return false
	case *repRule:
		return t.min == 0 || a.nullable[t.sub]
	case *mustRule:
		return a.nullable[t.sub]
	case *tryCatchRule:
		return a.nullable[t.sub]
	case *NamedRule:
		return t.rule != nil && a.nullable[t.rule]
	default:
		// Unknown rule implementations are assumed to consume.
		return false
	}
}

// heads returns the sub-rules that can be entered at the same input
// position r itself was entered at.
func (a *analyzer) heads(r Rule) []Rule {
	switch t := r.(type) {
	case *seqRule:
		var out []Rule
		for _, sub := range t.subs {
			out = append(out, sub)
			if !a.nullable[sub] {
				break
			}
		}
		return out
	case *sorRule:
		return t.subs
	case *optRule:
		return []Rule{t.sub}
	case *repRule:
		return []Rule{t.sub}
	case *atRule:
		return []Rule{t.sub}
	case *notAtRule:
		return []Rule{t.sub}
	case *mustRule:
		return []Rule{t.sub}
	case *tryCatchRule:
		return []Rule{t.sub}
	case *NamedRule:
		if t.rule == nil {
			return nil
		}
		return []Rule{t.rule}
	default:
		return nil
	}
}

const (
	colorWhite = 0
	colorGrey  = 1
	colorBlack = 2
)

func (a *analyzer) findLeftRecursion(root Rule) []Problem {
	var problems []Problem
	var visit func(r Rule)
	visit = func(r Rule) {
		switch a.color[r] {
		case colorGrey:
			problems = append(problems, Problem{
				Kind:    ProblemLeftRecursion,
				Rule:    r,
				Message: a.cyclePath(r),
			})
			return
		case colorBlack:
			return
		}
		a.color[r] = colorGrey
		a.stack = append(a.stack, r)
		for _, head := range a.heads(r) {
			visit(head)
		}
		a.stack = a.stack[:len(a.stack)-1]
		a.color[r] = colorBlack
	}
	visit(root)
	return problems
}

// cyclePath renders the cycle that closes back at r, preferring the
// names of Named rules along the way.
func (a *analyzer) cyclePath(r Rule) string {
	start := 0
	for i, s := range a.stack {
		if s == r {
			start = i
			break
		}
	}
	var names []string
	for _, s := range a.stack[start:] {
		if n, ok := s.(*NamedRule); ok {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		for _, s := range a.stack[start:] {
			names = append(names, s.String())
		}
	}
	names = append(names, names[0])
	return strings.Join(names, " -> ")
}
