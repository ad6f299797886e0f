// Package automaton compiles a regular path query into a minimized
// deterministic finite automaton (DFA) over edge labels.
//
// The pipeline is the textbook one: a hand-written recursive-descent parser
// walks the query grammar
//
//	Path  = Alt
//	Alt   = Seq ("|" Seq)*
//	Seq   = Elt ("/" Elt)*
//	Elt   = Primary ("*" | "+")?
//	Primary = label | "(" Path ")"
//
// building a Thompson-construction NFA as it goes; Compile then runs subset
// construction to determinize the NFA and a partition-refinement pass to
// minimize the result. Bounded repetition (e.g. "a{2,4}"), inverse paths,
// and negation are not part of the grammar at all: there is no AST node for
// them to parse into, so query writers get a clear ParseError instead of a
// silently-wrong automaton.
package automaton
