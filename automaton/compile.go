package automaton

import "strings"

// Compile parses query as a regular path expression and returns the
// minimized DFA that recognizes it. The returned automaton is immutable and
// safe to share across any number of Driver instances.
//
// Compile fails with a *ParseError wrapping one of ErrEmptyPath,
// ErrUnrecognizedSyntax, or ErrBoundedRepetitionUnsupported; these are the
// only failure modes query authors can hit, matching the grammar's
// intentional absence of bounded repetition, inverse paths, and negation.
func Compile(query string) (*DFA, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &ParseError{Pos: 0, Err: ErrEmptyPath}
	}

	p := newParser(query)
	p.skipSpace()
	root, err := p.parsePath()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, &ParseError{Pos: p.pos, Err: ErrUnrecognizedSyntax}
	}

	p.n.start = root.start
	p.n.accept = root.accept

	dfa := determinize(p.n)
	dfa = minimize(dfa)
	return dfa, nil
}
