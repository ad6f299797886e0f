package automaton

import (
	"sort"

	"github.com/katalvlaran/windowrpq/model"
)

// Transition describes one DFA edge, seen from either endpoint depending on
// whether it came from Outgoing or Incoming.
type Transition struct {
	Label model.Label
	State model.StateID
}

// StatePair identifies a (from, to) pair reachable via a given label,
// returned by TransitionsFor so the product-graph index can drive its
// neighbor enumeration directly off the query automaton.
type StatePair struct {
	From model.StateID
	To   model.StateID
}

// DFA is a compiled, minimized regular path query: a deterministic
// automaton over edge labels, with model.StartState as its unique start
// state. DFA values are immutable after Compile returns and safe to share
// across any number of concurrent Driver instances.
type DFA struct {
	numStates int
	final     map[model.StateID]bool
	forward   map[model.StateID]map[model.Label]model.StateID
	backward  map[model.StateID][]Transition // backward[s] = transitions INTO s
	alphabet  []model.Label
}

// NumStates returns the number of states in the compiled automaton.
func (d *DFA) NumStates() int { return d.numStates }

// IsFinal reports whether s is an accepting state.
func (d *DFA) IsFinal(s model.StateID) bool { return d.final[s] }

// Alphabet returns the distinct labels the automaton transitions on, sorted
// for deterministic iteration.
func (d *DFA) Alphabet() []model.Label {
	out := make([]model.Label, len(d.alphabet))
	copy(out, d.alphabet)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Step returns the state reached from s on label, and whether such a
// transition exists. A missing transition means the automaton rejects on
// that label from that state; it is not an error.
func (d *DFA) Step(s model.StateID, label model.Label) (model.StateID, bool) {
	row, ok := d.forward[s]
	if !ok {
		return 0, false
	}
	next, ok := row[label]
	return next, ok
}

// Outgoing returns every (label, target) transition leaving s, as an owned
// slice sorted by label then target so callers get deterministic order
// without holding a reference into the DFA's internal maps.
func (d *DFA) Outgoing(s model.StateID) []Transition {
	row := d.forward[s]
	out := make([]Transition, 0, len(row))
	for label, target := range row {
		out = append(out, Transition{Label: label, State: target})
	}
	sortTransitions(out)
	return out
}

// Incoming returns every (label, source) transition arriving at s, as an
// owned, sorted slice.
func (d *DFA) Incoming(s model.StateID) []Transition {
	row := d.backward[s]
	out := make([]Transition, len(row))
	copy(out, row)
	sortTransitions(out)
	return out
}

// TransitionsFor returns every (from, to) state pair connected by an edge
// labeled exactly label, across the whole automaton. The product-graph
// index uses this to know, for one incoming edge label, which automaton
// states could possibly advance.
func (d *DFA) TransitionsFor(label model.Label) []StatePair {
	var out []StatePair
	for from, row := range d.forward {
		if to, ok := row[label]; ok {
			out = append(out, StatePair{From: from, To: to})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// Accepts runs word against the automaton from model.StartState and
// reports whether it ends in a final state. It exists for tests and
// documentation, not the streaming evaluation path. It panics with
// ErrAlphabetMismatch if word contains a label outside the automaton's
// alphabet, mirroring the reference implementation's treatment of an
// out-of-alphabet label as a caller programming error rather than a
// rejectable input.
func (d *DFA) Accepts(word []model.Label) bool {
	alphabetSet := make(map[model.Label]struct{}, len(d.alphabet))
	for _, l := range d.alphabet {
		alphabetSet[l] = struct{}{}
	}
	state := model.StartState
	for _, label := range word {
		if _, ok := alphabetSet[label]; !ok {
			panic(ErrAlphabetMismatch)
		}
		next, ok := d.Step(state, label)
		if !ok {
			return false
		}
		state = next
	}
	return d.IsFinal(state)
}

func sortTransitions(ts []Transition) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Label != ts[j].Label {
			return ts[i].Label < ts[j].Label
		}
		return ts[i].State < ts[j].State
	})
}
