package automaton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/windowrpq/model"
)

// subsetKey canonicalizes a set of NFA state indices into a stable map key,
// the standard way to intern subsets during subset construction.
func subsetKey(set map[int]struct{}) string {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

// determinize runs subset construction over n, starting from the
// epsilon-closure of n.start, producing a DFA whose states are dense
// model.StateID values assigned in discovery order (so model.StartState
// always maps to the closure of the NFA's start state).
func determinize(n *nfa) *DFA {
	alphabet := n.alphabet()

	type subsetInfo struct {
		id    model.StateID
		nfaIn map[int]struct{}
	}

	startClosure := n.epsilonClosure([]int{n.start})
	startKey := subsetKey(startClosure)

	discovered := map[string]*subsetInfo{
		startKey: {id: model.StartState, nfaIn: startClosure},
	}
	order := []*subsetInfo{discovered[startKey]}
	worklist := []*subsetInfo{discovered[startKey]}

	forward := map[model.StateID]map[model.Label]model.StateID{}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		row := make(map[model.Label]model.StateID)
		for _, label := range alphabet {
			var moved []int
			for nfaState := range cur.nfaIn {
				moved = append(moved, n.states[nfaState].labeled[label]...)
			}
			if len(moved) == 0 {
				continue
			}
			closure := n.epsilonClosure(moved)
			key := subsetKey(closure)

			info, ok := discovered[key]
			if !ok {
				info = &subsetInfo{id: model.StateID(len(order)), nfaIn: closure}
				discovered[key] = info
				order = append(order, info)
				worklist = append(worklist, info)
			}
			row[label] = info.id
		}
		forward[cur.id] = row
	}

	final := make(map[model.StateID]bool)
	for _, info := range order {
		if _, ok := info.nfaIn[n.accept]; ok {
			final[info.id] = true
		}
	}

	return &DFA{
		numStates: len(order),
		final:     final,
		forward:   forward,
		backward:  buildBackward(forward),
		alphabet:  alphabet,
	}
}

func buildBackward(forward map[model.StateID]map[model.Label]model.StateID) map[model.StateID][]Transition {
	backward := make(map[model.StateID][]Transition)
	for from, row := range forward {
		for label, to := range row {
			backward[to] = append(backward[to], Transition{Label: label, State: from})
		}
	}
	return backward
}
