package automaton

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/windowrpq/model"
)

// minimize collapses equivalent states of d via iterative partition
// refinement (Moore's algorithm, the same equivalence-class-splitting idea
// Hopcroft's algorithm refines asymptotically): start with the coarsest
// partition that separates final from non-final states, then repeatedly
// split any block whose members disagree on which block they transition
// to for some label, until a fixed point is reached. States left in the
// same block after convergence are behaviorally indistinguishable and are
// merged into a single state of the result.
func minimize(d *DFA) *DFA {
	n := d.numStates
	alphabet := d.alphabet

	blockOf := make([]int, n)
	for s := 0; s < n; s++ {
		if d.final[model.StateID(s)] {
			blockOf[s] = 1
		}
	}
	numBlocks := 1
	for s := 0; s < n; s++ {
		if blockOf[s]+1 > numBlocks {
			numBlocks = blockOf[s] + 1
		}
	}

	for {
		sigToBlock := make(map[string]int)
		newBlockOf := make([]int, n)
		nextID := 0
		for s := 0; s < n; s++ {
			var b strings.Builder
			b.WriteString(strconv.Itoa(blockOf[s]))
			for _, label := range alphabet {
				b.WriteByte('|')
				if to, ok := d.forward[model.StateID(s)][label]; ok {
					b.WriteString(strconv.Itoa(blockOf[int(to)]))
				} else {
					b.WriteByte('x')
				}
			}
			key := b.String()
			id, ok := sigToBlock[key]
			if !ok {
				id = nextID
				sigToBlock[key] = id
				nextID++
			}
			newBlockOf[s] = id
		}
		stable := nextID == numBlocks
		blockOf = newBlockOf
		numBlocks = nextID
		if stable {
			break
		}
	}

	// Renumber blocks so the block containing the original start state
	// (state 0) becomes model.StartState, preserving the "state 0 is
	// always the start" convention across minimization.
	remap := make(map[int]model.StateID, numBlocks)
	remap[blockOf[0]] = model.StartState
	next := model.StateID(1)
	for b := 0; b < numBlocks; b++ {
		if b == blockOf[0] {
			continue
		}
		remap[b] = next
		next++
	}

	representative := make([]int, numBlocks)
	seen := make([]bool, numBlocks)
	for s := 0; s < n; s++ {
		if !seen[blockOf[s]] {
			seen[blockOf[s]] = true
			representative[blockOf[s]] = s
		}
	}

	forward := make(map[model.StateID]map[model.Label]model.StateID, numBlocks)
	final := make(map[model.StateID]bool)
	for b := 0; b < numBlocks; b++ {
		newID := remap[b]
		rep := representative[b]
		if d.final[model.StateID(rep)] {
			final[newID] = true
		}
		row := make(map[model.Label]model.StateID)
		for _, label := range alphabet {
			if to, ok := d.forward[model.StateID(rep)][label]; ok {
				row[label] = remap[blockOf[int(to)]]
			}
		}
		forward[newID] = row
	}

	return &DFA{
		numStates: numBlocks,
		final:     final,
		forward:   forward,
		backward:  buildBackward(forward),
		alphabet:  alphabet,
	}
}
