package automaton_test

import (
	"fmt"

	"github.com/katalvlaran/windowrpq/automaton"
	"github.com/katalvlaran/windowrpq/model"
)

// ExampleCompile shows compiling a simple alternation-and-star query and
// stepping a DFA through a label sequence.
func ExampleCompile() {
	dfa, err := automaton.Compile("knows/(likes|follows)*")
	if err != nil {
		fmt.Println("compile error:", err)
		return
	}

	state := model.StartState
	for _, label := range []model.Label{"knows", "likes", "follows"} {
		next, ok := dfa.Step(state, label)
		if !ok {
			fmt.Println("no transition for", label)
			return
		}
		state = next
	}
	fmt.Println("accepted:", dfa.IsFinal(state))
	// Output: accepted: true
}
