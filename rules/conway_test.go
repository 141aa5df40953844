package rules

import (
	"fmt"
	"testing"
)

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		for _, alive := range []bool{false, true} {
			t.Run(fmt.Sprintf("alive=%v/n=%d", alive, neighbors), func(t *testing.T) {
				want := neighbors == 3 || (alive && neighbors == 2)
				if got := ApplyConwayRules(neighbors, alive); got != want {
					t.Errorf("ApplyConwayRules(%d, %v) = %v, want %v", neighbors, alive, got, want)
				}
			})
		}
	}
}

func TestBirthIgnoresPriorState(t *testing.T) {
	if !ApplyConwayRules(3, false) || !ApplyConwayRules(3, true) {
		t.Error("a cell with 3 neighbors must be alive next generation")
	}
}
