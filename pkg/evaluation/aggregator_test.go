package evaluation

import (
	"testing"
)

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(nil)
	if summary.Total != 0 || summary.Passed != 0 || summary.Failed != 0 {
		t.Errorf("empty aggregate: got %+v, want zeroes", summary)
	}
}

func TestAggregate_Counts(t *testing.T) {
	results := []BatchResult{
		{Status: StatusPass},
		{Status: StatusFail},
		{Status: StatusFail},
		{Status: StatusPass},
		{Status: StatusFail},
	}

	summary := Aggregate(results)
	if summary.Total != 5 || summary.Passed != 2 || summary.Failed != 3 {
		t.Errorf("aggregate: got %+v, want {5 2 3}", summary)
	}
	if summary.Total != summary.Passed+summary.Failed {
		t.Errorf("invariant broken: %+v", summary)
	}
	if summary.Total != len(results) {
		t.Errorf("total must equal input length: %+v", summary)
	}
}
