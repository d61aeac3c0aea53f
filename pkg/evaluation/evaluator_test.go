package evaluation

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"supplier-portal-backend/domain"
	"supplier-portal-backend/entities"
)

func f(v float64) *float64 { return &v }

func referenceModel() *entities.QualityModel {
	return &entities.QualityModel{
		Name:                "reference",
		PurityMin:           60,
		FoamingMin:          300,
		DetergencyMin:       0,
		BiodegradabilityMin: 600,
	}
}

func TestEvaluateBatch_FailingProperties(t *testing.T) {
	batch := Batch{
		Label: "LOT-001",
		Metrics: Metrics{
			Purity:           f(58.7),
			Foaming:          f(298),
			Detergency:       f(999),
			Biodegradability: f(999),
		},
	}

	result, err := EvaluateBatch(batch, referenceModel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusFail {
		t.Errorf("status: got %q, want %q", result.Status, StatusFail)
	}
	want := []string{
		"Purity (58.7 < required 60)",
		"Foaming (298 < required 300)",
	}
	if !reflect.DeepEqual(result.FailureReasons, want) {
		t.Errorf("failure reasons: got %v, want %v", result.FailureReasons, want)
	}
}

func TestEvaluateBatch_AllPass(t *testing.T) {
	batch := Batch{
		Label: "LOT-002",
		Metrics: Metrics{
			Purity:           f(65.4),
			Foaming:          f(315),
			Detergency:       f(100),
			Biodegradability: f(700),
		},
	}

	result, err := EvaluateBatch(batch, referenceModel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusPass {
		t.Errorf("status: got %q, want %q", result.Status, StatusPass)
	}
	if len(result.FailureReasons) != 0 {
		t.Errorf("failure reasons should be empty, got %v", result.FailureReasons)
	}
}

func TestEvaluateBatch_MissingMetricCoercesToZero(t *testing.T) {
	// Absent measurements count as 0, so every non-zero threshold fails.
	result, err := EvaluateBatch(Batch{Label: "empty"}, referenceModel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusFail {
		t.Fatalf("status: got %q, want %q", result.Status, StatusFail)
	}
	want := []string{
		"Purity (0 < required 60)",
		"Foaming (0 < required 300)",
		"Biodegradability (0 < required 600)",
	}
	if !reflect.DeepEqual(result.FailureReasons, want) {
		t.Errorf("failure reasons: got %v, want %v", result.FailureReasons, want)
	}
	if result.Purity != 0 || result.Detergency != 0 {
		t.Errorf("coerced metrics should be 0, got %+v", result)
	}
}

func TestEvaluateBatch_ZeroThresholdAlwaysPasses(t *testing.T) {
	model := &entities.QualityModel{} // no requirements at all
	result, err := EvaluateBatch(Batch{Label: "anything"}, model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusPass {
		t.Errorf("status: got %q, want %q", result.Status, StatusPass)
	}
}

func TestEvaluateBatch_ReasonOrderIsFixed(t *testing.T) {
	model := &entities.QualityModel{
		PurityMin:           10,
		FoamingMin:          10,
		DetergencyMin:       10,
		BiodegradabilityMin: 10,
	}
	result, err := EvaluateBatch(Batch{Label: "all-low"}, model)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"Purity (0 < required 10)",
		"Foaming (0 < required 10)",
		"Detergency (0 < required 10)",
		"Biodegradability (0 < required 10)",
	}
	if !reflect.DeepEqual(result.FailureReasons, want) {
		t.Errorf("failure reasons: got %v, want %v", result.FailureReasons, want)
	}
}

func TestEvaluateBatch_NonFiniteThresholdFailsClosed(t *testing.T) {
	model := referenceModel()
	model.FoamingMin = math.NaN()

	batch := Batch{
		Label: "LOT-003",
		Metrics: Metrics{
			Purity:           f(99),
			Foaming:          f(99999),
			Detergency:       f(99),
			Biodegradability: f(999),
		},
	}

	result, err := EvaluateBatch(batch, model)
	if !errors.Is(err, domain.ErrModelMisconfigured) {
		t.Fatalf("error: got %v, want ErrModelMisconfigured", err)
	}
	if result.Status != StatusFail {
		t.Errorf("status: got %q, want %q", result.Status, StatusFail)
	}
}

func TestEvaluateBatch_MeasuredEqualToThresholdPasses(t *testing.T) {
	batch := Batch{
		Metrics: Metrics{
			Purity:           f(60),
			Foaming:          f(300),
			Biodegradability: f(600),
		},
	}
	result, err := EvaluateBatch(batch, referenceModel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusPass {
		t.Errorf("measured == threshold must pass, got %q (%v)", result.Status, result.FailureReasons)
	}
}
