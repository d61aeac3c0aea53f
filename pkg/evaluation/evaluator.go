package evaluation

import (
	"math"
	"strconv"

	"supplier-portal-backend/domain"
	"supplier-portal-backend/entities"
)

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

type (
	// Metrics carries one batch's measured values. A nil field means the
	// supplier did not report that property.
	Metrics struct {
		Purity           *float64
		Foaming          *float64
		Detergency       *float64
		Biodegradability *float64
	}

	Batch struct {
		Label   string
		Metrics Metrics
	}

	// BatchResult is the verdict for one batch. Measured values are the
	// coerced numbers the comparison actually used; FailureReasons is empty
	// iff Status is PASS.
	BatchResult struct {
		Status           string
		BatchLabel       string
		Purity           float64
		Foaming          float64
		Detergency       float64
		Biodegradability float64
		FailureReasons   []string
	}

	property struct {
		name      string
		measured  float64
		threshold float64
	}
)

// coerceMetric reproduces the portal's leniency: a missing measurement is
// treated as 0 for comparison purposes rather than rejected.
func coerceMetric(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// EvaluateBatch compares one batch against a model's thresholds. A property
// passes iff measured >= threshold; a threshold of 0 imposes no requirement.
// Properties are checked in the fixed order purity, foaming, detergency,
// biodegradability so failure reasons are reproducible.
//
// A non-finite threshold fails closed: the property can never pass, and
// domain.ErrModelMisconfigured is returned alongside the FAIL result so the
// caller can surface a configuration error instead of recording the verdict.
func EvaluateBatch(batch Batch, model *entities.QualityModel) (BatchResult, error) {
	result := BatchResult{
		Status:           StatusPass,
		BatchLabel:       batch.Label,
		Purity:           coerceMetric(batch.Metrics.Purity),
		Foaming:          coerceMetric(batch.Metrics.Foaming),
		Detergency:       coerceMetric(batch.Metrics.Detergency),
		Biodegradability: coerceMetric(batch.Metrics.Biodegradability),
	}

	properties := []property{
		{"Purity", result.Purity, model.PurityMin},
		{"Foaming", result.Foaming, model.FoamingMin},
		{"Detergency", result.Detergency, model.DetergencyMin},
		{"Biodegradability", result.Biodegradability, model.BiodegradabilityMin},
	}

	var configErr error
	for _, p := range properties {
		if math.IsNaN(p.threshold) || math.IsInf(p.threshold, 0) {
			configErr = domain.ErrModelMisconfigured
			result.Status = StatusFail
			result.FailureReasons = append(result.FailureReasons,
				p.name+" (threshold misconfigured)")
			continue
		}
		if p.threshold == 0 {
			continue
		}
		if p.measured < p.threshold {
			result.Status = StatusFail
			result.FailureReasons = append(result.FailureReasons,
				p.name+" ("+formatNumber(p.measured)+" < required "+formatNumber(p.threshold)+")")
		}
	}

	return result, configErr
}
