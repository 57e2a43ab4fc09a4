package vectordb

import "fmt"

// Distance is the similarity metric a collection ranks candidates with.
// The string values match the engine's wire names.
type Distance string

const (
	// DistanceCosine ranks by cosine similarity (higher is better).
	DistanceCosine Distance = "Cosine"

	// DistanceDot ranks by dot product (higher is better).
	DistanceDot Distance = "Dot"

	// DistanceEuclid ranks by euclidean distance (lower is better; engines
	// report a metric-consistent score where the best match comes first).
	DistanceEuclid Distance = "Euclid"
)

// Valid reports whether d is one of the recognized metrics.
func (d Distance) Valid() bool {
	switch d {
	case DistanceCosine, DistanceDot, DistanceEuclid:
		return true
	}
	return false
}

// ParseDistance maps a metric name to a Distance. "Euclidean" is accepted as
// an alias for "Euclid". Unrecognized input is rejected — callers that need
// the legacy default-to-Cosine behavior must opt in via ParseDistanceLenient.
func ParseDistance(s string) (Distance, error) {
	switch s {
	case "Cosine":
		return DistanceCosine, nil
	case "Dot":
		return DistanceDot, nil
	case "Euclid", "Euclidean":
		return DistanceEuclid, nil
	}
	return "", fmt.Errorf("vectordb: unknown distance metric %q (want Cosine, Dot or Euclid)", s)
}

// ParseDistanceLenient maps a metric name to a Distance, falling back to
// Cosine for anything it does not recognize. This mirrors the permissive
// mapping of earlier tooling and exists only for compatibility; prefer
// ParseDistance, which surfaces typos instead of silently changing the
// collection's ranking function.
func ParseDistanceLenient(s string) Distance {
	d, err := ParseDistance(s)
	if err != nil {
		return DistanceCosine
	}
	return d
}
