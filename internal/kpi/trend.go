package kpi

import "fmt"

type Direction string

const (
	Positive Direction = "positive"
	Negative Direction = "negative"
	Neutral  Direction = "neutral"
)

// DeadZone is the absolute delta treated as no change.
const DeadZone = 0.1

// Benchmarks maps a KPI to its company reference value. Rates are in percent,
// hours per member in hours, and total enrollments per member.
type Benchmarks map[ID]float64

// DefaultBenchmarks are used when configuration supplies none.
func DefaultBenchmarks() Benchmarks {
	return Benchmarks{
		TotalEnrollments:    4.0,
		ActiveMemberRate:    72.0,
		CompletionRate:      58.0,
		AverageHours:        6.5,
		MandatoryCompletion: 85.0,
	}
}

type Trend struct {
	Direction Direction
	Delta     float64
	Benchmark float64
	Text      string
}

// NewTrend compares current against benchmark for the given KPI.
func NewTrend(id ID, current, benchmark float64) *Trend {
	delta := current - benchmark
	return &Trend{
		Direction: DirectionOf(delta),
		Delta:     delta,
		Benchmark: benchmark,
		Text:      trendText(id, delta, benchmark),
	}
}

func DirectionOf(delta float64) Direction {
	switch {
	case delta > DeadZone:
		return Positive
	case delta < -DeadZone:
		return Negative
	default:
		return Neutral
	}
}

func trendText(id ID, delta, benchmark float64) string {
	switch id {
	case AverageHours:
		return fmt.Sprintf("%+.1fh vs %.1fh benchmark", delta, benchmark)
	case TotalEnrollments:
		return fmt.Sprintf("%+.1f per member vs %.1f benchmark", delta, benchmark)
	default:
		return fmt.Sprintf("%+.1f pts vs %.1f%% benchmark", delta, benchmark)
	}
}
