package measure

import "time"

// Measure collects one Metric per node of a graph.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric records the durations observed for a single node.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AddTransitionDuration(parentName string, elapsed time.Duration)
	AVGDuration() time.Duration
	AVGTransitionDuration() map[string]*TransitionInfo
	AllTransitions() map[string]*TransitionInfo
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
}
