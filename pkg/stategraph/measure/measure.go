// Package measure records per-node timings for a state graph. It implements
// the stategraph option interface and is typically paired with the drawer
// package to overlay the collected durations on the rendered graph.
package measure

import (
	"sync"
)

type DefaultMeasure struct {
	Nodes map[string]Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		Nodes: make(map[string]Metric),
	}
}

func (m *DefaultMeasure) AddMetric(name string) Metric {
	mt := &DefaultMetric{
		mu:             &sync.Mutex{},
		allTransitions: make(map[string]*TransitionInfo),
	}
	m.Nodes[name] = mt

	return mt
}

func (m *DefaultMeasure) GetMetric(name string) Metric {
	return m.Nodes[name]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	return m.Nodes
}

var _ Measure = (*DefaultMeasure)(nil)
