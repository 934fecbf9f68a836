package measure

import (
	"time"

	"github.com/askiada/go-stategraph/pkg/stategraph/model"
)

type graphMeasure struct {
	Measure
	startTime time.Time
}

func (gm *graphMeasure) New() error {
	gm.AddMetric(model.StartNode.Name)
	gm.AddMetric(model.EndNode.Name)

	return nil
}

func (gm *graphMeasure) PrepareNode(node *model.NodeInfo) error {
	gm.AddMetric(node.Name)

	return nil
}

func (gm *graphMeasure) PrepareTransition(from, to *model.NodeInfo) error {
	return nil
}

func (gm *graphMeasure) PrepareEntry(node *model.NodeInfo) error {
	return nil
}

func (gm *graphMeasure) PrepareFinish(node *model.NodeInfo) error {
	return nil
}

func (gm *graphMeasure) OnNodeResult(parent, node *model.NodeInfo, transitionDuration, computationDuration time.Duration) error {
	gm.GetMetric(node.Name).AddDuration(computationDuration)
	gm.GetMetric(node.Name).AddTransitionDuration(parent.Name, transitionDuration)

	return nil
}

func (gm *graphMeasure) Finish() error {
	gm.GetMetric(model.EndNode.Name).SetTotalDuration(time.Since(gm.startTime))

	return nil
}

// GraphMeasure records per-node durations into the given measure while the
// graph runs.
func GraphMeasure(measure Measure) model.GraphOption {
	return &graphMeasure{measure, time.Now()}
}
