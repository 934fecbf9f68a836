package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-stategraph/pkg/stategraph/measure"
	"github.com/askiada/go-stategraph/pkg/stategraph/model"
)

type graphDrawer struct {
	Drawer
	m         measure.Measure
	startTime time.Time
}

func (gd *graphDrawer) New() error {
	err := gd.AddNode(model.StartNode.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start node to drawer")
	}
	err = gd.AddNode(model.EndNode.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end node to drawer")
	}

	return nil
}

func (gd *graphDrawer) PrepareNode(node *model.NodeInfo) error {
	err := gd.AddNode(node.Name)
	if err != nil {
		return err
	}

	return nil
}

func (gd *graphDrawer) PrepareTransition(from, to *model.NodeInfo) error {
	err := gd.AddLink(from.Name, to.Name)
	if err != nil {
		return err
	}

	return nil
}

func (gd *graphDrawer) PrepareEntry(node *model.NodeInfo) error {
	err := gd.AddLink(model.StartNode.Name, node.Name)
	if err != nil {
		return err
	}

	return nil
}

func (gd *graphDrawer) PrepareFinish(node *model.NodeInfo) error {
	err := gd.AddLink(node.Name, model.EndNode.Name)
	if err != nil {
		return err
	}

	return nil
}

func (gd *graphDrawer) OnNodeResult(parent, node *model.NodeInfo, transitionDuration, computationDuration time.Duration) error {
	return nil
}

func (gd *graphDrawer) Finish() error {
	if gd.m != nil {
		err := gd.SetTotalTime(model.EndNode.Name, gd.startTime)
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}
		err = gd.AddMeasure(gd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := gd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw graph")
	}

	return nil
}

// GraphDrawer renders the graph to a file when a walk completes. The measure
// may be nil, in which case the drawing carries no timing annotations.
func GraphDrawer(drawer Drawer, measure measure.Measure) model.GraphOption {
	return &graphDrawer{drawer, measure, time.Now()}
}
