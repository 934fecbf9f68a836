package drawer

import (
	"time"

	"github.com/askiada/go-stategraph/pkg/stategraph/measure"
)

// Drawer is an interface that defines the methods for drawing a state graph.
type Drawer interface {
	// AddNode adds a node to the drawing.
	AddNode(nodeName string) error
	// AddLink adds a link between a parent and a child node.
	AddLink(parentNodeName, childNodeName string) error
	// Draw creates a file with the graph.
	Draw() error
	// SetTotalTime sets the total run time label on a node.
	SetTotalTime(nodeName string, startTime time.Time) error
	// AddMeasure overlays the collected durations on the drawing.
	AddMeasure(measure measure.Measure) error
}
