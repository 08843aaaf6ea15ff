package component

import (
	"github.com/vantage-gg/stride/controller"
	"github.com/vantage-gg/stride/world"
)

// Register attaches the default component set to the given controller. source
// may be nil when intent only arrives through the external call path; mask
// selects the collision layers the sensors query.
func Register(c *controller.Controller, source controller.InputSource, mask world.Mask) {
	c.SetIntent(NewIntentComponent(c, source))
	c.SetGroundSensor(NewGroundSensorComponent(c, mask))
	c.SetVerticalMotion(NewVerticalMotionComponent(c))
	c.SetActionDetector(NewActionProbeComponent(c, mask))
	c.SetLandingClassifier(NewLandingClassifierComponent(c))
	c.SetComposer(NewMotionComposerComponent(c))
}
