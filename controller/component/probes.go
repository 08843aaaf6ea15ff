package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vantage-gg/stride/controller"
	"github.com/vantage-gg/stride/event"
	"github.com/vantage-gg/stride/game"
	"github.com/vantage-gg/stride/world"
)

const (
	probeFeet = iota
	probeWaist
	probeHead
	probeCount
)

// ActionProbeComponent runs the three forward probes (feet, waist, head) and
// classifies the context action to fire. Classification is priority ordered:
// all three hits mean a high climb, waist+feet a low climb, waist alone a
// vault; anything else fires nothing.
type ActionProbeComponent struct {
	mController *controller.Controller
	mask        world.Mask

	lastActionTime float64
	lastEval       [probeCount]float64
	cached         [probeCount]bool
	warned         bool
}

// NewActionProbeComponent returns a new action probe detector querying the
// given layers.
func NewActionProbeComponent(c *controller.Controller, mask world.Mask) *ActionProbeComponent {
	return &ActionProbeComponent{
		mController:    c,
		mask:           mask,
		lastActionTime: -1e9,
		lastEval:       [probeCount]float64{-1e9, -1e9, -1e9},
	}
}

// Detect evaluates the probes and fires at most one context action.
func (ap *ActionProbeComponent) Detect(st *controller.MotionState) {
	c := ap.mController
	conf := c.Conf().Probes

	if conf.Distance <= 0 || conf.Radius <= 0 {
		// Misconfigured probes disable the detector for this configuration;
		// this is a non-fatal condition surfaced once.
		if !ap.warned {
			c.Log().Warnf("action probes misconfigured (distance=%v radius=%v), detector disabled", conf.Distance, conf.Radius)
			ap.warned = true
		}
		return
	}

	if st.Phase.InAction() {
		return
	}
	if st.MoveValue < conf.MinForwardIntent {
		return
	}
	if st.Now-ap.lastActionTime < float64(conf.Cooldown) {
		return
	}

	pos := c.Mover().Position()
	forward := game.DirectionVector(c.Mover().Yaw())
	heights := [probeCount]float32{conf.FeetHeight, conf.WaistHeight, conf.HeadHeight}

	for i := 0; i < probeCount; i++ {
		// Each probe re-evaluates on its own cadence and holds its last
		// result in between.
		if st.Now-ap.lastEval[i] < float64(conf.Cadence) {
			continue
		}
		origin := pos.Add(mgl32.Vec3{0, heights[i], 0})
		hit, ok := c.Sweeper().SweepSphere(origin, conf.Radius, forward, conf.Distance, ap.mask)
		// Floors and walkable slopes do not count; only near-vertical
		// surfaces do.
		ap.cached[i] = ok && hit.Normal.Dot(up) < game.WallDotLimit
		ap.lastEval[i] = st.Now
	}

	kind, ok := classify(ap.cached[probeHead], ap.cached[probeWaist], ap.cached[probeFeet])
	if !ok {
		return
	}

	ctx := event.C()
	c.Handler().HandleAction(ctx, event.NewActionEvent(kind, st.Tick))
	if ctx.Cancelled() {
		return
	}

	c.BeginAction(kind)
	ap.lastActionTime = st.Now
}

// classify maps the probe triple onto an action by priority. Higher-priority
// combinations suppress any lower-priority request the same triple would also
// satisfy.
func classify(head, waist, feet bool) (event.ActionKind, bool) {
	switch {
	case head && waist && feet:
		return event.ActionClimbHigh, true
	case !head && waist && feet:
		return event.ActionClimbLow, true
	case !head && waist && !feet:
		return event.ActionVault, true
	default:
		return 0, false
	}
}
