package component

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/vantage-gg/stride/controller"
	"github.com/vantage-gg/stride/event"
	"github.com/vantage-gg/stride/game"
)

// LandingClassifierComponent rates the airborne to grounded edge by impact
// speed and fires exactly one landing event per edge, cooldown permitting.
type LandingClassifierComponent struct {
	mController *controller.Controller

	lastLandingTime float64
}

// NewLandingClassifierComponent returns a new landing classifier.
func NewLandingClassifierComponent(c *controller.Controller) *LandingClassifierComponent {
	return &LandingClassifierComponent{mController: c, lastLandingTime: -1e9}
}

// Classify consumes this tick's landing edge, if any.
func (lc *LandingClassifierComponent) Classify(st *controller.MotionState) {
	if !st.JustLanded {
		return
	}
	if st.Phase.InAction() {
		return
	}

	c := lc.mController
	conf := c.Conf().Landing
	if st.Now-lc.lastLandingTime < float64(conf.Cooldown) {
		return
	}

	impact := -st.LastAirborneDownSpeed
	severity := ClassifyImpact(impact, conf.HardSpeed, conf.DamageSpeed)

	extra := orderedmap.NewOrderedMap[string, any]()
	extra.Set("impact_speed", game.Round32(impact, 2))
	extra.Set("severity", severity.String())
	extra.Set("tick", st.Tick)

	ctx := event.C()
	c.Handler().HandleLanding(ctx, event.NewLandingEvent(severity, impact, st.Tick), extra)

	// The accumulator resets and the cooldown stamps even when the handler
	// cancels; cancellation only suppresses the animator trigger.
	c.VerticalMotion().ResetFallTracking()
	st.LastAirborneDownSpeed = 0
	lc.lastLandingTime = st.Now
	c.StatsRef().Landings++

	if !ctx.Cancelled() {
		c.Animator().Trigger(landingTrigger(severity))
	}
}

// ClassifyImpact is a total, monotonic step function over the impact speed.
func ClassifyImpact(impact, hard, damage float32) event.LandingSeverity {
	switch {
	case impact >= damage:
		return event.LandingDamage
	case impact >= hard:
		return event.LandingHard
	default:
		return event.LandingNormal
	}
}

func landingTrigger(severity event.LandingSeverity) controller.Trigger {
	switch severity {
	case event.LandingHard:
		return controller.TriggerLandHard
	case event.LandingDamage:
		return controller.TriggerLandDamage
	default:
		return controller.TriggerLandNormal
	}
}
