// Command basic runs a headless locomotion demo: a character walks forward
// through a small course (a vault obstacle, a climbable block and a drop),
// logging the events the controller fires along the way.
package main

import (
	"os"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/vantage-gg/stride"
	"github.com/vantage-gg/stride/controller"
	"github.com/vantage-gg/stride/event"
	"github.com/vantage-gg/stride/game"
	"github.com/vantage-gg/stride/mover"
	"github.com/vantage-gg/stride/settings"
	"github.com/vantage-gg/stride/worker"
	"github.com/vantage-gg/stride/world"

	"github.com/ethaniccc/float32-cube/cube"
)

func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.DebugLevel

	if os.Getenv("STRIDE_STATSVIEW") != "" {
		viewer.SetConfiguration(viewer.WithAddr("localhost:18066"))
		mgr := statsview.New()
		go mgr.Start()
	}

	conf, err := settings.Load("stride.toml")
	if err != nil {
		log.Fatalf("error loading settings: %v", err)
	}

	w := world.New()
	// Floor, a vault-height rail, a chest-height crate, and a wall.
	w.AddBox(cube.Box(-50, -1, -50, 50, 0, 50), world.LayerTerrain)
	w.AddBox(cube.Box(-2, 0, 4, 2, 1, 4.4), world.LayerDefault)
	w.AddBox(cube.Box(-2, 0, 10, 2, 1.2, 11), world.LayerDefault)
	w.AddBox(cube.Box(-2, 0, 18, 2, 3, 18.5), world.LayerDefault)

	caps := controller.Capsule{
		Radius:       conf.Capsule.Radius,
		Height:       conf.Capsule.Height,
		CenterOffset: conf.Capsule.CenterOffset,
		SlopeLimit:   conf.Capsule.SlopeLimit,
		StepOffset:   conf.Capsule.StepOffset,
	}
	mv := mover.New(w, caps, mgl32.Vec3{0, 0, 0}, world.MaskAll)

	manager := stride.NewManager()
	anim := &demoAnimator{log: log}
	c := manager.NewController("demo", log, conf, mv, w, anim, nil, world.MaskAll)
	anim.c = c
	c.SetHandler(&demoHandler{log: log})

	run := worker.NewRunner(60, func(dt float32) {
		c.SetMoveAndTurn(1, 0, true)
		c.Tick(dt)
		anim.Frame(dt)
	})
	run.Start()

	time.Sleep(10 * time.Second)
	run.Stop()

	st := c.Stats()
	log.Infof("done: ticks=%d jumps=%d landings=%d actions=%d pos=%v",
		st.Ticks, st.Jumps, st.Landings, st.ActionsFired, mv.Position())
}

// demoAnimator is a stand-in animation collaborator. It synthesizes root
// motion from the move parameter and plays context actions as fixed-length
// clips with animation-authored vertical motion.
type demoAnimator struct {
	log *logrus.Logger
	c   *controller.Controller

	move, turn float32
	airborne   bool

	actionKind event.ActionKind
	actionLeft float32
	actionRise float32
}

func (a *demoAnimator) SetFloat(p controller.Param, v float32) {
	switch p {
	case controller.ParamMove:
		a.move = v
	case controller.ParamTurn:
		a.turn = v
	}
}

func (a *demoAnimator) SetBool(p controller.Param, v bool) {
	if p == controller.ParamAirborne {
		a.airborne = v
	}
}

func (a *demoAnimator) Trigger(t controller.Trigger) {
	a.log.Debugf("animator trigger: %d", t)
}

func (a *demoAnimator) RequestAction(kind event.ActionKind) {
	a.actionKind = kind
	a.actionLeft = 0.6
	switch kind {
	case event.ActionVault:
		a.actionRise = 1.1
	case event.ActionClimbLow:
		a.actionRise = 1.3
	case event.ActionClimbHigh:
		a.actionRise = 3.1
	}
	a.c.NotifyActionStart()
}

func (a *demoAnimator) CancelAction() {
	a.actionLeft = 0
}

// Frame plays the current pose and feeds its deltas back through the
// controller's compose callback.
func (a *demoAnimator) Frame(dt float32) {
	if a.actionLeft > 0 {
		step := dt / a.actionLeft
		if step > 1 {
			step = 1
		}
		rise := a.actionRise * step
		a.actionRise -= rise
		a.actionLeft -= dt

		forward := game.DirectionVector(a.c.Mover().Yaw()).Mul(1.2 * dt)
		a.c.ComposeFrame(forward.Add(mgl32.Vec3{0, rise, 0}), 0, dt)

		if a.actionLeft <= 0 {
			a.c.NotifyActionEnd()
		}
		return
	}

	speed := a.move * 4.2
	forward := game.DirectionVector(a.c.Mover().Yaw()).Mul(speed * dt)
	a.c.ComposeFrame(forward, 0, dt)
}

type demoHandler struct {
	controller.NopHandler
	log *logrus.Logger
}

func (h *demoHandler) HandleLanding(_ *event.Context, ev *event.LandingEvent, extra *orderedmap.OrderedMap[string, any]) {
	h.log.Infof("landing: severity=%s impact=%.2f extra=%v", ev.Severity, ev.ImpactSpeed, extra.Keys())
}

func (h *demoHandler) HandleAction(_ *event.Context, ev *event.ActionEvent) {
	h.log.Infof("action: %s", ev.Kind)
}
