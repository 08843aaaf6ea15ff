package component_test

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/vantage-gg/stride/controller"
	"github.com/vantage-gg/stride/controller/component"
	"github.com/vantage-gg/stride/event"
	"github.com/vantage-gg/stride/settings"
	"github.com/vantage-gg/stride/world"
)

type fakeMover struct {
	caps  controller.Capsule
	pos   mgl32.Vec3
	yaw   float32
	moves []mgl32.Vec3
}

func (m *fakeMover) Capsule() controller.Capsule { return m.caps }
func (m *fakeMover) Position() mgl32.Vec3        { return m.pos }
func (m *fakeMover) Yaw() float32                { return m.yaw }
func (m *fakeMover) SetYaw(yaw float32)          { m.yaw = yaw }

func (m *fakeMover) Move(delta mgl32.Vec3) {
	m.moves = append(m.moves, delta)
	m.pos = m.pos.Add(delta)
}

type fakeSweeper struct {
	fn func(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDist float32, mask world.Mask) (world.Hit, bool)
}

func (s *fakeSweeper) SweepSphere(origin mgl32.Vec3, radius float32, dir mgl32.Vec3, maxDist float32, mask world.Mask) (world.Hit, bool) {
	if s.fn == nil {
		return world.Hit{}, false
	}
	return s.fn(origin, radius, dir, maxDist, mask)
}

type fakeAnimator struct {
	floats   map[controller.Param]float32
	bools    map[controller.Param]bool
	triggers []controller.Trigger
	requests []event.ActionKind
	cancels  int
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{
		floats: make(map[controller.Param]float32),
		bools:  make(map[controller.Param]bool),
	}
}

func (a *fakeAnimator) SetFloat(p controller.Param, v float32) { a.floats[p] = v }
func (a *fakeAnimator) SetBool(p controller.Param, v bool)     { a.bools[p] = v }
func (a *fakeAnimator) Trigger(t controller.Trigger)           { a.triggers = append(a.triggers, t) }
func (a *fakeAnimator) RequestAction(k event.ActionKind)       { a.requests = append(a.requests, k) }
func (a *fakeAnimator) CancelAction()                          { a.cancels++ }

type recordHandler struct {
	controller.NopHandler
	jumps    []*event.JumpEvent
	landings []*event.LandingEvent
	actions  []*event.ActionEvent

	cancelLandings bool
	cancelActions  bool
}

func (h *recordHandler) HandleJump(_ *event.Context, ev *event.JumpEvent) {
	h.jumps = append(h.jumps, ev)
}

func (h *recordHandler) HandleLanding(ctx *event.Context, ev *event.LandingEvent, _ *orderedmap.OrderedMap[string, any]) {
	h.landings = append(h.landings, ev)
	if h.cancelLandings {
		ctx.Cancel()
	}
}

func (h *recordHandler) HandleAction(ctx *event.Context, ev *event.ActionEvent) {
	h.actions = append(h.actions, ev)
	if h.cancelActions {
		ctx.Cancel()
	}
}

type testRig struct {
	c       *controller.Controller
	mover   *fakeMover
	sweeper *fakeSweeper
	anim    *fakeAnimator
	handler *recordHandler
}

func newTestRig() *testRig {
	conf := settings.Default()
	log := logrus.New()
	log.Level = logrus.PanicLevel

	mv := &fakeMover{caps: controller.Capsule{
		Radius:       conf.Capsule.Radius,
		Height:       conf.Capsule.Height,
		CenterOffset: conf.Capsule.CenterOffset,
		SlopeLimit:   conf.Capsule.SlopeLimit,
		StepOffset:   conf.Capsule.StepOffset,
	}}
	sw := &fakeSweeper{}
	an := newFakeAnimator()
	h := &recordHandler{}

	c := controller.New(log, conf, mv, sw, an)
	component.Register(c, nil, world.MaskAll)
	c.SetHandler(h)

	return &testRig{c: c, mover: mv, sweeper: sw, anim: an, handler: h}
}

// groundAt makes the sweeper behave like flat walkable ground with the given
// top height for every downward cast.
func (r *testRig) groundAt(top float32) {
	r.sweeper.fn = func(origin mgl32.Vec3, rad float32, dir mgl32.Vec3, maxDist float32, _ world.Mask) (world.Hit, bool) {
		if dir.Y() >= 0 {
			return world.Hit{}, false
		}
		dist := origin.Y() - (top + rad)
		if dist < 0 {
			dist = 0
		}
		if dist > maxDist {
			return world.Hit{}, false
		}
		return world.Hit{
			Point:    mgl32.Vec3{origin.X(), top, origin.Z()},
			Normal:   mgl32.Vec3{0, 1, 0},
			Distance: dist,
		}, true
	}
}

// noGround makes every query miss.
func (r *testRig) noGround() {
	r.sweeper.fn = nil
}

func approxEq(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= 1e-4
}
