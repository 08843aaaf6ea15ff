package controller

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/vantage-gg/stride/event"
	"github.com/vantage-gg/stride/game"
	"github.com/vantage-gg/stride/settings"
	"go.uber.org/atomic"
)

// Controller runs the per-tick locomotion pipeline for one character. All of
// its mutable state belongs to a single instance; ticks and pose callbacks are
// expected from one goroutine, in the fixed order documented on Tick and
// ComposeFrame.
type Controller struct {
	log  *logrus.Logger
	conf settings.Settings

	mover   KinematicMover
	sweeper Sweeper
	anim    Animator

	hMutex sync.RWMutex
	h      Handler

	intent   IntentComponent
	ground   GroundSensor
	vertical VerticalMotion
	actions  ActionDetector
	landing  LandingClassifier
	composer MotionComposer

	state MotionState

	phase   ActionPhase
	pending event.ActionKind

	tick  uint64
	clock float64

	enabled atomic.Bool
	closed  atomic.Bool

	stats Stats
}

// Stats carries plain counters a host may expose on a dashboard. They are
// updated from the tick goroutine only.
type Stats struct {
	Ticks         uint64
	Jumps         uint64
	Landings      uint64
	ActionsFired  uint64
	ForcedFalls   uint64
	ComposedMoves uint64
}

// New creates a controller around the given collaborators. Components must be
// attached afterwards, normally through component.Register.
func New(log *logrus.Logger, conf settings.Settings, mover KinematicMover, sweeper Sweeper, anim Animator) *Controller {
	c := &Controller{
		log:     log,
		conf:    conf,
		mover:   mover,
		sweeper: sweeper,
		anim:    anim,
		h:       NopHandler{},
	}
	c.state.GroundNormal = mgl32.Vec3{0, 1, 0}
	c.enabled.Store(true)
	return c
}

// Log returns the controller's logger.
func (c *Controller) Log() *logrus.Logger {
	return c.log
}

// Conf returns the controller's settings.
func (c *Controller) Conf() settings.Settings {
	return c.conf
}

// Mover returns the kinematic mover collaborator.
func (c *Controller) Mover() KinematicMover {
	return c.mover
}

// Sweeper returns the spatial query collaborator.
func (c *Controller) Sweeper() Sweeper {
	return c.sweeper
}

// Animator returns the animation collaborator.
func (c *Controller) Animator() Animator {
	return c.anim
}

// Handler returns the current event handler.
func (c *Controller) Handler() Handler {
	c.hMutex.RLock()
	defer c.hMutex.RUnlock()
	return c.h
}

// SetHandler replaces the event handler. A nil handler resets to the no-op
// handler.
func (c *Controller) SetHandler(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	c.hMutex.Lock()
	c.h = h
	c.hMutex.Unlock()
}

// SetIntent attaches the intent resolver component.
func (c *Controller) SetIntent(i IntentComponent) { c.intent = i }

// Intent returns the intent resolver component.
func (c *Controller) Intent() IntentComponent { return c.intent }

// SetGroundSensor attaches the ground sensor component.
func (c *Controller) SetGroundSensor(g GroundSensor) { c.ground = g }

// GroundSensor returns the ground sensor component.
func (c *Controller) GroundSensor() GroundSensor { return c.ground }

// SetVerticalMotion attaches the vertical motion component.
func (c *Controller) SetVerticalMotion(v VerticalMotion) { c.vertical = v }

// VerticalMotion returns the vertical motion component.
func (c *Controller) VerticalMotion() VerticalMotion { return c.vertical }

// SetActionDetector attaches the action probe detector component.
func (c *Controller) SetActionDetector(d ActionDetector) { c.actions = d }

// ActionDetector returns the action probe detector component.
func (c *Controller) ActionDetector() ActionDetector { return c.actions }

// SetLandingClassifier attaches the landing classifier component.
func (c *Controller) SetLandingClassifier(l LandingClassifier) { c.landing = l }

// LandingClassifier returns the landing classifier component.
func (c *Controller) LandingClassifier() LandingClassifier { return c.landing }

// SetComposer attaches the motion composer component.
func (c *Controller) SetComposer(m MotionComposer) { c.composer = m }

// Composer returns the motion composer component.
func (c *Controller) Composer() MotionComposer { return c.composer }

// State returns the snapshot produced by the most recent tick.
func (c *Controller) State() MotionState {
	return c.state
}

// Stats returns the controller's counters.
func (c *Controller) Stats() Stats {
	return c.stats
}

// StatsRef returns a pointer for components to bump counters through.
func (c *Controller) StatsRef() *Stats {
	return &c.stats
}

// TickCount returns the number of ticks run so far.
func (c *Controller) TickCount() uint64 {
	return c.tick
}

// Now returns the controller clock in seconds.
func (c *Controller) Now() float64 {
	return c.clock
}

// SetMoveAndTurn sets the normalized movement intent for the current tick.
// Idempotent within a tick; it has no side effects outside the intent state.
func (c *Controller) SetMoveAndTurn(moveIntensity, turnInput float32, running bool) {
	c.intent.SetMoveAndTurn(moveIntensity, turnInput, running)
}

// RequestJump raises the edge-triggered jump flag. The flag is consumed and
// cleared at the end of the tick that observes it, whether or not a jump
// actually occurred.
func (c *Controller) RequestJump() {
	c.intent.RequestJump()
}

// IsFalling returns true iff the character is not grounded.
func (c *Controller) IsFalling() bool {
	return !c.state.Grounded
}

// InAction returns true iff the controller is currently in an action phase.
func (c *Controller) InAction() bool {
	return c.phase.InAction()
}

// Phase returns the current action phase.
func (c *Controller) Phase() ActionPhase {
	return c.phase
}

// PendingAction returns the action kind most recently fired. Only meaningful
// while Phase is not locomotion.
func (c *Controller) PendingAction() event.ActionKind {
	return c.pending
}

// BeginAction moves the phase to pending and hands the discriminated action
// request to the animator. Called by the action detector when a probe
// combination classifies.
func (c *Controller) BeginAction(kind event.ActionKind) {
	c.phase = PhaseActionPending
	c.pending = kind
	c.anim.RequestAction(kind)
	c.stats.ActionsFired++
}

// NotifyActionStart is called by the animation collaborator when it enters the
// action-tagged state for the pending request.
func (c *Controller) NotifyActionStart() {
	c.phase = PhaseActionActive
}

// NotifyActionEnd is called by the animation collaborator when the
// action-tagged state exits. The vertical channel resumes from zero velocity.
func (c *Controller) NotifyActionEnd() {
	c.phase = PhaseLocomotion
	c.vertical.ResetFallTracking()
}

// Enabled returns whether the controller is currently simulating.
func (c *Controller) Enabled() bool {
	return c.enabled.Load() && !c.closed.Load()
}

// Disable pauses the controller. The simulated vertical velocity and any
// action phase are reset so resuming does not replay stale state.
func (c *Controller) Disable() {
	if !c.enabled.CompareAndSwap(true, false) {
		return
	}
	c.vertical.Reset()
	c.phase = PhaseLocomotion
	c.anim.CancelAction()
	c.state.VerticalVelocity = 0
	c.state.LastAirborneDownSpeed = 0
}

// Enable resumes a disabled controller.
func (c *Controller) Enable() {
	c.enabled.Store(true)
}

// Close permanently disables the controller.
func (c *Controller) Close() {
	if c.closed.CompareAndSwap(false, true) {
		c.Disable()
	}
}

// Tick runs one full pipeline pass: intent resolution, the action-tag check,
// ground sensing, vertical simulation, action probing and landing
// classification, in that order. Each stage reads the state the previous
// stage wrote.
func (c *Controller) Tick(dt float32) {
	if !c.Enabled() {
		return
	}
	if dt < game.MinDeltaTime {
		dt = game.MinDeltaTime
	}

	c.tick++
	c.clock += float64(dt)
	c.stats.Ticks++

	st := &c.state
	st.Tick = c.tick
	st.Now = c.clock
	st.Dt = dt
	st.JustLanded = false

	c.intent.Update(st)
	st.Phase = c.phase
	c.ground.Sense(st)
	c.vertical.Simulate(st)
	c.actions.Detect(st)
	c.landing.Classify(st)

	// The jump edge clears whether or not anything consumed it.
	c.intent.EndTick()
	st.JumpRequested = false

	c.anim.SetFloat(ParamMove, st.MoveValue)
	c.anim.SetFloat(ParamTurn, st.TurnValue)
	c.anim.SetBool(ParamAirborne, !st.Grounded)
}

// ComposeFrame is called from the animation collaborator's pose callback,
// after Tick has produced this frame's snapshot. translation and yawDelta are
// the pose-authored motion deltas for the frame.
func (c *Controller) ComposeFrame(translation mgl32.Vec3, yawDelta float32, dt float32) {
	if !c.Enabled() {
		return
	}
	if dt < game.MinDeltaTime {
		dt = game.MinDeltaTime
	}
	c.composer.Compose(&c.state, translation, yawDelta, dt)
	c.stats.ComposedMoves++
}
