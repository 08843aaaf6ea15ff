package controller

import "github.com/vantage-gg/stride/event"

// Param identifies a continuous or boolean animation parameter channel. The
// identifiers are resolved by the animation collaborator once at startup; no
// string keys cross this boundary.
type Param byte

const (
	ParamMove Param = iota
	ParamTurn
	ParamAirborne
)

// Trigger identifies a one-shot animation trigger channel.
type Trigger byte

const (
	TriggerJump Trigger = iota
	TriggerLandNormal
	TriggerLandHard
	TriggerLandDamage
)

// Animator is the animation/pose collaborator contract. It owns pose
// evaluation and per-frame motion deltas; the host is expected to call
// Controller.ComposeFrame from its pose callback and
// Controller.NotifyActionStart/NotifyActionEnd when an action state is entered
// or exited.
type Animator interface {
	// SetFloat updates a continuous parameter channel. The consumer side is
	// expected to time-smooth the value.
	SetFloat(p Param, v float32)
	// SetBool updates a boolean parameter channel.
	SetBool(p Param, v bool)
	// Trigger fires a one-shot trigger channel.
	Trigger(t Trigger)
	// RequestAction replaces any pending context action with the given kind.
	// Pending actions are mutually exclusive by construction: there is exactly
	// one or none.
	RequestAction(kind event.ActionKind)
	// CancelAction clears the pending context action, if any.
	CancelAction()
}
