package event

// LandingSeverity classifies a ground impact by its vertical speed.
type LandingSeverity byte

const (
	LandingNormal LandingSeverity = iota
	LandingHard
	LandingDamage
)

// String ...
func (s LandingSeverity) String() string {
	switch s {
	case LandingHard:
		return "hard"
	case LandingDamage:
		return "damage"
	default:
		return "normal"
	}
}

// ActionKind discriminates the context actions the probe detector may fire.
// At most one action is ever pending at a time.
type ActionKind byte

const (
	ActionVault ActionKind = iota
	ActionClimbLow
	ActionClimbHigh
)

// String ...
func (k ActionKind) String() string {
	switch k {
	case ActionClimbLow:
		return "climb_low"
	case ActionClimbHigh:
		return "climb_high"
	default:
		return "vault"
	}
}

// JumpEvent is fired when a jump request is consumed while grounded.
type JumpEvent struct {
	Speed float32 `json:"speed"`
	Tick  uint64  `json:"tick"`
}

func (e *JumpEvent) ID() string {
	return "stride:jump"
}

func NewJumpEvent(speed float32, tick uint64) *JumpEvent {
	return &JumpEvent{Speed: speed, Tick: tick}
}

// LandingEvent is fired on an airborne to grounded transition, at most once
// per landing cooldown window.
type LandingEvent struct {
	Severity    LandingSeverity `json:"severity"`
	ImpactSpeed float32         `json:"impact_speed"`
	Tick        uint64          `json:"tick"`
}

func (e *LandingEvent) ID() string {
	return "stride:landing"
}

func NewLandingEvent(severity LandingSeverity, impactSpeed float32, tick uint64) *LandingEvent {
	return &LandingEvent{Severity: severity, ImpactSpeed: impactSpeed, Tick: tick}
}

// ActionEvent is fired when the probe detector classifies a context action.
type ActionEvent struct {
	Kind ActionKind `json:"kind"`
	Tick uint64     `json:"tick"`
}

func (e *ActionEvent) ID() string {
	return "stride:action"
}

func NewActionEvent(kind ActionKind, tick uint64) *ActionEvent {
	return &ActionEvent{Kind: kind, Tick: tick}
}
