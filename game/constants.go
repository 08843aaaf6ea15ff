package game

const (
	DefaultGravity           = float32(9.81)
	DefaultFallingMultiplier = float32(1.8)
	DefaultJumpSpeed         = float32(5.5)
	DefaultGroundStick       = float32(-0.1)

	DefaultCapsuleRadius = float32(0.4)
	DefaultCapsuleHeight = float32(1.8)
	DefaultSlopeLimit    = float32(45)
	DefaultStepOffset    = float32(0.4)

	DefaultGroundClearance   = float32(0.05)
	DefaultStepDownAllowance = float32(0.25)

	DefaultHardLandingSpeed   = float32(9)
	DefaultDamageLandingSpeed = float32(15)

	// WallDotLimit is the maximum dot(normal, up) for a surface to count as
	// near-vertical for the action probes.
	WallDotLimit = float32(0.7)

	WalkTurnClamp = float32(0.5)
	RunTurnClamp  = float32(1)
	WalkMoveValue = float32(0.5)
	RunMoveValue  = float32(1)

	// MinDeltaTime is the floor applied to every tick delta before it is used
	// in a division or integration step.
	MinDeltaTime = float32(1e-4)

	SlopeEpsilon   = float32(0.1)
	MinTurnEpsilon = float32(0.05)
)
