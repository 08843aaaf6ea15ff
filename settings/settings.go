// Package settings holds all tunables of a locomotion controller. Every value
// has a sane default; hosts usually load a TOML file once at startup and pass
// the result to each controller they create.
package settings

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/vantage-gg/stride/game"
)

// Settings contains all settings that can be configured for a controller.
type Settings struct {
	Capsule struct {
		Radius       float32
		Height       float32
		CenterOffset float32
		SlopeLimit   float32
		StepOffset   float32
	}
	Ground struct {
		// Clearance is added below the capsule bottom for the downward cast.
		Clearance float32
		// StepDown extends the downward cast so small drops keep contact.
		StepDown float32
		// Ledge probe window: the probe starts LedgeHeight above and
		// LedgeAhead in front of the feet and casts down across the
		// height+depth window.
		LedgeAhead  float32
		LedgeHeight float32
		LedgeDepth  float32
		// LedgeRadiusScale scales the capsule radius down for the ledge probe.
		LedgeRadiusScale float32
	}
	Vertical struct {
		Gravity           float32
		FallingMultiplier float32
		JumpSpeed         float32
		// GroundStick is the small negative velocity applied while grounded to
		// keep contact across minor surface irregularities.
		GroundStick float32
	}
	Probes struct {
		FeetHeight  float32
		WaistHeight float32
		HeadHeight  float32
		Radius      float32
		Distance    float32
		// MinForwardIntent is the move value below which no probe runs.
		MinForwardIntent float32
		// Cooldown gates re-entry after a fired action, in seconds.
		Cooldown float32
		// Cadence is the minimum interval between evaluations of one probe.
		Cadence float32
	}
	Landing struct {
		HardSpeed   float32
		DamageSpeed float32
		Cooldown    float32
	}
	Intent struct {
		// MoveDeadzone is the intensity under which move intent counts as zero.
		MoveDeadzone float32
		// TurnSlewRate limits the polled path's turn change, in normalized
		// units per second. The external path applies values directly.
		TurnSlewRate float32
	}
	Composer struct {
		// RotationRate is the locomotion heading rate in degrees per second at
		// full turn input.
		RotationRate float32
	}
}

// Default returns the settings every controller starts from.
func Default() Settings {
	s := Settings{}

	s.Capsule.Radius = game.DefaultCapsuleRadius
	s.Capsule.Height = game.DefaultCapsuleHeight
	s.Capsule.CenterOffset = game.DefaultCapsuleHeight / 2
	s.Capsule.SlopeLimit = game.DefaultSlopeLimit
	s.Capsule.StepOffset = game.DefaultStepOffset

	s.Ground.Clearance = game.DefaultGroundClearance
	s.Ground.StepDown = game.DefaultStepDownAllowance
	s.Ground.LedgeAhead = 0.35
	s.Ground.LedgeHeight = 0.5
	s.Ground.LedgeDepth = 0.6
	s.Ground.LedgeRadiusScale = 0.5

	s.Vertical.Gravity = game.DefaultGravity
	s.Vertical.FallingMultiplier = game.DefaultFallingMultiplier
	s.Vertical.JumpSpeed = game.DefaultJumpSpeed
	s.Vertical.GroundStick = game.DefaultGroundStick

	s.Probes.FeetHeight = 0.25
	s.Probes.WaistHeight = 0.95
	s.Probes.HeadHeight = 1.7
	s.Probes.Radius = 0.22
	s.Probes.Distance = 0.9
	s.Probes.MinForwardIntent = 0.45
	s.Probes.Cooldown = 0.4
	s.Probes.Cadence = 0.1

	s.Landing.HardSpeed = game.DefaultHardLandingSpeed
	s.Landing.DamageSpeed = game.DefaultDamageLandingSpeed
	s.Landing.Cooldown = 0.35

	s.Intent.MoveDeadzone = 0.05
	s.Intent.TurnSlewRate = 2

	s.Composer.RotationRate = 120

	return s
}

// Load reads settings from the TOML file at path, creating the file with
// defaults when it does not exist yet.
func Load(path string) (Settings, error) {
	s := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := toml.Marshal(s)
		if err != nil {
			return s, fmt.Errorf("encode default settings: %v", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return s, fmt.Errorf("create default settings: %v", err)
		}
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %v", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("decode settings: %v", err)
	}
	return s, nil
}

// Save writes the settings to the TOML file at path.
func Save(path string, s Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %v", err)
	}
	return nil
}
