// Package stride implements a real-time locomotion controller for 3D
// platforming characters: per-tick intent resolution, ground and ledge
// sensing, simulated vertical motion, context-action probing, landing
// classification and root-motion composition.
package stride

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vantage-gg/stride/controller"
	"github.com/vantage-gg/stride/controller/component"
	"github.com/vantage-gg/stride/settings"
	"github.com/vantage-gg/stride/world"
)

// Manager owns a set of named controller instances.
type Manager struct {
	mu          sync.Mutex
	controllers map[string]*controller.Controller
}

// NewManager returns an empty controller manager.
func NewManager() *Manager {
	return &Manager{controllers: make(map[string]*controller.Controller)}
}

// NewController assembles a controller with the default component set and
// registers it under the given name, replacing and closing any previous
// controller with that name.
func (m *Manager) NewController(name string, log *logrus.Logger, conf settings.Settings, mover controller.KinematicMover, sweeper controller.Sweeper, anim controller.Animator, source controller.InputSource, mask world.Mask) *controller.Controller {
	c := controller.New(log, conf, mover, sweeper, anim)
	component.Register(c, source, mask)

	m.mu.Lock()
	if old, ok := m.controllers[name]; ok {
		old.Close()
	}
	m.controllers[name] = c
	m.mu.Unlock()
	return c
}

// Controller returns the controller registered under name, if any.
func (m *Manager) Controller(name string) (*controller.Controller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.controllers[name]
	return c, ok
}

// Remove closes and drops the controller registered under name.
func (m *Manager) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.controllers[name]; ok {
		c.Close()
		delete(m.controllers, name)
	}
}

// TickAll advances every registered controller by dt.
func (m *Manager) TickAll(dt float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.controllers {
		c.Tick(dt)
	}
}

// Len returns the number of registered controllers.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.controllers)
}
