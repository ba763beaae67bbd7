package system

import coresys "github.com/bsgelman/Marble-Madness-Game/internal/core/system"

// RegisterAll wires the per-tick systems into r. Within a phase the
// registration order below is the execution order.
func RegisterAll(r *coresys.Runner, d *Deps) {
	r.Register(NewInputSystem(d))
	r.Register(NewStatusSystem(d))
	r.Register(NewPlayerSystem(d))
	r.Register(NewActorSystem(d))
	r.Register(NewOutcomeSystem(d))
	r.Register(NewOutputSystem(d.Bus))
	r.Register(NewCleanupSystem(d))
	r.Register(NewBonusSystem(d))
}
