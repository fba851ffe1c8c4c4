package trace

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/optres/pkg/optres"
)

// Step is one recorded state of a computation.
type Step struct {
	ID    uuid.UUID
	At    time.Time
	Label string
	// HasValue is the container's variant at recording time.
	HasValue bool
	// Repr is the container's canonical rendering at recording time.
	Repr string
}

// Journal is an immutable sequence of recorded steps.
type Journal struct {
	steps []Step
}

// Begin starts a journal with the initial state of a computation.
func Begin(label string, c optres.Container) Journal {
	return Journal{}.Note(label, c)
}

// Note returns a new Journal with the container's current state
// appended; the receiver is left untouched.
func (j Journal) Note(label string, c optres.Container) Journal {
	steps := make([]Step, len(j.steps), len(j.steps)+1)
	copy(steps, j.steps)
	steps = append(steps, Step{
		ID:       uuid.New(),
		At:       time.Now().UTC(),
		Label:    label,
		HasValue: c.HasValue(),
		Repr:     c.String(),
	})
	return Journal{steps: steps}
}

// Len returns the number of recorded steps.
func (j Journal) Len() int {
	return len(j.steps)
}

// Steps returns a copy of the recorded steps in recording order.
func (j Journal) Steps() []Step {
	out := make([]Step, len(j.steps))
	copy(out, j.steps)
	return out
}

// Last returns the most recent step, reporting false on an empty
// journal.
func (j Journal) Last() (Step, bool) {
	if len(j.steps) == 0 {
		return Step{}, false
	}
	return j.steps[len(j.steps)-1], true
}
