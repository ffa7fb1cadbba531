// Package testutil provides helpers for seeding registries in tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"finishline/internal/race"
)

// Registrar is the subset of registry behavior the builder needs. Both
// race.Registry and querycache.Store satisfy it.
type Registrar interface {
	Register(bib, rawName, finishText string) (*race.Participant, error)
}

type participantData struct {
	bib        string
	name       string
	finishTime string
}

// Builder accumulates participants and registers them in insertion order.
type Builder struct {
	t            *testing.T
	registrar    Registrar
	participants []participantData
}

// NewBuilder creates a builder registering into the given registrar.
func NewBuilder(t *testing.T, registrar Registrar) *Builder {
	t.Helper()
	return &Builder{t: t, registrar: registrar}
}

// WithParticipant adds a participant to be registered.
func (b *Builder) WithParticipant(bib, name, finishTime string) *Builder {
	b.participants = append(b.participants, participantData{bib: bib, name: name, finishTime: finishTime})
	return b
}

// Build registers all accumulated participants, failing the test on any
// unexpected duplicate.
func (b *Builder) Build() {
	b.t.Helper()
	for _, p := range b.participants {
		_, err := b.registrar.Register(p.bib, p.name, p.finishTime)
		require.NoError(b.t, err, "seeding participant %s", p.bib)
	}
}
