package domain_test

import (
	"testing"

	"github.com/mwatts/anyctl/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRef_Accessors(t *testing.T) {
	r := domain.NewRef("type-1", "space-1")

	assert.Equal(t, "type-1", r.ID())

	spaceID, ok := r.SpaceID()
	assert.True(t, ok)
	assert.Equal(t, "space-1", spaceID)
}

func TestRef_NoScope(t *testing.T) {
	r := domain.NewRef("space-1", "")

	assert.Equal(t, "space-1", r.ID())

	_, ok := r.SpaceID()
	assert.False(t, ok)
}

func TestRef_EqualByIdentifierOnly(t *testing.T) {
	a := domain.NewRef("id-1", "space-1")
	b := domain.NewRef("id-1", "space-2")
	c := domain.NewRef("id-2", "space-1")

	// Scope metadata does not participate in equality.
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestRef_IsZero(t *testing.T) {
	assert.True(t, domain.Ref{}.IsZero())
	assert.False(t, domain.NewRef("id-1", "").IsZero())
}

func TestRef_CopiesAreIndependent(t *testing.T) {
	original := domain.NewRef("id-1", "space-1")
	copied := original

	// Two downstream consumers of the same carrier observe the same value.
	assert.True(t, original.Equal(copied))
	assert.Equal(t, original.ID(), copied.ID())
}
