package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveAccents(t *testing.T) {
	assert.Equal(t, "Atacama 3 dias", RemoveAccents("Atacama 3 días"))
	assert.Equal(t, "Jose Nunez", RemoveAccents("José Núñez"))
	assert.Equal(t, "plain ascii", RemoveAccents("plain ascii"))
	assert.Equal(t, "", RemoveAccents(""))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]int{1, 2, 3}, 2))
	assert.False(t, Contains([]int{1, 2, 3}, 4))
	assert.False(t, Contains(nil, 1))
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	assert.Nil(t, err)
	assert.True(t, AuthenticateHashedPassword(hashed, "s3cret"))
	assert.False(t, AuthenticateHashedPassword(hashed, "wrong"))
}
