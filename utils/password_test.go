package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.NoError(t, CheckPassword(hash, "correct horse battery"))
	assert.Error(t, CheckPassword(hash, "wrong password"))
}

func TestMakeInitials(t *testing.T) {
	assert.Equal(t, "AP", MakeInitials("Ana Petrović"))
	assert.Equal(t, "A", MakeInitials("Ana"))
	assert.Equal(t, "", MakeInitials(""))
	assert.Equal(t, "ŽM", MakeInitials("Žarko Marković"))
}
