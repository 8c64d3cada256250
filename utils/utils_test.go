package utils

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeriveID(t *testing.T) {
	a := DeriveID("group", "pool", "asset")
	b := DeriveID("group", "pool", "asset")
	assert.Equal(t, a, b)

	// Argument order does not matter.
	c := DeriveID("asset", "group", "pool")
	assert.Equal(t, a, c)

	d := DeriveID("group", "pool", "other")
	assert.NotEqual(t, a, d)

	assert.NotEqual(t, uuid.Nil, a)
	assert.Equal(t, byte(0x30), a[6]&0xf0)
}

func TestDeriveIDEmpty(t *testing.T) {
	a := DeriveID()
	b := DeriveID()
	assert.Equal(t, a, b)
	assert.NotEqual(t, uuid.Nil, a)
}
