package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	p := Ptr("professor")
	assert.Equal(t, "professor", *p)

	n := Ptr(42)
	assert.Equal(t, 42, *n)
}
