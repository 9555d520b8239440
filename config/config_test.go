package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	c := New()

	assert.NotNil(t, c.Logger)
	assert.False(t, c.Verbose)
	assert.Equal(t, ModelDIMACS, c.ModelFormat)
}
