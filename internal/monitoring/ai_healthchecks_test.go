package monitoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelHealthStatus(t *testing.T) {
	h := NewModelHealth()
	assert.False(t, h.Status().Ready)

	h.SetLanguageModel(true)
	assert.False(t, h.Status().Ready)

	h.SetClassifier("vader", true)
	s := h.Status()
	assert.True(t, s.Ready)
	assert.Equal(t, "vader", s.ClassifierBackend)

	h.SetLanguageModel(false)
	assert.False(t, h.Status().Ready)
}
