package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/scorebook/internal/ui/style"
)

func TestStatus(t *testing.T) {
	icon, color := style.Status(true)
	assert.Equal(t, style.Check, icon)
	assert.Equal(t, style.Green, color)

	icon, color = style.Status(false)
	assert.Equal(t, style.Cross, icon)
	assert.Equal(t, style.Red, color)
}

func TestPresence(t *testing.T) {
	icon, color := style.Presence(true)
	assert.Equal(t, style.Dot, icon)
	assert.Equal(t, style.Iris, color)

	icon, color = style.Presence(false)
	assert.Equal(t, style.Circle, icon)
	assert.Equal(t, style.Slate, color)
}
