package logger

import (
	"testing"

	"github.com/fatih/color"
)

// SetNoColor disables colours for the test and restores the previous setting
func SetNoColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		color.NoColor = prev
	})
}
