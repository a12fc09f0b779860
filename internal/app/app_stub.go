//go:build !ebiten

package app

import "data-desert/pkg/sims/life"

// Run always fails in the headless build.
func Run(*Loop, life.Theme, string) error {
	return ErrNoGUI
}
