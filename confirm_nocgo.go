//go:build !cgo

package main

import "goxel/engine"

// Native dialogs need cgo; without them unsaved changes are dropped on quit.
var confirmQuit engine.Confirmer
