// Package controller implements the panel's event dispatcher and the Bubble
// Tea host that executes its effects.
package controller
