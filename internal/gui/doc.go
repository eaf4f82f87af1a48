// Package gui draws a session into a raylib window: one filled rectangle per
// bar, colored by role, with keyboard input read from the same window.
package gui
