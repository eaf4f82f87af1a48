// Package export writes frames to files: animated GIF recordings of whole
// runs and SVG snapshots of a single frame.
package export
