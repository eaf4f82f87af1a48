// Package viz holds the look of the visualizer shared by every renderer.
//
//   - [Theme]: bar colors per highlight role, as RGB and terminal styles
//   - [Canvas]: braille canvas drawing two bars per cell, four sub-pixels tall
//   - Styles for headers, status indicators and key hints
//
// # Roles
//
// A bar is drawn in exactly one role color per frame. When two bars share a
// braille cell the cell takes the stronger role:
//
//	compare > min > flash > confirmed > normal
package viz
