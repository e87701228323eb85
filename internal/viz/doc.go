// Package viz draws the decorative model sketches and holds the dashboard
// palette.
//
//   - [Canvas]: Braille-backed dot grid, 2x4 dots per terminal cell
//   - [Camera] and [Mesh]: wireframe projection with painter ordering
//   - [Scene]: one wireframe per catalog model id
//   - Themes and shared lipgloss styles, rebuilt by [SetTheme]
//
// Nothing here is a real 3D engine. Scenes are fixed sketches; the only
// randomness comes from the *rand.Rand passed to [Scene].
package viz
