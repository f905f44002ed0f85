// Package ember provides fluent builders that assemble widget trees for
// a host game engine's UI layer: buttons, labels, panels, sliders,
// dialogs, toasts, scroll views, and text inputs.
//
// The library owns widget state and behavior only. Layout, glyph
// rendering, and frame pacing belong to the host; an adapter such as
// package ebitenhost feeds input events into a Dispatcher and reads the
// tree back each frame.
//
// Text editing is backed by the engine in package textinput: every text
// field bundles its own buffer, selection, undo history, and input
// filter, created together when the widget is built and discarded with
// it.
package ember
