// Package terminal runs the game on a tcell screen: it rasterizes render
// batches into character cells and turns key events into held-button input.
//
// Terminals report key presses and repeats but no releases, so a key counts
// as held until its repeat stream stops for a hold timeout.
package terminal
