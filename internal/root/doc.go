// Package root is the navigation core. The Controller owns a stack of
// screens (Dashboard at the bottom, playlist Details above it) and a single
// overlay slot for the Player, turns the outputs of those screens into
// stack and overlay transitions, and keeps the small playback state the
// screens share without knowing about each other: the current track, the
// screen waiting for track updates, and the player accepting track
// selections.
//
// The Controller is single-threaded. Every method, and every output emitted
// by its children, must run on the goroutine that owns it. Outputs emitted
// while another output is being handled are queued and handled afterwards,
// in arrival order.
package root
