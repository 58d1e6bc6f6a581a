// Package host holds the collaborators the notification panel depends on
// but does not own: the clock, the frame scheduler, the command registry,
// and the install-path handle.
package host
