// Package notification implements the ordered queue of ephemeral toast
// messages shown by the client. Each notification may schedule its own
// one-shot removal; explicit removal and Clear are always safe against
// timers that fire late, which simply become no-ops.
package notification
