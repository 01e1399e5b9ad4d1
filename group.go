package reveal

import (
	"slices"
	"time"
)

// A Group is a set of revealers that start at the same instant but advance
// at their own rates. Seeking a group seeks every member to the same elapsed
// time, and each member turns that into its own fraction of its own
// duration. No member waits for another, so members with shorter durations
// finish first.
//
// Whether the members' traces show the same angular progress at any instant
// is a matter of choosing bounds and durations, not something the group
// enforces.
type Group struct {
	members []*Revealer
}

// NewGroup returns a group of the given revealers.
func NewGroup(members ...*Revealer) *Group {
	return &Group{members: slices.Clone(members)}
}

// Add adds revealers to the group. Adding a revealer that is already a
// member has no effect.
func (g *Group) Add(rs ...*Revealer) {
	for _, r := range rs {
		if !slices.Contains(g.members, r) {
			g.members = append(g.members, r)
		}
	}
}

// Members returns the group's revealers in the order they were added.
func (g *Group) Members() []*Revealer {
	return slices.Clone(g.members)
}

// Len returns the number of members.
func (g *Group) Len() int { return len(g.members) }

// Seek advances every member to elapsed time since the group's start.
func (g *Group) Seek(elapsed time.Duration) {
	for _, r := range g.members {
		r.Seek(elapsed)
	}
}

// Reset resets every member to its starting state.
func (g *Group) Reset() {
	for _, r := range g.members {
		r.Reset()
	}
}

// Duration returns the time it takes for the slowest member to finish. It is
// zero for an empty group.
func (g *Group) Duration() time.Duration {
	var d time.Duration
	for _, r := range g.members {
		d = max(d, r.Duration())
	}
	return d
}

// Done reports whether all members have finished.
func (g *Group) Done() bool {
	for _, r := range g.members {
		if !r.Done() {
			return false
		}
	}
	return true
}
