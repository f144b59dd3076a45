// Package timegrid builds and queries the fixed set of allowed trading
// timestamps for the strategy time window.
package timegrid

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time within a single day, stored as seconds
// since midnight.
type TimeOfDay int

// New returns the TimeOfDay for the given hour, minute and second.
func New(hour, min, sec int) TimeOfDay {
	return TimeOfDay(hour*3600 + min*60 + sec)
}

// Parse parses "HH:MM" or "HH:MM:SS" into a TimeOfDay.
func Parse(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("invalid time %q", s)
		}
		nums[i] = n
	}

	hh, mm, ss := nums[0], nums[1], nums[2]
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 || ss < 0 || ss > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return New(hh, mm, ss), nil
}

// String formats the time as "HH:MM:SS".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, int(t)/60%60, int(t)%60)
}

// Grid is an immutable, strictly increasing sequence of allowed times,
// built once at startup and shared read-only thereafter.
type Grid struct {
	min   TimeOfDay
	max   TimeOfDay
	slots []TimeOfDay
}

// Build generates the grid from min to max inclusive at stepMinutes
// resolution. min > max is a configuration error.
func Build(min, max TimeOfDay, stepMinutes int) (*Grid, error) {
	if min > max {
		return nil, fmt.Errorf("timegrid: min %s is after max %s", min, max)
	}
	if stepMinutes < 1 {
		return nil, fmt.Errorf("timegrid: step must be at least 1 minute, got %d", stepMinutes)
	}

	step := TimeOfDay(stepMinutes * 60)
	var slots []TimeOfDay
	for t := min; t <= max; t += step {
		slots = append(slots, t)
	}
	return &Grid{min: min, max: max, slots: slots}, nil
}

// MustBuild is Build, panicking on error. For process-startup grids only.
func MustBuild(min, max TimeOfDay, stepMinutes int) *Grid {
	g, err := Build(min, max, stepMinutes)
	if err != nil {
		panic(err)
	}
	return g
}

// Len returns the number of grid members.
func (g *Grid) Len() int {
	return len(g.slots)
}

// At returns the grid member at index i.
func (g *Grid) At(i int) TimeOfDay {
	return g.slots[i]
}

// Labels returns every grid member formatted "HH:MM:SS", in order.
func (g *Grid) Labels() []string {
	labels := make([]string, len(g.slots))
	for i, t := range g.slots {
		labels[i] = t.String()
	}
	return labels
}

// IndexOf returns the index of t in the grid. If t is not a grid member
// (legacy rows and manual edits may be off the minute grid), it returns the
// index of the nearest member, ties broken toward the earlier one.
func (g *Grid) IndexOf(t TimeOfDay) int {
	best := 0
	bestDist := distance(g.slots[0], t)
	for i := 1; i < len(g.slots); i++ {
		if d := distance(g.slots[i], t); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Clamp limits t to the grid's [min, max] bounds.
func (g *Grid) Clamp(t TimeOfDay) TimeOfDay {
	if t < g.min {
		return g.min
	}
	if t > g.max {
		return g.max
	}
	return t
}

func distance(a, b TimeOfDay) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
