package grid

import "github.com/sirapobp/regtable/internal/course"

// Axis is the ordered run of equal-width time slots that every day row is
// aligned to. Start is in minutes since midnight.
type Axis struct {
	Start       int
	SlotMinutes int
	Slots       int
}

// NewAxis builds an axis of n slots of slotMinutes width beginning at start
// minutes since midnight.
func NewAxis(start, slotMinutes, n int) Axis {
	return Axis{Start: start, SlotMinutes: slotMinutes, Slots: n}
}

// SlotStart returns the start of slot i in minutes since midnight.
func (a Axis) SlotStart(i int) int {
	return a.Start + i*a.SlotMinutes
}

// End returns the first minute past the last slot.
func (a Axis) End() int {
	return a.Start + a.Slots*a.SlotMinutes
}

// SlotIndex maps a time to the slot whose boundary is at or before it.
// Times ahead of the axis come back negative and times at or past End come
// back >= Slots, so callers can range-check the result.
func (a Axis) SlotIndex(minutes int) int {
	d := minutes - a.Start
	if d < 0 {
		// Integer division truncates toward zero; offsets before the
		// axis still have to floor.
		return -((-d + a.SlotMinutes - 1) / a.SlotMinutes)
	}
	return d / a.SlotMinutes
}

// Labels returns the display label of every slot boundary in order.
func (a Axis) Labels() []string {
	labels := make([]string, a.Slots)
	for i := range labels {
		labels[i] = course.FormatClock(a.SlotStart(i))
	}
	return labels
}
