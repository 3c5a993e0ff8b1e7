// Package segment implements range selection over the hour × 5-minute-slot
// grid and averaging of the metrics inside a selection.
package segment

// SlotsPerHour is the number of 5-minute cells in one hour row.
const SlotsPerHour = 12

// Selection marks an inclusive range of grid cells. Start records the first
// click and End the second; the two may be in either chronological order,
// so click orientation is carried separately from the time range.
type Selection struct {
	StartHour string `json:"start_hour"`
	StartSlot int    `json:"start_slot"`
	EndHour   string `json:"end_hour"`
	EndSlot   int    `json:"end_slot"`
}

// Selector implements the two-click protocol: the first call anchors an
// open selection, the second closes it, and a third discards the previous
// selection and anchors a new one.
type Selector struct {
	current *Selection
	open    bool
}

// SelectCell registers one click on the grid and returns the selection it
// affected. The returned selection is closed only when Open() is false.
func (s *Selector) SelectCell(hour string, slot int) *Selection {
	if s.open {
		s.current.EndHour = hour
		s.current.EndSlot = slot
		s.open = false
		return s.current
	}
	s.current = &Selection{StartHour: hour, StartSlot: slot}
	s.open = true
	return s.current
}

// Open reports whether a selection is anchored but not yet closed.
func (s *Selector) Open() bool {
	return s.open
}

// Current returns the active selection, or nil before the first click.
func (s *Selector) Current() *Selection {
	return s.current
}

// Clear discards any selection.
func (s *Selector) Clear() {
	s.current = nil
	s.open = false
}

// InSelection reports whether the (hour, slot) cell lies inside the closed
// selection. hours is the ascending list of hour keys backing the grid.
// Rows strictly between the two clicked rows are included in full; the
// boundary rows include only the slots on the correct side of the click
// that landed on them, which is why the clicks are first normalized into
// chronological order here rather than assumed sorted.
func InSelection(hour string, slot int, sel *Selection, hours []string) bool {
	if sel == nil || sel.EndHour == "" {
		return false // no selection, or still open
	}
	si := indexOf(hours, sel.StartHour)
	ei := indexOf(hours, sel.EndHour)
	hi := indexOf(hours, hour)
	if si < 0 || ei < 0 || hi < 0 {
		return false
	}

	loIdx, hiIdx := si, ei
	loSlot, hiSlot := sel.StartSlot, sel.EndSlot
	if si > ei || (si == ei && sel.StartSlot > sel.EndSlot) {
		loIdx, hiIdx = ei, si
		loSlot, hiSlot = sel.EndSlot, sel.StartSlot
	}

	if hi < loIdx || hi > hiIdx {
		return false
	}
	if loIdx == hiIdx {
		return slot >= loSlot && slot <= hiSlot
	}
	switch hi {
	case loIdx:
		return slot >= loSlot
	case hiIdx:
		return slot <= hiSlot
	default:
		return true
	}
}

func indexOf(hours []string, hour string) int {
	for i, h := range hours {
		if h == hour {
			return i
		}
	}
	return -1
}
