package segment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/neuroflow/neuroflow-cli/internal/models"
)

// CellMetrics holds the values one grid cell contributes to a selection
// average. A cell with no entry in the grid simply has no data; it is
// skipped, never treated as zero.
type CellMetrics struct {
	Flow      float64
	HeartRate float64
}

// Averages is the aggregate of every data-bearing cell in a selection.
// From and To are the first and last cell labels actually included.
type Averages struct {
	Flow      float64
	HeartRate float64
	From      string
	To        string
	Cells     int
}

// Average walks every cell of the closed selection, accumulates sums and
// counts per metric over the cells that carry data, and returns their
// means. It returns nil both when the selection covers no cells and when
// every covered cell is empty; callers must treat nil as "insufficient
// data", never as a zero-valued average.
func Average(sel *Selection, hours []string, cells map[string]map[int]CellMetrics) *Averages {
	var flowSum, hrSum float64
	var hrCount, n int
	first, last := "", ""

	for _, h := range hours {
		for slot := 0; slot < SlotsPerHour; slot++ {
			if !InSelection(h, slot, sel, hours) {
				continue
			}
			m, ok := cells[h][slot]
			if !ok {
				continue
			}
			flowSum += m.Flow
			if m.HeartRate > 0 {
				hrSum += m.HeartRate
				hrCount++
			}
			n++
			label := cellLabel(h, slot)
			if first == "" {
				first = label
			}
			last = label
		}
	}

	if n == 0 {
		return nil
	}

	avg := &Averages{
		Flow:  flowSum / float64(n),
		From:  first,
		To:    last,
		Cells: n,
	}
	if hrCount > 0 {
		avg.HeartRate = hrSum / float64(hrCount)
	}
	return avg
}

// SelectedFlowBuckets filters a 5-minute flow bucket series down to the
// buckets whose grid cell falls inside the closed selection, for downstream
// per-cell statistics. Empty buckets hold no cell and are skipped.
func SelectedFlowBuckets(sel *Selection, hours []string, flow []models.Bucket) []models.Bucket {
	var out []models.Bucket
	for _, b := range flow {
		if b.Empty() {
			continue
		}
		hour := b.Timestamp.Format("15") + ":00"
		slot := b.Timestamp.Minute() / 5
		if InSelection(hour, slot, sel, hours) {
			out = append(out, b)
		}
	}
	return out
}

// Grid arranges two aligned 5-minute bucket series into the hour × slot
// grid. Only non-empty flow buckets occupy cells; the heart-rate value is
// attached when its bucket for the same instant is non-empty. The returned
// hour keys are sorted ascending.
func Grid(flow, heart []models.Bucket) (hours []string, cells map[string]map[int]CellMetrics) {
	heartAt := make(map[string]float64, len(heart))
	for _, b := range heart {
		if !b.Empty() {
			heartAt[b.Timestamp.Format("15:04")] = b.Average
		}
	}

	cells = make(map[string]map[int]CellMetrics)
	for _, b := range flow {
		if b.Empty() {
			continue
		}
		hour := b.Timestamp.Format("15") + ":00"
		slot := b.Timestamp.Minute() / 5
		if cells[hour] == nil {
			cells[hour] = make(map[int]CellMetrics)
		}
		cells[hour][slot] = CellMetrics{
			Flow:      b.Average,
			HeartRate: heartAt[b.Timestamp.Format("15:04")],
		}
	}

	hours = make([]string, 0, len(cells))
	for h := range cells {
		hours = append(hours, h)
	}
	sort.Strings(hours)
	return hours, cells
}

// cellLabel renders a cell as wall-clock time, e.g. hour "09:00" slot 3 is
// "09:15".
func cellLabel(hour string, slot int) string {
	h := hour
	if i := strings.IndexByte(hour, ':'); i >= 0 {
		h = hour[:i]
	}
	return fmt.Sprintf("%s:%02d", h, slot*5)
}
