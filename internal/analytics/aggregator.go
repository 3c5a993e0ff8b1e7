package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/neuroflow/neuroflow-cli/internal/models"
)

// Aggregate bins raw samples into fixed-width interval buckets. Samples may
// arrive unsorted and span multiple days. Sentinel (zero-value) samples are
// dropped inside each bucket; a bucket whose samples were all sentinels is
// still emitted with zeros so it keeps its time slot. Buckets are returned
// sorted ascending by timestamp.
//
// intervalMinutes must be positive; that is the only contract violation.
func Aggregate(samples []models.Sample, intervalMinutes int) ([]models.Bucket, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %d", intervalMinutes)
	}

	groups := make(map[time.Time][]float64)
	for _, s := range samples {
		key := floorToInterval(s.Timestamp, intervalMinutes)
		groups[key] = append(groups[key], s.Value)
	}

	buckets := make([]models.Bucket, 0, len(groups))
	for ts, values := range groups {
		b := models.Bucket{Timestamp: ts}
		sum, n := 0.0, 0
		for _, v := range values {
			if v == 0 {
				continue // no-reading sentinel
			}
			if n == 0 || v < b.Min {
				b.Min = v
			}
			if n == 0 || v > b.Max {
				b.Max = v
			}
			sum += v
			n++
		}
		if n > 0 {
			b.Average = sum / float64(n)
		}
		buckets = append(buckets, b)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Timestamp.Before(buckets[j].Timestamp)
	})
	return buckets, nil
}

// floorToInterval zeroes seconds and sub-second precision and rounds the
// minute-of-hour down to the nearest multiple of intervalMinutes. Intervals
// that do not evenly divide 60 still floor by integer division of the
// minute; this is the canonical behavior, not calendar alignment.
func floorToInterval(t time.Time, intervalMinutes int) time.Time {
	m := 0
	if intervalMinutes < 60 {
		m = (t.Minute() / intervalMinutes) * intervalMinutes
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), m, 0, 0, t.Location())
}

// BucketAverages extracts the average sequence from a bucket series,
// preserving order and empty slots, for use as a correlation input.
func BucketAverages(buckets []models.Bucket) []float64 {
	out := make([]float64, len(buckets))
	for i, b := range buckets {
		out[i] = b.Average
	}
	return out
}
