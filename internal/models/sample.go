package models

import "time"

// Sample is a single raw timestamped reading from one signal stream.
// A Value of exactly 0 is the reserved "no reading" sentinel and must be
// excluded from every average and extreme.
type Sample struct {
	Timestamp time.Time `json:"ts"`
	Value     float64   `json:"value"`
}

// Sentinel reports whether the sample carries no reading.
func (s Sample) Sentinel() bool {
	return s.Value == 0
}

// Bucket is a fixed-width interval aggregate of raw samples. Timestamp is
// the bucket start, floored to the interval boundary. A bucket whose
// contributing samples were all sentinels keeps its time slot with
// Min = Max = Average = 0; downstream statistics must skip it.
type Bucket struct {
	Timestamp time.Time `json:"ts"`
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	Average   float64   `json:"average"`
}

// Empty reports whether the bucket holds no usable reading.
func (b Bucket) Empty() bool {
	return b.Average == 0
}
