package models

// Outlier is a bucket whose average deviates more than two standard
// deviations from the day's mean.
type Outlier struct {
	Value float64 `json:"value"`
	Time  string  `json:"time"`
}

// DailyStats summarizes one signal's buckets for a day. The zero value is
// the defined "no data" result, not an error.
type DailyStats struct {
	Average   float64   `json:"average"`
	Peak      float64   `json:"peak"`
	PeakTime  string    `json:"peak_time"`
	Low       float64   `json:"low"`
	LowTime   string    `json:"low_time"`
	Deviation float64   `json:"deviation"`
	Stability float64   `json:"stability"` // 0-100, decreasing in deviation
	Outliers  []Outlier `json:"outliers,omitempty"`
}

// Indicators are the derived 0-100 emotional-signal values, distinct from
// the raw flow/heart-rate streams.
type Indicators struct {
	Frustration float64 `json:"frustration"`
	Excitement  float64 `json:"excitement"`
	Calm        float64 `json:"calm"`
}

// DailyInsights bundles everything the daily analysis pipeline derives for
// one day of flow and heart-rate buckets.
type DailyInsights struct {
	FlowStats      DailyStats `json:"flow_stats"`
	HeartRateStats DailyStats `json:"heart_rate_stats"`
	Correlation    float64    `json:"correlation"`
	Indicators     Indicators `json:"indicators"`
	KeyInsights    []string   `json:"key_insights"`
}
