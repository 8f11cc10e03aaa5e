package metrics

// MatchStats captures how a single FAQ lookup was resolved.
type MatchStats struct {
	Score      float64 `json:"score"`
	Matched    bool    `json:"matched"`
	DurationMs int64   `json:"durationMs"`
}

// IsZero reports whether stats were recorded for the response.
func (s MatchStats) IsZero() bool {
	return s.Score == 0 && !s.Matched && s.DurationMs == 0
}
