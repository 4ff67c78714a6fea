package models

import "time"

// CacheStats provides metrics about one cache layer.
type CacheStats struct {
	TotalEntries int       `json:"total_entries"`
	Hits         int64     `json:"hits"`
	Misses       int64     `json:"misses"`
	HitRate      float64   `json:"hit_rate"`
	LastUpdate   time.Time `json:"last_update"`
}

// ComputeHitRate fills HitRate from the hit and miss counters.
func (s *CacheStats) ComputeHitRate() {
	total := s.Hits + s.Misses
	if total > 0 {
		s.HitRate = float64(s.Hits) / float64(total) * 100
	} else {
		s.HitRate = 0
	}
}
