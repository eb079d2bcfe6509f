package domain

import "time"

// NetworkStats представляет сводную статистику по уличной сети и отчётам
type NetworkStats struct {
	Network     GraphStats     `json:"network"`
	Scores      ScoreStats     `json:"scores"`
	Coverage    *CoverageStats `json:"coverage,omitempty"`
	LastUpdated time.Time      `json:"last_updated"`
}

// GraphStats статистика по графу
type GraphStats struct {
	Ways        int            `json:"ways"`
	NamedWays   int            `json:"named_ways"`
	Edges       int            `json:"edges"`
	Nodes       int            `json:"nodes"`
	ByHighway   map[string]int `json:"by_highway"`
	TotalLength float64        `json:"total_length_km"`
}

// ScoreStats статистика по отчётам сообщества
type ScoreStats struct {
	Total        int        `json:"total"`
	Rated        int        `json:"rated"`
	ScoredWays   int        `json:"scored_ways"`
	AverageScore *float64   `json:"average_score,omitempty"`
	LastReportAt *time.Time `json:"last_report_at,omitempty"`
}

// CoverageStats покрытие территории (градусы WGS84)
type CoverageStats struct {
	BBoxMinLon float64 `json:"bbox_min_lon"`
	BBoxMinLat float64 `json:"bbox_min_lat"`
	BBoxMaxLon float64 `json:"bbox_max_lon"`
	BBoxMaxLat float64 `json:"bbox_max_lat"`
	AreaSqKm   float64 `json:"area_sq_km"`
	CenterLon  float64 `json:"center_lon"`
	CenterLat  float64 `json:"center_lat"`
}
