package dto

// RouteRequest - запрос маршрута между двумя точками (градусы, lng/lat)
type RouteRequest struct {
	StartLng float64 `json:"start_lng" validate:"min=-180,max=180"`
	StartLat float64 `json:"start_lat" validate:"min=-90,max=90"`
	EndLng   float64 `json:"end_lng" validate:"min=-180,max=180"`
	EndLat   float64 `json:"end_lat" validate:"min=-90,max=90"`
	Format   string  `json:"format,omitempty" validate:"omitempty,oneof=json polyline"`
}

// MergeRequest - запрос на расширение выбранного участка до группы участков
type MergeRequest struct {
	AnchorWayID int64  `json:"anchor_way_id" validate:"required,gt=0"`
	WayIDs      string `json:"way_ids" validate:"required,max=4096"`
}

// SubmitScoreRequest - новый отчёт о пригодности участков для велосипеда
type SubmitScoreRequest struct {
	Score              float64 `json:"score" validate:"cyclability"`
	Comment            *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
	WayIDs             []int64 `json:"way_ids" validate:"required,min=1,max=500,dive,gt=0"`
	PhotoPath          *string `json:"photo_path,omitempty" validate:"omitempty,max=512"`
	PhotoPathThumbnail *string `json:"photo_path_thumbnail,omitempty" validate:"omitempty,max=512"`
}

// RecentScoresRequest - видимая область карты (градусы)
type RecentScoresRequest struct {
	MinLng float64 `json:"min_lng" validate:"min=-180,max=180"`
	MinLat float64 `json:"min_lat" validate:"min=-90,max=90"`
	MaxLng float64 `json:"max_lng" validate:"min=-180,max=180,gtefield=MinLng"`
	MaxLat float64 `json:"max_lat" validate:"min=-90,max=90,gtefield=MinLat"`
}
