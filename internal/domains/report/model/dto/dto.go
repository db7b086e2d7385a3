package dto

type OccupancyRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type OccupancyResponse struct {
	Date          string  `json:"date"`
	OccupiedRooms int     `json:"occupied_rooms"`
	TotalRooms    int     `json:"total_rooms"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type StatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int    `db:"count"  json:"count"`
}

type StatusBreakdownResponse struct {
	Statuses []StatusCount `json:"statuses"`
}

type RevenueRequest struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to"   validate:"required,datetime=2006-01-02"`
}

type RevenueResponse struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Revenue float64 `json:"revenue"`
}
