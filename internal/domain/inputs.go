package domain

type ScheduleInput struct {
	LocationID          string         `json:"locationId"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	StartDate           string         `json:"startDate"`
	EndDate             string         `json:"endDate"`
	Status              ScheduleStatus `json:"status"`
	PublishedAt         string         `json:"publishedAt"`
	ShiftValue          int64          `json:"shiftValue"`
	RequireSwapApproval *bool          `json:"requireSwapApproval"`
}

type ExtraShiftInput struct {
	LocationID    string `json:"locationId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	RequiredCount int    `json:"requiredCount"`
	Notes         string `json:"notes"`
}

// ShiftValueQuery é o objeto transitório de consulta de valor de plantão.
// Não é persistido.
type ShiftValueQuery struct {
	Date          string   `json:"date"`
	SectorName    string   `json:"sectorName"`
	ScheduleID    string   `json:"scheduleId"`
	FallbackValue *float64 `json:"fallbackValue"`
}
