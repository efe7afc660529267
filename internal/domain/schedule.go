package domain

type ScheduleStatus string

const (
	StatusDraft     ScheduleStatus = "DRAFT"
	StatusPublished ScheduleStatus = "PUBLISHED"
	StatusClosed    ScheduleStatus = "CLOSED"
	StatusArchived  ScheduleStatus = "ARCHIVED"
)

// Todas as datas são strings canônicas no formato YYYY-MM-DD e os horários
// no formato HH:MM. Valores monetários são sempre inteiros em centavos.
type Schedule struct {
	ID                  string         `json:"id"`
	OrganizationID      string         `json:"organizationId"`
	LocationID          string         `json:"locationId"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	StartDate           string         `json:"startDate"`
	EndDate             string         `json:"endDate"`
	Status              ScheduleStatus `json:"status"`
	PublishedAt         string         `json:"publishedAt,omitempty"`
	ShiftValue          int64          `json:"shiftValue"`
	ExtraShifts         []ExtraShift   `json:"extraShifts"`
	RequireSwapApproval *bool          `json:"requireSwapApproval"`
	Location            Location       `json:"location"`
	CreatedAt           string         `json:"createdAt"`
	UpdatedAt           string         `json:"updatedAt"`
}

type ExtraShift struct {
	ID            string `json:"id"`
	ScheduleID    string `json:"scheduleId"`
	LocationID    string `json:"locationId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	RequiredCount int    `json:"requiredCount"`
	Notes         string `json:"notes,omitempty"`
}
