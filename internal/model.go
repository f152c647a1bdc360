package internal

import "time"

type User struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
}

// FlowLog is one daily flow entry. Date is a calendar day ("2006-01-02");
// at most one logical entry exists per user per date (writes upsert by date).
type FlowLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Intensity string    `json:"intensity"` // spotting, light, medium, heavy
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CycleRecord is the explicit cycle the user opened. A nil EndDate means the
// cycle is still being logged (ongoing).
type CycleRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StartDate string    `json:"start_date"`
	EndDate   *string   `json:"end_date,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SymptomLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Symptom   string    `json:"symptom"`
	Severity  int       `json:"severity,omitempty"` // 1–5 scale, 0 = not rated
	CreatedAt time.Time `json:"created_at"`
}

// UserSettings holds per-user defaults consumed by the prediction engine when
// logged history is too thin. Nil means "not set".
type UserSettings struct {
	UserID              string    `json:"user_id"`
	DefaultCycleLength  *int      `json:"default_cycle_length,omitempty"`
	DefaultPeriodLength *int      `json:"default_period_length,omitempty"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}
