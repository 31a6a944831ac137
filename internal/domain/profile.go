package domain

// Profile holds a user's persisted request defaults. The balance engine
// only ever reads these; writes come from the UI.
type Profile struct {
	UserID             string
	WorkspaceID        string
	APIKey             string
	OvertimeHourlyRate float64
}
