package history

// AppendRequest records a finished calculation.
type AppendRequest struct {
	Operation string         `json:"operation"`
	Input     map[string]any `json:"input"`
	Result    float64        `json:"result"`
}

// CalculationResponse is a recorded calculation returned to callers.
type CalculationResponse struct {
	ID        string         `json:"id"`
	Operation string         `json:"operation"`
	Input     map[string]any `json:"input"`
	Result    float64        `json:"result"`
	Timestamp string         `json:"timestamp"`
}

// ListRequest asks for the full calculation history.
type ListRequest struct{}

// ListResponse carries the recorded calculations, oldest first.
type ListResponse struct {
	Calculations []CalculationResponse `json:"calculations"`
	Total        int                   `json:"total"`
}

// ClearRequest asks to wipe the calculation history.
type ClearRequest struct{}

// ClearResponse reports how many entries were removed.
type ClearResponse struct {
	Removed int64 `json:"removed"`
}
