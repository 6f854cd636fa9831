package api

// OperationRequest carries the two operands of a binary operation.
type OperationRequest struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// PowerRequest carries the operands of the power operation.
type PowerRequest struct {
	Base     float64 `json:"base"`
	Exponent float64 `json:"exponent"`
}

// SingleOperandRequest carries the operand of a unary operation.
type SingleOperandRequest struct {
	Value float64 `json:"value"`
}

// ExpressionRequest carries an arithmetic expression to evaluate.
type ExpressionRequest struct {
	Expression string `json:"expression"`
}

// OperationResponse is the result of a successful calculation.
type OperationResponse struct {
	Operation string         `json:"operation"`
	Input     map[string]any `json:"input"`
	Result    float64        `json:"result"`
	Timestamp string         `json:"timestamp"`
}

// HistoryResponse lists previously performed calculations, oldest first.
type HistoryResponse struct {
	Calculations []HistoryEntry `json:"calculations"`
	Total        int            `json:"total"`
}

// HistoryEntry is a single recorded calculation.
type HistoryEntry struct {
	ID        string         `json:"id"`
	Operation string         `json:"operation"`
	Input     map[string]any `json:"input"`
	Result    float64        `json:"result"`
	Timestamp string         `json:"timestamp"`
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// InfoResponse describes the service and its endpoints.
type InfoResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}
