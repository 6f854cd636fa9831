package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// appendCalculation handles the history.append service request.
func (m *HistoryModule) appendCalculation(_ context.Context, req AppendRequest, _ *mono.Msg) (CalculationResponse, error) {
	if req.Operation == "" {
		return CalculationResponse{}, fmt.Errorf("operation is required")
	}

	input, err := json.Marshal(req.Input)
	if err != nil {
		return CalculationResponse{}, fmt.Errorf("failed to encode input: %w", err)
	}

	calc := &Calculation{
		ID:        uuid.New().String(),
		Operation: req.Operation,
		Input:     string(input),
		Result:    req.Result,
		CreatedAt: time.Now().UTC(),
	}

	if err := m.store.Append(calc); err != nil {
		return CalculationResponse{}, err
	}

	return toCalculationResponse(calc), nil
}

// listCalculations handles the history.list service request.
func (m *HistoryModule) listCalculations(_ context.Context, _ ListRequest, _ *mono.Msg) (ListResponse, error) {
	calcs, err := m.store.List()
	if err != nil {
		return ListResponse{}, err
	}

	response := ListResponse{
		Calculations: make([]CalculationResponse, 0, len(calcs)),
		Total:        len(calcs),
	}
	for _, calc := range calcs {
		response.Calculations = append(response.Calculations, toCalculationResponse(calc))
	}

	return response, nil
}

// clearCalculations handles the history.clear service request.
func (m *HistoryModule) clearCalculations(_ context.Context, _ ClearRequest, _ *mono.Msg) (ClearResponse, error) {
	removed, err := m.store.Clear()
	if err != nil {
		return ClearResponse{}, err
	}
	return ClearResponse{Removed: removed}, nil
}

// toCalculationResponse converts a Calculation entity to a CalculationResponse.
func toCalculationResponse(calc *Calculation) CalculationResponse {
	var input map[string]any
	if err := json.Unmarshal([]byte(calc.Input), &input); err != nil {
		input = map[string]any{"raw": calc.Input}
	}
	return CalculationResponse{
		ID:        calc.ID,
		Operation: calc.Operation,
		Input:     input,
		Result:    calc.Result,
		Timestamp: calc.CreatedAt.Format(time.RFC3339Nano),
	}
}
