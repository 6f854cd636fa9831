package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
)

// HistoryPort defines the interface for interacting with the history module.
// Consumers should use this interface instead of directly referencing the Module.
type HistoryPort interface {
	Append(ctx context.Context, operation string, input map[string]any, result float64) (*CalculationResponse, error)
	List(ctx context.Context) (*ListResponse, error)
	Clear(ctx context.Context) (int64, error)
}

// historyAdapter implements HistoryPort using the service container.
type historyAdapter struct {
	container mono.ServiceContainer
}

// NewHistoryAdapter creates a new adapter for the history services.
func NewHistoryAdapter(container mono.ServiceContainer) HistoryPort {
	return &historyAdapter{
		container: container,
	}
}

// Append records a calculation in the history.
func (a *historyAdapter) Append(ctx context.Context, operation string, input map[string]any, result float64) (*CalculationResponse, error) {
	req := AppendRequest{
		Operation: operation,
		Input:     input,
		Result:    result,
	}

	var response CalculationResponse
	if err := a.call(ctx, "append", &req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// List returns all recorded calculations, oldest first.
func (a *historyAdapter) List(ctx context.Context) (*ListResponse, error) {
	var response ListResponse
	if err := a.call(ctx, "list", &ListRequest{}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Clear wipes the recorded history and reports how many entries were removed.
func (a *historyAdapter) Clear(ctx context.Context) (int64, error) {
	var response ClearResponse
	if err := a.call(ctx, "clear", &ClearRequest{}, &response); err != nil {
		return 0, err
	}
	return response.Removed, nil
}

// call performs a request-reply round trip against a history service.
func (a *historyAdapter) call(ctx context.Context, name string, req, out any) error {
	client, err := a.container.GetRequestReplyService(name)
	if err != nil {
		return fmt.Errorf("failed to get %s service: %w", name, err)
	}

	reqData, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Call(ctx, reqData)
	if err != nil {
		return fmt.Errorf("%s service call failed: %w", name, err)
	}

	// Check for error response
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Data, &errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("%s", errResp.Error)
	}

	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
