package api

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/example/calculator-api/domain/calc"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	m.app.Get("/", m.infoHandler)
	m.app.Get("/health", m.healthHandler)

	m.app.Post("/add", m.binaryHandler("addition", calc.Add))
	m.app.Post("/subtract", m.binaryHandler("subtraction", calc.Subtract))
	m.app.Post("/multiply", m.binaryHandler("multiplication", calc.Multiply))
	m.app.Post("/divide", m.failingBinaryHandler("division", calc.Divide))
	m.app.Post("/modulus", m.failingBinaryHandler("modulus", calc.Modulus))
	m.app.Post("/power", m.powerHandler)
	m.app.Post("/sqrt", m.sqrtHandler)
	m.app.Post("/evaluate", m.evaluateHandler)

	m.app.Get("/history", m.listHistory)
	m.app.Delete("/history", m.clearHistory)
}

// infoHandler handles GET /.
func (m *APIModule) infoHandler(c *fiber.Ctx) error {
	return c.JSON(InfoResponse{
		Service: "calculator-api",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"POST /add":       "Add two numbers",
			"POST /subtract":  "Subtract two numbers",
			"POST /multiply":  "Multiply two numbers",
			"POST /divide":    "Divide two numbers",
			"POST /modulus":   "Remainder of a division",
			"POST /power":     "Raise a base to an exponent",
			"POST /sqrt":      "Square root of a number",
			"POST /evaluate":  "Evaluate an arithmetic expression",
			"GET /history":    "List past calculations",
			"DELETE /history": "Clear past calculations",
		},
	})
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.port,
		},
	})
}

// binaryHandler builds a handler for a two-operand operation that cannot fail.
func (m *APIModule) binaryHandler(operation string, op func(a, b float64) float64) fiber.Handler {
	return m.failingBinaryHandler(operation, func(a, b float64) (float64, error) {
		return op(a, b), nil
	})
}

// failingBinaryHandler builds a handler for a two-operand operation that may
// reject its operands.
func (m *APIModule) failingBinaryHandler(operation string, op func(a, b float64) (float64, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req OperationRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		result, err := op(req.A, req.B)
		if err != nil {
			return calcFailure(c, err)
		}

		input := map[string]any{"a": req.A, "b": req.B}
		return m.respond(c, operation, input, result)
	}
}

// powerHandler handles POST /power.
func (m *APIModule) powerHandler(c *fiber.Ctx) error {
	var req PowerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := calc.Power(req.Base, req.Exponent)
	if err != nil {
		return calcFailure(c, err)
	}

	input := map[string]any{"base": req.Base, "exponent": req.Exponent}
	return m.respond(c, "power", input, result)
}

// sqrtHandler handles POST /sqrt.
func (m *APIModule) sqrtHandler(c *fiber.Ctx) error {
	var req SingleOperandRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := calc.SquareRoot(req.Value)
	if err != nil {
		return calcFailure(c, err)
	}

	input := map[string]any{"value": req.Value}
	return m.respond(c, "square_root", input, result)
}

// evaluateHandler handles POST /evaluate.
func (m *APIModule) evaluateHandler(c *fiber.Ctx) error {
	var req ExpressionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := calc.Evaluate(req.Expression)
	if err != nil {
		return calcFailure(c, err)
	}

	input := map[string]any{"expression": req.Expression}
	return m.respond(c, "evaluate", input, result)
}

// listHistory handles GET /history.
func (m *APIModule) listHistory(c *fiber.Ctx) error {
	resp, err := m.history.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "history_failed",
			Message: "Failed to load calculation history",
		})
	}

	out := HistoryResponse{
		Calculations: make([]HistoryEntry, 0, len(resp.Calculations)),
		Total:        resp.Total,
	}
	for _, entry := range resp.Calculations {
		out.Calculations = append(out.Calculations, HistoryEntry{
			ID:        entry.ID,
			Operation: entry.Operation,
			Input:     entry.Input,
			Result:    entry.Result,
			Timestamp: entry.Timestamp,
		})
	}
	return c.JSON(out)
}

// clearHistory handles DELETE /history.
func (m *APIModule) clearHistory(c *fiber.Ctx) error {
	removed, err := m.history.Clear(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "history_failed",
			Message: "Failed to clear calculation history",
		})
	}
	return c.JSON(MessageResponse{
		Message: fmt.Sprintf("History cleared. Removed %d entries.", removed),
	})
}

// respond records the calculation in the history and returns the result.
// A history failure is logged but never fails a calculation that succeeded.
func (m *APIModule) respond(c *fiber.Ctx, operation string, input map[string]any, result float64) error {
	if _, err := m.history.Append(c.UserContext(), operation, input, result); err != nil {
		log.Printf("[api] failed to record %s in history: %v", operation, err)
	}

	return c.JSON(OperationResponse{
		Operation: operation,
		Input:     input,
		Result:    result,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// calcFailure maps a calculation error to an HTTP response. Domain errors
// become 400s carrying the exact reason; anything else is a 500.
func calcFailure(c *fiber.Ctx, err error) error {
	var calcErr *calc.CalculatorError
	if errors.As(err, &calcErr) {
		return badRequest(c, calcErr.Reason)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "calculation_failed",
		Message: "Internal calculation error",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "validation_error",
		Message: message,
	})
}
