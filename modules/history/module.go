package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// HistoryModule records every calculation performed by the API and serves
// the history back. Storage is in-memory by default; set HISTORY_DB_PATH to
// persist to a SQLite database instead.
type HistoryModule struct {
	store  Store
	db     *gorm.DB
	dbPath string
}

// Compile-time interface checks.
var _ mono.Module = (*HistoryModule)(nil)
var _ mono.ServiceProviderModule = (*HistoryModule)(nil)
var _ mono.HealthCheckableModule = (*HistoryModule)(nil)

// NewModule creates a new HistoryModule.
func NewModule() *HistoryModule {
	return &HistoryModule{
		dbPath: os.Getenv("HISTORY_DB_PATH"),
	}
}

// Name returns the module name.
func (m *HistoryModule) Name() string {
	return "history"
}

// RegisterServices registers request-reply services in the service container.
// The framework prefixes service names with "services.<module>." so "append"
// becomes "services.history.append" in the NATS subject.
func (m *HistoryModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "append", json.Unmarshal, json.Marshal, m.appendCalculation,
	); err != nil {
		return fmt.Errorf("failed to register append service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list", json.Unmarshal, json.Marshal, m.listCalculations,
	); err != nil {
		return fmt.Errorf("failed to register list service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "clear", json.Unmarshal, json.Marshal, m.clearCalculations,
	); err != nil {
		return fmt.Errorf("failed to register clear service: %w", err)
	}

	log.Printf("[history] Registered services: services.history.{append,list,clear}")
	return nil
}

// Start initializes the storage backend.
func (m *HistoryModule) Start(_ context.Context) error {
	if m.dbPath == "" {
		m.store = NewMemoryStore()
		log.Println("[history] Using in-memory store")
		return nil
	}

	log.Printf("[history] Connecting to SQLite database: %s", m.dbPath)

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "true" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&Calculation{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.db = db
	m.store = NewRepository(db)

	log.Println("[history] Module started successfully")
	return nil
}

// Stop gracefully closes the database connection, if one was opened.
func (m *HistoryModule) Stop(_ context.Context) error {
	if m.db == nil {
		return nil
	}

	log.Println("[history] Closing database connection...")

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// Health reports which storage backend is in use and whether it is reachable.
func (m *HistoryModule) Health(ctx context.Context) mono.HealthStatus {
	if m.store == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "store not initialized",
		}
	}

	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err != nil {
			return mono.HealthStatus{
				Healthy: false,
				Message: fmt.Sprintf("failed to get sql.DB: %v", err),
			}
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return mono.HealthStatus{
				Healthy: false,
				Message: fmt.Sprintf("database ping failed: %v", err),
			}
		}
		return mono.HealthStatus{
			Healthy: true,
			Message: "operational",
			Details: map[string]any{
				"backend": "sqlite",
				"path":    m.dbPath,
			},
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"backend": "memory",
		},
	}
}
