package history

import "time"

// Calculation is one recorded computation.
type Calculation struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	Operation string    `gorm:"size:32;not null;index" json:"operation"`
	Input     string    `gorm:"size:500" json:"input"` // JSON-encoded operands
	Result    float64   `gorm:"not null" json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for the Calculation model.
func (Calculation) TableName() string {
	return "calculations"
}
