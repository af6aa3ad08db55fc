package domain

import "time"

type ImportTaskStatus string

const (
	StatusQueued     ImportTaskStatus = "queued"
	StatusProcessing ImportTaskStatus = "processing"
	StatusCompleted  ImportTaskStatus = "completed"
	StatusFailed     ImportTaskStatus = "failed"
)

// ImportTask tracks one asynchronous menu import from a spreadsheet.
type ImportTask struct {
	ID              string           `bson:"_id" json:"id"`
	Status          ImportTaskStatus `bson:"status" json:"status"`
	SpreadsheetID   string           `bson:"spreadsheet_id" json:"spreadsheet_id"`
	CategoriesAdded int              `bson:"categories_added" json:"categories_added"`
	ProductsAdded   int              `bson:"products_added" json:"products_added"`
	ErrorMessage    string           `bson:"error_message,omitempty" json:"error_message,omitempty"`
	RetryCount      int              `bson:"retry_count" json:"retry_count"`
	CreatedAt       time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time        `bson:"updated_at" json:"updated_at"`
}
