package model

import (
	"time"
)

// Transaction represents the database model for ledger transactions
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index"`
	Type        string    `gorm:"not null;size:50"`
	Amount      int64     `gorm:"not null"` // Signed credits: positive credit, negative debit
	Status      string    `gorm:"not null;size:50;index"`
	ExternalID  *string   `gorm:"uniqueIndex;size:255"`
	CreatedAt   time.Time `gorm:"not null"`
	ProcessedAt *time.Time

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
