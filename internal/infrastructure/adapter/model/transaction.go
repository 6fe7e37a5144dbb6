package model

import (
	"time"
)

// Transaction is the database model for one ledger row. Rows are append-only;
// nothing in the codebase updates or deletes them.
type Transaction struct {
	ID       uint64    `gorm:"primaryKey;autoIncrement"`
	Sender   string    `gorm:"index;size:255"` // empty means minted
	Receiver string    `gorm:"not null;index;size:255"`
	Amount   int64     `gorm:"not null"` // minor units, always positive
	Date     time.Time `gorm:"not null;index"`
	Memo     string    `gorm:"type:text"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
