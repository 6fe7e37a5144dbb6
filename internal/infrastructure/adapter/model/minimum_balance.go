package model

// MinimumBalance is the one upsertable table: the lowest balance an account
// may reach through non-privileged transfers. No row means a floor of zero.
type MinimumBalance struct {
	Account string `gorm:"primaryKey;size:255"`
	Floor   int64  `gorm:"not null"`
}

// TableName specifies the table name for MinimumBalance
func (MinimumBalance) TableName() string {
	return "minimum_balances"
}
