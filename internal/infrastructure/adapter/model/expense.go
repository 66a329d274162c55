package model

import (
	"time"
)

// Expense represents the database model for expenses. The amount is stored
// in cents. The UserID foreign key is enforced by the database; deletes are
// restricted so the cascade stays an explicit, single-transaction operation
// in the use case layer.
type Expense struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(100);not null"`
	AmountCents int64     `gorm:"not null"`
	Category    string    `gorm:"type:varchar(50);not null"`
	UserID      uint64    `gorm:"not null;index:idx_expenses_user_id"`
	User        *User     `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}
