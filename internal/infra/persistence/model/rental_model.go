package model

import "time"

// RentalModel mirrors the 'rentals' table. Username, ItemTitle and ItemType
// are snapshot columns copied from the source rows at creation time.
type RentalModel struct {
	ID         int64      `gorm:"column:rental_id;primaryKey;autoIncrement"`
	UserID     int64      `gorm:"not null;index"`
	ItemID     int64      `gorm:"not null;index"`
	Username   string     `gorm:"type:varchar(50);not null"`
	ItemTitle  string     `gorm:"type:varchar(100);not null"`
	ItemType   string     `gorm:"type:varchar(30);not null"`
	RentalDate time.Time  `gorm:"not null"`
	DueDate    time.Time  `gorm:"column:rental_due_date;not null"`
	ReturnDate *time.Time `gorm:"column:rental_return_date"`
	LateFee    float64    `gorm:"type:numeric(10,2);not null;default:0"`
	Receipt    string     `gorm:"type:text;not null"`
	ReceiptRef string     `gorm:"type:varchar(36);not null"`
	Deleted    bool       `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (RentalModel) TableName() string {
	return "rentals"
}
