package model

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID             int64   `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username       string  `gorm:"type:varchar(50);unique;not null"`
	Password       string  `gorm:"type:varchar(100);not null"`
	Email          string  `gorm:"type:varchar(100);unique;not null"`
	UserType       string  `gorm:"type:varchar(20);not null"`
	AllowedRentals int     `gorm:"not null"`
	CurrentRentals int     `gorm:"not null;default:0"`
	LateFee        float64 `gorm:"type:numeric(10,2);not null;default:0"`
	Deleted        bool    `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
