package model

// AuthorModel mirrors the 'authors' reference table.
type AuthorModel struct {
	ID   int64  `gorm:"column:author_id;primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (AuthorModel) TableName() string {
	return "authors"
}

// ClassificationModel mirrors the 'classifications' reference table.
type ClassificationModel struct {
	ID          int64  `gorm:"column:classification_id;primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ClassificationModel) TableName() string {
	return "classifications"
}
