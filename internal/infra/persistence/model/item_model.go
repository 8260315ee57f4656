// Package model contains the GORM persistence models mirroring the database schema.
package model

// ItemModel mirrors the 'items' table. One row per physical copy; the
// film/literature child row is keyed by the item id.
//
// Barcode uniqueness is enforced among non-purged rows by the catalog
// service's registered-barcode set, not by a plain DB unique index, because
// a purged item's barcode becomes reusable.
type ItemModel struct {
	ID                int64  `gorm:"column:item_id;primaryKey;autoIncrement"`
	Title             string `gorm:"type:varchar(100);not null;index"`
	ItemType          string `gorm:"type:varchar(30);not null"`
	Barcode           string `gorm:"type:varchar(50);not null;index"`
	AuthorID          int64  `gorm:"not null"`
	ClassificationID  int64  `gorm:"not null"`
	AllowedRentalDays int    `gorm:"not null"`
	Available         bool   `gorm:"not null;default:true"`
	Deleted           bool   `gorm:"not null;default:false"`

	Film           *FilmModel           `gorm:"foreignKey:ItemID"`
	Literature     *LiteratureModel     `gorm:"foreignKey:ItemID"`
	Author         *AuthorModel         `gorm:"foreignKey:AuthorID"`
	Classification *ClassificationModel `gorm:"foreignKey:ClassificationID"`
}

// TableName explicitly sets the table name for GORM.
func (ItemModel) TableName() string {
	return "items"
}

// FilmModel mirrors the 'films' table, one-to-one with its parent item.
type FilmModel struct {
	ItemID              int64  `gorm:"column:film_id;primaryKey"`
	AgeRating           int    `gorm:"not null"`
	CountryOfProduction string `gorm:"type:varchar(100)"`
	Actors              string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (FilmModel) TableName() string {
	return "films"
}

// LiteratureModel mirrors the 'literature' table, one-to-one with its parent item.
type LiteratureModel struct {
	ItemID int64  `gorm:"column:literature_id;primaryKey"`
	ISBN   string `gorm:"column:isbn;type:varchar(20);not null"`
}

// TableName explicitly sets the table name for GORM.
func (LiteratureModel) TableName() string {
	return "literature"
}
