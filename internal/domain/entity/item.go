// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// ItemType classifies a catalog item and determines its default rental period.
type ItemType string

const (
	// ItemTypeFilm indicates a film on physical media.
	ItemTypeFilm ItemType = "FILM"
	// ItemTypeReferenceLiterature indicates reference literature, which never leaves the library.
	ItemTypeReferenceLiterature ItemType = "REFERENCE_LITERATURE"
	// ItemTypeMagazine indicates a magazine issue.
	ItemTypeMagazine ItemType = "MAGAZINE"
	// ItemTypeCourseLiterature indicates course literature.
	ItemTypeCourseLiterature ItemType = "COURSE_LITERATURE"
	// ItemTypeOtherBooks indicates general-circulation books.
	ItemTypeOtherBooks ItemType = "OTHER_BOOKS"
)

// String returns the string representation of the ItemType.
func (t ItemType) String() string {
	return string(t)
}

// IsValid checks if the ItemType is a valid value.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeFilm, ItemTypeReferenceLiterature, ItemTypeMagazine,
		ItemTypeCourseLiterature, ItemTypeOtherBooks:
		return true
	default:
		return false
	}
}

// DefaultRentalDays returns the rental period a newly registered item of this
// type is allowed. Reference literature is not rentable and returns zero.
func (t ItemType) DefaultRentalDays() int {
	switch t {
	case ItemTypeFilm:
		return 7
	case ItemTypeMagazine:
		return 10
	case ItemTypeCourseLiterature:
		return 14
	case ItemTypeOtherBooks:
		return 30
	case ItemTypeReferenceLiterature:
		return 0
	default:
		return 0
	}
}

// ItemKind discriminates the variant payload carried by an Item.
type ItemKind string

const (
	// KindFilm marks an Item carrying a Film payload.
	KindFilm ItemKind = "film"
	// KindLiterature marks an Item carrying a Literature payload.
	KindLiterature ItemKind = "literature"
)

// Film holds the fields specific to film items.
type Film struct {
	AgeRating           int    // Minimum viewer age, 0..100.
	CountryOfProduction string // Country the film was produced in.
	ListOfActors        string // Comma-separated leading actors.
}

// Literature holds the fields specific to literature items.
type Literature struct {
	ISBN string // International Standard Book Number.
}

// Item represents one physical copy in the catalog. The Kind field selects
// which of the Film or Literature payloads is populated; the other is nil.
type Item struct {
	ID                 int64    // Store-assigned identifier; zero before persistence.
	Title              string   // Display title, shared across copies of the same work.
	Type               ItemType // Classification driving the rental period.
	Barcode            string   // Physical barcode, unique among non-purged items.
	AuthorID           int64    // Reference to the item's author.
	ClassificationID   int64    // Reference to the item's classification.
	AuthorName         string   // Denormalized author name, filled on load/create.
	ClassificationName string   // Denormalized classification name, filled on load/create.
	AllowedRentalDays  int      // Rental period in days; zero means not rentable.
	Available          bool     // False while an active rental references this copy.
	Deleted            bool     // Soft-delete flag; reversible via recover.

	Kind       ItemKind
	Film       *Film
	Literature *Literature
}

// IsRentable reports whether copies of this item may leave the library at all.
func (i *Item) IsRentable() bool {
	return i.AllowedRentalDays > 0
}
