package entity

// Classification is a reference-table entry grouping catalog items by subject.
type Classification struct {
	ID          int64  // Store-assigned identifier.
	Name        string // Subject name.
	Description string // Free-form description of the subject area.
}
