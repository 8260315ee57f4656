package entity

// Author is a reference-table entry catalog items point at.
type Author struct {
	ID   int64  // Store-assigned identifier.
	Name string // Display name.
}
