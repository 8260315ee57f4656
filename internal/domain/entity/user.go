package entity

// UserType classifies a library member and determines the rental quota.
type UserType string

const (
	// UserTypeAdmin indicates an administrator account. Never rents.
	UserTypeAdmin UserType = "ADMIN"
	// UserTypeStaff indicates a staff account. Never rents.
	UserTypeStaff UserType = "STAFF"
	// UserTypePatron indicates a general library patron.
	UserTypePatron UserType = "PATRON"
	// UserTypeStudent indicates an enrolled student.
	UserTypeStudent UserType = "STUDENT"
	// UserTypeTeacher indicates teaching staff.
	UserTypeTeacher UserType = "TEACHER"
	// UserTypeResearcher indicates a researcher.
	UserTypeResearcher UserType = "RESEARCHER"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeAdmin, UserTypeStaff, UserTypePatron,
		UserTypeStudent, UserTypeTeacher, UserTypeResearcher:
		return true
	default:
		return false
	}
}

// DefaultAllowedRentals returns the rental quota granted to a new user of this type.
func (t UserType) DefaultAllowedRentals() int {
	switch t {
	case UserTypePatron:
		return 3
	case UserTypeStudent:
		return 5
	case UserTypeTeacher:
		return 10
	case UserTypeResearcher:
		return 20
	default:
		// ADMIN and STAFF never rent.
		return 0
	}
}

// CanEverRent reports whether this user type participates in renting at all.
func (t UserType) CanEverRent() bool {
	return t != UserTypeAdmin && t != UserTypeStaff
}

// User represents a library member account.
type User struct {
	ID             int64    // Store-assigned identifier; zero before persistence.
	Username       string   // Login name, unique while the row exists.
	PasswordHash   string   // Bcrypt hash of the password; opaque to the domain.
	Email          string   // Contact email, unique while the row exists.
	Type           UserType // Member category driving the rental quota.
	AllowedRentals int      // Maximum simultaneous active rentals.
	CurrentRentals int      // Number of currently active rentals.
	LateFee        float64  // Outstanding late fee; zero for members in good standing.
	Deleted        bool     // Soft-delete flag; reversible via recover.
}

// IsAllowedToRent reports whether the user may open a new rental right now:
// not soft-deleted, no outstanding late fee, quota not exhausted, and of a
// type that rents at all.
func (u *User) IsAllowedToRent() bool {
	if !u.Type.CanEverRent() {
		return false
	}

	return !u.Deleted && u.LateFee == 0 && u.CurrentRentals < u.AllowedRentals
}

// HasOpenObligations reports whether outstanding rentals or fees block
// deleting this account.
func (u *User) HasOpenObligations() bool {
	return u.CurrentRentals > 0 || u.LateFee > 0
}
