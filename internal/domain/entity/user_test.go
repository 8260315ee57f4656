package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserType_DefaultAllowedRentals(t *testing.T) {
	assert.Equal(t, 3, UserTypePatron.DefaultAllowedRentals())
	assert.Equal(t, 5, UserTypeStudent.DefaultAllowedRentals())
	assert.Equal(t, 10, UserTypeTeacher.DefaultAllowedRentals())
	assert.Equal(t, 20, UserTypeResearcher.DefaultAllowedRentals())
	assert.Equal(t, 0, UserTypeAdmin.DefaultAllowedRentals())
	assert.Equal(t, 0, UserTypeStaff.DefaultAllowedRentals())
}

func TestUserType_CanEverRent(t *testing.T) {
	assert.False(t, UserTypeAdmin.CanEverRent())
	assert.False(t, UserTypeStaff.CanEverRent())
	assert.True(t, UserTypePatron.CanEverRent())
	assert.True(t, UserTypeResearcher.CanEverRent())
}

func TestUserType_IsValid(t *testing.T) {
	assert.True(t, UserTypeStudent.IsValid())
	assert.False(t, UserType("WIZARD").IsValid())
	assert.False(t, UserType("").IsValid())
}

func TestUser_IsAllowedToRent(t *testing.T) {
	base := User{Type: UserTypeStudent, AllowedRentals: 5, CurrentRentals: 2}
	assert.True(t, base.IsAllowedToRent())

	deleted := base
	deleted.Deleted = true
	assert.False(t, deleted.IsAllowedToRent())

	indebted := base
	indebted.LateFee = 0.5
	assert.False(t, indebted.IsAllowedToRent())

	exhausted := base
	exhausted.CurrentRentals = 5
	assert.False(t, exhausted.IsAllowedToRent())

	staff := base
	staff.Type = UserTypeStaff
	assert.False(t, staff.IsAllowedToRent())
}

func TestUser_HasOpenObligations(t *testing.T) {
	assert.False(t, (&User{}).HasOpenObligations())
	assert.True(t, (&User{CurrentRentals: 1}).HasOpenObligations())
	assert.True(t, (&User{LateFee: 10}).HasOpenObligations())
}
