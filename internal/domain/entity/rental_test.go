package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRental_IsActive(t *testing.T) {
	rental := Rental{}
	assert.True(t, rental.IsActive())

	returnedAt := time.Now()
	rental.ReturnDate = &returnedAt
	assert.False(t, rental.IsActive())
}

func TestRental_IsOverdue(t *testing.T) {
	now := time.Now()
	rental := Rental{DueDate: now.AddDate(0, 0, -1)}
	assert.True(t, rental.IsOverdue(now))

	onTime := Rental{DueDate: now.AddDate(0, 0, 1)}
	assert.False(t, onTime.IsOverdue(now))

	// A returned rental is never overdue, no matter the due date.
	returnedAt := now.AddDate(0, 0, -2)
	returned := Rental{DueDate: now.AddDate(0, 0, -1), ReturnDate: &returnedAt}
	assert.False(t, returned.IsOverdue(now))
}
