package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemType_DefaultRentalDays(t *testing.T) {
	assert.Equal(t, 7, ItemTypeFilm.DefaultRentalDays())
	assert.Equal(t, 10, ItemTypeMagazine.DefaultRentalDays())
	assert.Equal(t, 14, ItemTypeCourseLiterature.DefaultRentalDays())
	assert.Equal(t, 30, ItemTypeOtherBooks.DefaultRentalDays())
	assert.Equal(t, 0, ItemTypeReferenceLiterature.DefaultRentalDays())
}

func TestItemType_IsValid(t *testing.T) {
	assert.True(t, ItemTypeFilm.IsValid())
	assert.True(t, ItemTypeReferenceLiterature.IsValid())
	assert.False(t, ItemType("VINYL").IsValid())
}

func TestItem_IsRentable(t *testing.T) {
	rentable := Item{Type: ItemTypeOtherBooks, AllowedRentalDays: 30}
	assert.True(t, rentable.IsRentable())

	reference := Item{Type: ItemTypeReferenceLiterature, AllowedRentalDays: 0}
	assert.False(t, reference.IsRentable())
}
