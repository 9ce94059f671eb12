package venues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogList(t *testing.T) {
	catalog := NewCatalog()

	venues := catalog.List()
	require.Len(t, venues, 6)

	ids := make(map[string]bool, len(venues))
	for _, v := range venues {
		ids[v.ID] = true
		assert.NotEmpty(t, v.Name)
		assert.NotEmpty(t, v.Location)
		assert.NotEmpty(t, v.Facilities)
		assert.Greater(t, v.Fields, 0)
	}

	for _, id := range []string{"venue-1", "venue-2", "venue-3", "venue-4", "venue-5", "venue-6"} {
		assert.True(t, ids[id], "missing %s", id)
	}
}

func TestCatalogDetailFields(t *testing.T) {
	catalog := NewCatalog()

	for _, v := range catalog.List() {
		assert.NotEmpty(t, v.Specifications.FieldSize, "%s specifications", v.ID)
		assert.NotEmpty(t, v.Specifications.Surface, "%s specifications", v.ID)
		assert.Greater(t, v.Specifications.Capacity, 0, "%s capacity", v.ID)

		require.NotEmpty(t, v.Amenities, "%s amenities", v.ID)
		for _, key := range []string{"parking", "wifi", "canteen", "restroom",
			"prayer_room", "locker_room", "sound_system", "air_conditioning"} {
			_, ok := v.Amenities[key]
			assert.True(t, ok, "%s amenity %s", v.ID, key)
		}

		require.Len(t, v.Reviews, 3, "%s reviews", v.ID)
		for _, r := range v.Reviews {
			assert.NotEmpty(t, r.UserName)
			assert.NotEmpty(t, r.Comment)
			assert.GreaterOrEqual(t, r.Rating, 1)
			assert.LessOrEqual(t, r.Rating, 5)
		}

		assert.Len(t, v.Policies, 6, "%s policies", v.ID)
	}
}

func TestCatalogGetByID(t *testing.T) {
	catalog := NewCatalog()

	venue := catalog.GetByID("venue-1")
	require.NotNil(t, venue)
	assert.Equal(t, "Futsal Arena Jakarta", venue.Name)

	assert.Nil(t, catalog.GetByID("venue-99"))
	assert.Nil(t, catalog.GetByID(""))
}

func TestCatalogReturnsCopies(t *testing.T) {
	catalog := NewCatalog()

	venue := catalog.GetByID("venue-1")
	require.NotNil(t, venue)
	venue.Name = "mutated"

	fresh := catalog.GetByID("venue-1")
	assert.Equal(t, "Futsal Arena Jakarta", fresh.Name)

	list := catalog.List()
	list[0].Name = "mutated"
	assert.NotEqual(t, "mutated", catalog.List()[0].Name)
}
