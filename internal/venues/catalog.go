// Package venues holds the static venue catalog. Venues are seeded in
// memory and never persisted; transactions embed a snapshot of the venue
// they were booked against.
package venues

import (
	"futsalbook/internal/models"
)

type Catalog struct {
	venues []models.Venue
	byID   map[string]int
}

// NewCatalog seeds the demo catalog.
func NewCatalog() *Catalog {
	c := &Catalog{venues: seed()}
	c.byID = make(map[string]int, len(c.venues))
	for i, v := range c.venues {
		c.byID[v.ID] = i
	}
	return c
}

// List returns all venues in seed order.
func (c *Catalog) List() []models.Venue {
	out := make([]models.Venue, len(c.venues))
	copy(out, c.venues)
	return out
}

// GetByID returns the venue with the given id, or nil when unknown.
func (c *Catalog) GetByID(id string) *models.Venue {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	v := c.venues[i]
	return &v
}

func seed() []models.Venue {
	venues := baseVenues()

	// The detail-page data (specifications, amenities, reviews,
	// policies) is one static set shared by every venue in the demo.
	for i := range venues {
		venues[i].Specifications = models.VenueSpecifications{
			FieldSize: "40m x 20m",
			Surface:   "Rumput Sintetis Premium",
			Lighting:  "LED Floodlight 500 Lux",
			Capacity:  50,
		}
		venues[i].Amenities = seedAmenities()
		venues[i].Reviews = seedReviews()
		venues[i].Policies = seedPolicies()
	}

	return venues
}

func seedAmenities() map[string]bool {
	return map[string]bool{
		"parking":          true,
		"wifi":             true,
		"canteen":          true,
		"restroom":         true,
		"prayer_room":      true,
		"locker_room":      true,
		"sound_system":     true,
		"air_conditioning": true,
	}
}

func seedReviews() []models.VenueReview {
	return []models.VenueReview{
		{
			ID:         "1",
			UserName:   "Ahmad Rizki",
			UserAvatar: "/images/avatar-1.jpg",
			Rating:     5,
			Comment:    "Lapangan sangat bagus, bersih, dan fasilitas lengkap. Pelayanan juga ramah. Pasti akan booking lagi!",
			Date:       "2024-01-15",
		},
		{
			ID:         "2",
			UserName:   "Sari Dewi",
			UserAvatar: "/images/avatar-2.jpg",
			Rating:     4,
			Comment:    "Lokasi strategis dan mudah dijangkau. Lapangan berkualitas dengan harga yang reasonable.",
			Date:       "2024-01-10",
		},
		{
			ID:         "3",
			UserName:   "Budi Santoso",
			UserAvatar: "/images/avatar-3.jpg",
			Rating:     5,
			Comment:    "Fasilitas parkir luas, kantin enak, dan lapangan selalu dalam kondisi prima. Recommended!",
			Date:       "2024-01-08",
		},
	}
}

func seedPolicies() []string {
	return []string{
		"Booking minimal 2 jam sebelum waktu bermain",
		"Pembatalan gratis hingga 4 jam sebelum waktu bermain",
		"Dilarang merokok di area lapangan",
		"Wajib menggunakan sepatu futsal",
		"Maksimal 10 pemain per tim",
		"Fasilitas tersedia mulai 30 menit sebelum waktu booking",
	}
}

func baseVenues() []models.Venue {
	return []models.Venue{
		{
			ID:          "venue-1",
			Name:        "Futsal Arena Jakarta",
			Location:    "Jakarta Selatan",
			Description: "Lapangan futsal premium dengan fasilitas lengkap dan lokasi strategis di Jakarta Selatan",
			Images:      []string{"/images/venue-1.jpg"},
			Rating:      4.8,
			PriceRange:  "Rp 120.000 - 180.000",
			Facilities:  []string{"AC", "Parkir Luas", "Kantin", "Mushola", "Toilet"},
			OpenHours:   "09:00 - 24:00",
			Fields:      3,
		},
		{
			ID:          "venue-2",
			Name:        "Champion Futsal Center",
			Location:    "Jakarta Barat",
			Description: "Pusat futsal terbaik dengan rumput sintetis berkualitas tinggi dan pencahayaan optimal",
			Images:      []string{"/images/venue-2.jpg"},
			Rating:      4.7,
			PriceRange:  "Rp 100.000 - 150.000",
			Facilities:  []string{"Sound System", "Parkir", "Kantin", "Locker Room"},
			OpenHours:   "08:00 - 23:00",
			Fields:      2,
		},
		{
			ID:          "venue-3",
			Name:        "Elite Sports Complex",
			Location:    "Jakarta Timur",
			Description: "Kompleks olahraga elite dengan lapangan futsal standar FIFA dan fasilitas premium",
			Images:      []string{"/images/venue-3.jpg"},
			Rating:      4.9,
			PriceRange:  "Rp 150.000 - 200.000",
			Facilities:  []string{"AC", "Tribun", "Parkir VIP", "Cafe", "Gym", "Shower"},
			OpenHours:   "06:00 - 24:00",
			Fields:      4,
		},
		{
			ID:          "venue-4",
			Name:        "Green Field Futsal",
			Location:    "Jakarta Utara",
			Description: "Lapangan futsal dengan konsep hijau dan ramah lingkungan, cocok untuk keluarga",
			Images:      []string{"/images/venue-4.jpg"},
			Rating:      4.5,
			PriceRange:  "Rp 90.000 - 130.000",
			Facilities:  []string{"Outdoor Area", "Parkir", "Kids Zone", "Kantin"},
			OpenHours:   "09:00 - 22:00",
			Fields:      2,
		},
		{
			ID:          "venue-5",
			Name:        "Pro Futsal Academy",
			Location:    "Jakarta Pusat",
			Description: "Akademi futsal profesional dengan lapangan berkualitas internasional",
			Images:      []string{"/images/venue-5.jpg"},
			Rating:      4.6,
			PriceRange:  "Rp 110.000 - 160.000",
			Facilities:  []string{"Training Equipment", "Video Analysis", "Parkir", "Clinic"},
			OpenHours:   "07:00 - 23:00",
			Fields:      3,
		},
		{
			ID:          "venue-6",
			Name:        "Urban Futsal Hub",
			Location:    "Tangerang",
			Description: "Hub futsal modern di area urban dengan teknologi booking terdepan",
			Images:      []string{"/images/venue-6.jpg"},
			Rating:      4.4,
			PriceRange:  "Rp 80.000 - 120.000",
			Facilities:  []string{"WiFi", "Digital Scoreboard", "Parkir", "Food Court"},
			OpenHours:   "10:00 - 24:00",
			Fields:      2,
		},
	}
}
