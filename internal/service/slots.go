package service

import (
	"fmt"
	"math/rand"
	"time"

	apperrors "futsalbook/internal/errors"
	"futsalbook/internal/models"
)

// Bookable hours and the evening price step, in whole rupiah.
const (
	slotFirstHour = 9
	slotLastHour  = 23

	slotPriceDay     int64 = 120000
	slotPriceEvening int64 = 150000

	// Chance that an otherwise free slot is already taken. The draw is
	// fresh on every request, so availability is not stable across
	// repeated views of the same date.
	slotBookedProbability = 0.2
)

// SlotService generates the bookable hourly slots for a date. The clock
// and the random source are injectable so tests are deterministic.
type SlotService struct {
	now  func() time.Time
	rand func() float64
}

func NewSlotService() *SlotService {
	return &SlotService{
		now:  time.Now,
		rand: rand.Float64,
	}
}

// SlotPrice returns the price for a slot starting at the given hour.
func SlotPrice(hour int) int64 {
	if hour >= 18 {
		return slotPriceEvening
	}
	return slotPriceDay
}

// Generate produces the 15 hourly slots for date (ISO yyyy-mm-dd), in
// hour order. Slots on today's date that do not start strictly after the
// current instant are unavailable; remaining slots are independently
// marked taken with probability 0.2.
func (s *SlotService) Generate(date string) ([]models.Slot, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	now := s.now()
	isToday := date == now.Format("2006-01-02")

	slots := make([]models.Slot, 0, slotLastHour-slotFirstHour+1)
	for hour := slotFirstHour; hour <= slotLastHour; hour++ {
		available := true

		if isToday {
			start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.Local)
			if !start.After(now) {
				available = false
			}
		}

		if available && s.rand() < slotBookedProbability {
			available = false
		}

		slots = append(slots, models.Slot{
			Time:      fmt.Sprintf("%02d:00", hour),
			Price:     SlotPrice(hour),
			Available: available,
		})
	}

	return slots, nil
}
