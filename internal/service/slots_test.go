package service

import (
	"testing"
	"time"

	apperrors "futsalbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSlotService pins the clock and the availability draw so every
// slot comes out available unless the time-of-day rule kicks in.
func fixedSlotService(now time.Time) *SlotService {
	return &SlotService{
		now:  func() time.Time { return now },
		rand: func() float64 { return 1.0 },
	}
}

func TestGenerateSlotCount(t *testing.T) {
	svc := fixedSlotService(time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))

	slots, err := svc.Generate("2026-09-02")
	require.NoError(t, err)
	require.Len(t, slots, 15)

	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "23:00", slots[14].Time)
}

func TestGeneratePriceStep(t *testing.T) {
	svc := fixedSlotService(time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local))

	slots, err := svc.Generate("2026-09-02")
	require.NoError(t, err)

	for _, slot := range slots {
		switch slot.Time {
		case "17:00":
			assert.Equal(t, int64(120000), slot.Price)
		case "18:00", "23:00":
			assert.Equal(t, int64(150000), slot.Price)
		}
	}

	assert.Equal(t, int64(120000), SlotPrice(9))
	assert.Equal(t, int64(120000), SlotPrice(17))
	assert.Equal(t, int64(150000), SlotPrice(18))
	assert.Equal(t, int64(150000), SlotPrice(23))
}

func TestGenerateTodayPastSlotsUnavailable(t *testing.T) {
	// 14:30 today: slots up to and including 14:00 have started
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local)
	svc := fixedSlotService(now)

	slots, err := svc.Generate("2026-09-01")
	require.NoError(t, err)

	for _, slot := range slots {
		switch slot.Time {
		case "09:00", "10:00", "11:00", "12:00", "13:00", "14:00":
			assert.False(t, slot.Available, "slot %s already started", slot.Time)
		default:
			assert.True(t, slot.Available, "slot %s is still upcoming", slot.Time)
		}
	}
}

func TestGenerateSlotOnTheHourBoundary(t *testing.T) {
	// Exactly 15:00: the 15:00 slot does not start strictly after now
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.Local)
	svc := fixedSlotService(now)

	slots, err := svc.Generate("2026-09-01")
	require.NoError(t, err)

	for _, slot := range slots {
		if slot.Time == "15:00" {
			assert.False(t, slot.Available)
		}
		if slot.Time == "16:00" {
			assert.True(t, slot.Available)
		}
	}
}

func TestGenerateRandomlyBooked(t *testing.T) {
	svc := &SlotService{
		now:  func() time.Time { return time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local) },
		rand: func() float64 { return 0.1 }, // always below the 0.2 threshold
	}

	slots, err := svc.Generate("2026-09-02")
	require.NoError(t, err)

	for _, slot := range slots {
		assert.False(t, slot.Available)
	}
}

func TestGenerateInvalidDate(t *testing.T) {
	svc := NewSlotService()

	for _, date := range []string{"", "tomorrow", "01-09-2026", "2026/09/01"} {
		_, err := svc.Generate(date)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDate, "date %q", date)
	}
}
