package models

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ArtisanID string    `json:"artisan_id"`
	Service   string    `json:"service"`
	Date      string    `json:"date"`      // e.g. "15 May 2026"
	TimeSlot  string    `json:"time_slot"` // e.g. "10:00 AM"
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Upcoming reports whether the booking still requires action from either
// party. Completed and cancelled bookings are history.
func (b Booking) Upcoming() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}
