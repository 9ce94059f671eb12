package models

import (
	"time"
)

// User represents a registered customer
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	PasswordHash string    `json:"-" db:"password_hash"`
	ProfileImage *string   `json:"profile_image,omitempty" db:"profile_image"`
	RegisteredAt time.Time `json:"registered_at" db:"registered_at"`
}

// Venue represents a futsal venue. The catalog is seeded in memory and
// never persisted; transactions carry a snapshot of the venue instead of
// a foreign key.
type Venue struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Location       string              `json:"location"`
	Description    string              `json:"description"`
	Images         []string            `json:"images"`
	Rating         float64             `json:"rating"`
	PriceRange     string              `json:"price_range"`
	Facilities     []string            `json:"facilities"`
	OpenHours      string              `json:"open_hours"`
	Fields         int                 `json:"fields"`
	Specifications VenueSpecifications `json:"specifications"`
	Amenities      map[string]bool     `json:"amenities"`
	Reviews        []VenueReview       `json:"reviews"`
	Policies       []string            `json:"policies"`
}

// VenueSpecifications describes the playing surface and field setup shown
// on the venue detail page.
type VenueSpecifications struct {
	FieldSize string `json:"field_size"`
	Surface   string `json:"surface"`
	Lighting  string `json:"lighting"`
	Capacity  int    `json:"capacity"`
}

// VenueReview is a customer review shown on the venue detail page.
type VenueReview struct {
	ID         string `json:"id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date"`
}

// DraftBooking is the ephemeral pre-checkout selection. Exactly one may
// exist per session; a new selection overwrites the previous one.
type DraftBooking struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Price int64  `json:"price"`
	Field string `json:"field"`
	Venue Venue  `json:"venue"`
}

// PaymentProof is a user-submitted image attached to a transaction for
// manual verification. FileData holds the image as a base64 data URI.
type PaymentProof struct {
	FileName   string    `json:"file_name"`
	FileSize   int64     `json:"file_size"`
	FileType   string    `json:"file_type"`
	UploadedAt time.Time `json:"uploaded_at"`
	FileData   string    `json:"file_data"`
}

// PaymentInstructions describes how to pay for a chosen method.
type PaymentInstructions struct {
	AccountNumber string   `json:"account_number,omitempty"`
	AccountName   string   `json:"account_name,omitempty"`
	QRCode        string   `json:"qr_code,omitempty"`
	Steps         []string `json:"steps"`
}

// Transaction is a persisted booking-and-payment record. Once created,
// everything except Status and PaymentProof is immutable.
type Transaction struct {
	ID                  string               `json:"id" db:"id"`
	UserID              int64                `json:"user_id" db:"user_id"`
	Date                string               `json:"date" db:"booking_date"`
	Time                string               `json:"time" db:"booking_time"`
	Field               string               `json:"field" db:"field"`
	Price               int64                `json:"price" db:"price"`
	PaymentMethod       string               `json:"payment_method" db:"payment_method"`
	Status              Status               `json:"status" db:"status"`
	CreatedAt           time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at" db:"updated_at"`
	Venue               Venue                `json:"venue"`
	PaymentInstructions *PaymentInstructions `json:"payment_instructions,omitempty"`
	PaymentProof        *PaymentProof        `json:"payment_proof,omitempty"`
}

// AdminTransaction is a transaction joined with its owner for the admin
// console. A transaction may reference a user that no longer matches any
// row, in which case the customer fields stay empty.
type AdminTransaction struct {
	Transaction
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

// Session roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// AdminSentinelID is the fixed id carried by admin sessions; it is not a
// real user record.
const AdminSentinelID int64 = 999999

// Session is the server-side state behind an opaque bearer token. It
// replaces the original client-local pointers currentUser, currentAdmin,
// selectedVenue and currentBooking.
type Session struct {
	Token  string        `json:"token"`
	UserID int64         `json:"user_id"`
	Role   string        `json:"role"`
	User   *User         `json:"user,omitempty"`
	Venue  *Venue        `json:"venue,omitempty"`
	Draft  *DraftBooking `json:"draft,omitempty"`
}

// IsAdmin reports whether the session belongs to the admin console.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
