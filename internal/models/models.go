package models

// RegisterRequest - payload for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest - payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest - payload for the admin console login
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse - token plus user snapshot returned on login/register
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// UpdateProfileRequest - profile edits; email is immutable
type UpdateProfileRequest struct {
	Name         string  `json:"name" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	ProfileImage *string `json:"profile_image"`
}

// SelectVenueRequest - sets the session's selected venue
type SelectVenueRequest struct {
	VenueID string `json:"venue_id" binding:"required"`
}

// Slot - one bookable hourly interval for a given date
type Slot struct {
	Time      string `json:"time"`
	Price     int64  `json:"price"`
	Available bool   `json:"available"`
}

// CreateDraftRequest - captures the user's slot selection
type CreateDraftRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// UpdateStatusRequest - admin status transition
type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

// TransactionView decorates a transaction with display fields.
type TransactionView struct {
	Transaction
	StatusLabel  string `json:"status_label"`
	PriceDisplay string `json:"price_display"`
}

// NewTransactionView builds the display decoration for a transaction.
func NewTransactionView(t Transaction) TransactionView {
	return TransactionView{
		Transaction:  t,
		StatusLabel:  t.Status.Label(),
		PriceDisplay: FormatIDR(t.Price),
	}
}

// AdminTransactionView decorates a joined transaction for the admin list.
type AdminTransactionView struct {
	AdminTransaction
	StatusLabel  string `json:"status_label"`
	PriceDisplay string `json:"price_display"`
}

// NewAdminTransactionView builds the display decoration for an admin row.
func NewAdminTransactionView(t AdminTransaction) AdminTransactionView {
	return AdminTransactionView{
		AdminTransaction: t,
		StatusLabel:      t.Status.Label(),
		PriceDisplay:     FormatIDR(t.Price),
	}
}

// DashboardStats - admin overview aggregates
type DashboardStats struct {
	TotalRevenue           int64 `json:"total_revenue"`
	TotalBookings          int   `json:"total_bookings"`
	TotalUsers             int   `json:"total_users"`
	PendingTransactions    int   `json:"pending_transactions"`
	SuccessfulTransactions int   `json:"successful_transactions"`
	FailedTransactions     int   `json:"failed_transactions"`
	TodayBookings          int   `json:"today_bookings"`
}
