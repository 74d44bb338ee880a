package models

import "time"

// Donation kinds used by the client. Any non-empty type is accepted.
const (
	DonationMoney   = "money"
	DonationClothes = "clothes"
	DonationFood    = "food"
	DonationOther   = "other"
)

// MaxPhoneNumberLen bounds Donation.PhoneNumber.
const MaxPhoneNumberLen = 10

type Donation struct {
	ID          int64
	Date        time.Time
	Type        string
	Group       string
	Details     string
	PhoneNumber *string
	Amount      *int64
	UserID      *int64
}
