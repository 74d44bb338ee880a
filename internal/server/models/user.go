// Package models defines the server-side entities persisted in the database.
package models

// User is an account. PasswordHash is write-only: it is never serialized
// and is empty for accounts created through federated login.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string

	// Populated by list queries that assemble the aggregate.
	Donations        []Donation
	VolunteerSignups []Volunteer
}
