package httpapi

import (
	"time"

	"github.com/dmitrijs2005/hopeconnect/internal/server/models"
)

// Response shapes. None of them carry the password hash.

type userResponse struct {
	ID               int64               `json:"id"`
	FirstName        string              `json:"first_name"`
	LastName         string              `json:"last_name"`
	Email            string              `json:"email"`
	Role             string              `json:"role"`
	Donations        []donationResponse  `json:"donations"`
	VolunteerSignups []volunteerResponse `json:"volunteer_signups"`
}

type donationResponse struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Group       string  `json:"group"`
	Details     string  `json:"details"`
	PhoneNumber *string `json:"phone_number"`
	Amount      *int64  `json:"amount"`
	UserID      *int64  `json:"user_id"`
}

type projectResponse struct {
	ID          int64               `json:"id"`
	Type        string              `json:"type"`
	Date        string              `json:"date"`
	Description string              `json:"description"`
	ImageURL    string              `json:"image_url"`
	Volunteers  []volunteerResponse `json:"volunteers"`
}

type volunteerResponse struct {
	ID      int64  `json:"id"`
	EventID int64  `json:"event_id"`
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
}

func newUserResponse(u models.User) userResponse {
	return userResponse{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		Role:             u.Role,
		Donations:        newDonationResponses(u.Donations),
		VolunteerSignups: newVolunteerResponses(u.VolunteerSignups),
	}
}

func newDonationResponse(d models.Donation) donationResponse {
	return donationResponse{
		ID:          d.ID,
		Date:        d.Date.UTC().Format(time.RFC3339),
		Type:        d.Type,
		Group:       d.Group,
		Details:     d.Details,
		PhoneNumber: d.PhoneNumber,
		Amount:      d.Amount,
		UserID:      d.UserID,
	}
}

func newDonationResponses(ds []models.Donation) []donationResponse {
	out := make([]donationResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, newDonationResponse(d))
	}
	return out
}

func newProjectResponse(p models.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Type:        p.Type,
		Date:        p.Date.UTC().Format(time.RFC3339),
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Volunteers:  newVolunteerResponses(p.Volunteers),
	}
}

func newVolunteerResponse(v models.Volunteer) volunteerResponse {
	return volunteerResponse{ID: v.ID, EventID: v.EventID, UserID: v.UserID, Email: v.Email}
}

func newVolunteerResponses(vs []models.Volunteer) []volunteerResponse {
	out := make([]volunteerResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, newVolunteerResponse(v))
	}
	return out
}
