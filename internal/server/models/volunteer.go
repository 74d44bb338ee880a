package models

// Volunteer is a signup of one user for one project (EventID). A user can
// sign up for a project at most once.
type Volunteer struct {
	ID      int64
	EventID int64
	UserID  int64
	Email   string
}
