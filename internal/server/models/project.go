package models

import "time"

type Project struct {
	ID          int64
	Type        string
	Date        time.Time
	Description string
	ImageURL    string

	Volunteers []Volunteer
}
