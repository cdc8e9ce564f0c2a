// Package render projects the listing collection into the display list the
// admin panel and the public board consume.
package render

import (
	"github.com/velja/jobboard-api/internal/models"
)

// EmptyMessage is shown whenever the collection has no entries.
const EmptyMessage = "No job listings found."

type Actions struct {
	Edit   string `json:"edit"`
	Delete string `json:"delete"`
}

type Row struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Company    string  `json:"company"`
	Location   string  `json:"location"`
	PostedDate string  `json:"postedDate"`
	Actions    Actions `json:"actions"`
}

type DisplayList struct {
	Rows    []Row  `json:"rows"`
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`
}

// Project builds one row per listing in collection order, each tagged with
// the action paths for that listing's id.
func Project(c models.Collection) DisplayList {
	if len(c) == 0 {
		return DisplayList{Rows: []Row{}, Empty: true, Message: EmptyMessage}
	}

	rows := make([]Row, len(c))
	for i, l := range c {
		rows[i] = Row{
			ID:         l.ID,
			Title:      l.Title,
			Company:    l.Company,
			Location:   l.Location,
			PostedDate: l.PostedDate,
			Actions: Actions{
				Edit:   "/api/v1/admin/listings/" + l.ID + "/edit",
				Delete: "/api/v1/admin/listings/" + l.ID,
			},
		}
	}
	return DisplayList{Rows: rows}
}
