package models

// PostedDateLayout is the wire format for JobListing.PostedDate.
const PostedDateLayout = "2006-01-02"

type JobListing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	PostedDate  string `json:"postedDate"`
}

// Collection is the full ordered set of job listings, persisted as one unit.
// Creates append, updates replace in place.
type Collection []JobListing

// IndexOf returns the position of the listing with the given id, or -1.
// Ids are unique, so the first match is the only one.
func (c Collection) IndexOf(id string) int {
	for i, l := range c {
		if l.ID == id {
			return i
		}
	}
	return -1
}
