package models

import "time"

// Job is an in-memory catalog entry. Entries are generated fresh per
// request with a new identifier each time and are never persisted.
type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Salary          string    `json:"salary"`
	Type            string    `json:"type"`
	Remote          bool      `json:"remote"`
	Skills          []string  `json:"skills"`
	Description     string    `json:"description"`
	MatchPercentage int       `json:"matchPercentage"`
	PostedAt        time.Time `json:"postedAt"`
}

// Course is an in-memory catalog entry, same lifecycle as Job.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Provider    string   `json:"provider"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Price       string   `json:"price"`
	Rating      float64  `json:"rating"`
	Skills      []string `json:"skills"`
	Level       string   `json:"level"`
}
