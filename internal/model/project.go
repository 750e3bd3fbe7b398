package model

import "context"

// Project is a portfolio entry in the showcase.
type Project struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Technologies []string     `json:"technologies"`
	ImageURL     string       `json:"imageUrl,omitempty"`
	Stats        ProjectStats `json:"stats"`
	Link         string       `json:"link,omitempty"`
}

// ProjectStats are engagement counters. Nothing increments them.
type ProjectStats struct {
	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
}

// ProjectStore holds the showcase, newest first.
type ProjectStore interface {
	ListProjects(ctx context.Context) ([]Project, error)
	AddProject(ctx context.Context, p Project) error
}
