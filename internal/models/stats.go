package models

import "time"

// Stats, dokumen tunggal berisi counter agregat untuk halaman depan.
// Counter hanya pernah naik dari sisi order intake.
type Stats struct {
	ID                string    `json:"-" bson:"_id"`
	ClientsSatisfied  int       `json:"clientsSatisfied" bson:"clientsSatisfied"`
	ProjectsCompleted int       `json:"projectsCompleted" bson:"projectsCompleted"`
	AverageRating     float64   `json:"averageRating" bson:"averageRating"`
	ResponseTime      int       `json:"responseTime" bson:"responseTime"`
	ActiveUsers       int       `json:"activeUsers" bson:"activeUsers"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updatedAt"`
}
