package models

import "time"

// AdminUserID, penerima sentinel untuk notifikasi admin.
const AdminUserID = "admin"

// Notification, notifikasi in-app untuk satu penerima.
type Notification struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userId" bson:"userId"`
	Type      string    `json:"type" bson:"type"`
	Title     string    `json:"title" bson:"title"`
	Message   string    `json:"message" bson:"message"`
	Read      bool      `json:"read" bson:"read"`
	Link      string    `json:"link" bson:"link"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
