// Package model defines the database entities.
// This file defines the announcement model.
package model

import "time"

// Announcement priorities.
const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Announcement is one notice posted to the whole club.
// Maps to the announcements table. No relationships.
type Announcement struct {
	ID uint `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	Title   string `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Message string `gorm:"column:message;type:text;not null" json:"message"`

	// AnnouncementDate is the posting date, stamped server-side on create.
	AnnouncementDate time.Time `gorm:"column:announcement_date;type:date;not null" json:"announcementDate"`

	// Priority is normal or high.
	Priority string `gorm:"column:priority;type:varchar(20);default:normal" json:"priority"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName pins the table name.
func (Announcement) TableName() string {
	return "announcements"
}
