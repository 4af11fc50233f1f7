package domain

import "time" // Timestamps managed by GORM

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                       // Primary key
	Email     string    `gorm:"size:191;uniqueIndex;not null" json:"email"` // Unique email
	Username  string    `gorm:"size:191;not null" json:"username"`          // Display name
	Password  string    `gorm:"size:255;not null" json:"-"`                 // Hashed password, never serialized
	CreatedAt time.Time `json:"createdAt"`                                  // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt"`                                  // Last update timestamp
}
