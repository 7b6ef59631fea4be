package model

import "time"

// Message is one direct message between two users. Messages are never
// edited or deleted; the only mutation is the read-state transition
// performed by the recipient.
type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	SenderID    uint      `gorm:"index;not null" json:"sender_id"`
	RecipientID uint      `gorm:"index;not null" json:"recipient_id"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	IsRead      bool      `gorm:"default:false;index" json:"is_read"`
}

// TableName sets the table name.
func (Message) TableName() string {
	return "messages"
}
