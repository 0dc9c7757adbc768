package models

import "time"

// Message defines a contact-form submission based on the 'messages' table.
// Created by the public; read and deleted only by admins.
type Message struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone,omitempty" db:"phone"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// MessageDescriptor parameterizes the shared CRUD machinery for messages.
var MessageDescriptor = Descriptor{
	Name:     "message",
	Table:    "messages",
	Columns:  []string{"name", "email", "phone", "message"},
	Required: []string{"name", "email", "message"},
}
