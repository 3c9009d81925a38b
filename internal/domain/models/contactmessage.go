// internal/domain/models/contactmessage.go
package models

import "time"

type ContactMessageInput struct {
	Name    string `bson:"name" json:"name" validate:"required,max=120"`
	Email   string `bson:"email" json:"email" validate:"required,email,max=254"`
	Subject string `bson:"subject" json:"subject" validate:"required,max=200"`
	Message string `bson:"message" json:"message" validate:"required,max=5000"`
}

// ContactMessage is a message submitted through the public contact form.
// Read and CreatedAt are maintained by the server.
type ContactMessage struct {
	ID                  int64 `bson:"_id" json:"id"`
	ContactMessageInput `bson:",inline"`
	Read                bool      `bson:"read" json:"read"`
	CreatedAt           time.Time `bson:"created_at" json:"createdAt"`
}
