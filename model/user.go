package model

import "time"

type User struct {
	UserID       string    `firestore:"userid,omitempty"`
	Name         string    `firestore:"name,omitempty"`
	Email        string    `firestore:"email,omitempty"`
	Password     string    `firestore:"password,omitempty"`
	Role         Role      `firestore:"role,omitempty"`   // "admin", "manager" or "employee"
	Active       string    `firestore:"active,omitempty"` // "0" inactive, "1" active, "2" banned
	RefreshToken string    `firestore:"refreshtoken,omitempty"`
	CreatedAt    time.Time `firestore:"createdat,omitempty"`
}
