package entity

import "github.com/google/uuid"

// Customer is the profile of a Customer-role user. UserID is nil for
// customers entered directly in the database.
type Customer struct {
	BaseNoDelete
	UserID     *uuid.UUID `db:"user_id"`
	Name       string     `db:"name"`
	Phone      string     `db:"phone"`
	Email      string     `db:"email"`
	ProfilePic *string    `db:"profile_pic"`
}
