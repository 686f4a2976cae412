package domain

import "time"

type User struct {
	ID        int64     `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CompanyID int64     `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserUpdate only reaches the name fields; email and company are immutable.
type UserUpdate struct {
	FirstName *string
	LastName  *string
}

func (u UserUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil
}
