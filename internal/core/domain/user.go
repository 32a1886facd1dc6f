package domain

// User models a marketplace account.
type User struct {
	ID           int64  `json:"id" bson:"_id"`
	Email        string `json:"email" bson:"email"`
	Name         string `json:"name" bson:"name"`
	Phone        string `json:"phone" bson:"phone"`
	PasswordHash string `json:"-" bson:"password_hash"`
	CreatedAt    int64  `json:"created_at" bson:"created_at"` // epoch millis
}

// IsProfileComplete reports whether the account may create tasks:
// both name and phone must be filled in.
func (u *User) IsProfileComplete() bool {
	return u.Name != "" && u.Phone != ""
}
