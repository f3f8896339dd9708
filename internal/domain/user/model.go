package user

// User is a contact reported by the external directory service.
// Directory users with no billing override are billed as Paid.
type User struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// DisplayName returns the best available name for receipts.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	if u.Email != "" {
		return u.Email
	}
	return "Unknown"
}
