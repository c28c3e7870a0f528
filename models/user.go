package models

// UserAddress is one entry in the user's address book. At most one
// address carries IsDefault == true; SetDefaultAddress enforces this.
type UserAddress struct {
	ID        string `json:"id"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	IsDefault bool   `json:"is_default"`
}

type User struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	Addresses        []UserAddress `json:"addresses"`
	DefaultAddressID string        `json:"default_address_id,omitempty"`
}

// DefaultAddress returns the user's default address, or nil if none is set.
func (u *User) DefaultAddress() *UserAddress {
	if u == nil || u.DefaultAddressID == "" {
		return nil
	}
	for i := range u.Addresses {
		if u.Addresses[i].ID == u.DefaultAddressID {
			return &u.Addresses[i]
		}
	}
	return nil
}

// ProfilePatch is a partial profile update. Nil fields are left untouched.
type ProfilePatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}
