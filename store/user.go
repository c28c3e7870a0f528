package store

import (
	"sync"

	"quickmart-api/models"
)

// UserState holds the authenticated profile. User is nil until Login and
// nil again after Logout; Loading brackets asynchronous auth work owned by
// the caller.
type UserState struct {
	User            *models.User `json:"user"`
	IsAuthenticated bool         `json:"is_authenticated"`
	Loading         bool         `json:"loading"`
}

// UserCommand is a tagged state transition for the profile store.
type UserCommand interface{ isUserCommand() }

// Login installs the user and marks the session authenticated.
type Login struct {
	User models.User
}

// Logout clears the user.
type Logout struct{}

// UpdateProfile shallow-merges the non-nil patch fields into the user.
// No-op when nobody is logged in.
type UpdateProfile struct {
	Patch models.ProfilePatch
}

// AddAddress appends to the address book. The new address is never made
// default implicitly.
type AddAddress struct {
	Address models.UserAddress
}

// UpdateAddress replaces the address whose id matches. Unknown ids are
// ignored.
type UpdateAddress struct {
	Address models.UserAddress
}

// RemoveAddress drops the address matching ID.
type RemoveAddress struct {
	ID string
}

// SetDefaultAddress points DefaultAddressID at ID and rewrites every
// IsDefault flag so that only the matching address carries true.
type SetDefaultAddress struct {
	ID string
}

// SetLoading toggles the loading flag.
type SetLoading struct {
	Loading bool
}

func (Login) isUserCommand()             {}
func (Logout) isUserCommand()            {}
func (UpdateProfile) isUserCommand()     {}
func (AddAddress) isUserCommand()        {}
func (UpdateAddress) isUserCommand()     {}
func (RemoveAddress) isUserCommand()     {}
func (SetDefaultAddress) isUserCommand() {}
func (SetLoading) isUserCommand()        {}

func reduceUser(state UserState, cmd UserCommand) UserState {
	switch c := cmd.(type) {
	case Login:
		user := copyUser(c.User)
		state.User = &user
		state.IsAuthenticated = true
		state.Loading = false
	case Logout:
		state.User = nil
		state.IsAuthenticated = false
		state.Loading = false
	case UpdateProfile:
		if state.User == nil {
			return state
		}
		user := copyUser(*state.User)
		if c.Patch.Name != nil {
			user.Name = *c.Patch.Name
		}
		if c.Patch.Email != nil {
			user.Email = *c.Patch.Email
		}
		if c.Patch.Phone != nil {
			user.Phone = *c.Patch.Phone
		}
		state.User = &user
	case AddAddress:
		if state.User == nil {
			return state
		}
		user := copyUser(*state.User)
		user.Addresses = append(user.Addresses, c.Address)
		state.User = &user
	case UpdateAddress:
		if state.User == nil {
			return state
		}
		user := copyUser(*state.User)
		for i := range user.Addresses {
			if user.Addresses[i].ID == c.Address.ID {
				user.Addresses[i] = c.Address
				break
			}
		}
		state.User = &user
	case RemoveAddress:
		if state.User == nil {
			return state
		}
		user := copyUser(*state.User)
		kept := user.Addresses[:0]
		for _, addr := range user.Addresses {
			if addr.ID != c.ID {
				kept = append(kept, addr)
			}
		}
		user.Addresses = kept
		state.User = &user
	case SetDefaultAddress:
		if state.User == nil {
			return state
		}
		user := copyUser(*state.User)
		user.DefaultAddressID = c.ID
		for i := range user.Addresses {
			user.Addresses[i].IsDefault = user.Addresses[i].ID == c.ID
		}
		state.User = &user
	case SetLoading:
		state.Loading = c.Loading
	}
	return state
}

func copyUser(u models.User) models.User {
	u.Addresses = append([]models.UserAddress(nil), u.Addresses...)
	return u
}

// UserStore serialises profile commands.
type UserStore struct {
	mu    sync.Mutex
	state UserState
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

// Dispatch applies one command to the profile.
func (s *UserStore) Dispatch(cmd UserCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduceUser(s.state, cmd)
}

// State returns a deep snapshot of the profile state.
func (s *UserStore) State() UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.state
	if s.state.User != nil {
		user := copyUser(*s.state.User)
		snapshot.User = &user
	}
	return snapshot
}
