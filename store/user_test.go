package store

import (
	"testing"

	"quickmart-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedInUser() models.User {
	return models.User{
		ID:    "u-1",
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: "+919876543210",
		Addresses: []models.UserAddress{
			{ID: "addr-1", Street: "12 MG Road", City: "Bengaluru", State: "KA", ZipCode: "560001", IsDefault: true},
			{ID: "addr-2", Street: "4 Park Street", City: "Kolkata", State: "WB", ZipCode: "700016"},
			{ID: "addr-3", Street: "7 Marine Drive", City: "Mumbai", State: "MH", ZipCode: "400020"},
		},
		DefaultAddressID: "addr-1",
	}
}

func TestLoginLogout(t *testing.T) {
	s := NewUserStore()
	s.Dispatch(SetLoading{Loading: true})
	s.Dispatch(Login{User: loggedInUser()})

	state := s.State()
	require.NotNil(t, state.User)
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.Loading, "login must clear the loading flag")

	s.Dispatch(Logout{})
	state = s.State()
	assert.Nil(t, state.User)
	assert.False(t, state.IsAuthenticated)
}

func TestUpdateProfileShallowMerge(t *testing.T) {
	s := NewUserStore()
	s.Dispatch(Login{User: loggedInUser()})

	name := "Asha K"
	s.Dispatch(UpdateProfile{Patch: models.ProfilePatch{Name: &name}})

	user := s.State().User
	require.NotNil(t, user)
	assert.Equal(t, "Asha K", user.Name)
	assert.Equal(t, "asha@example.com", user.Email, "untouched fields must survive the merge")
	assert.Len(t, user.Addresses, 3)
}

func TestUpdateProfileWithoutUserIsNoop(t *testing.T) {
	s := NewUserStore()
	name := "Nobody"
	s.Dispatch(UpdateProfile{Patch: models.ProfilePatch{Name: &name}})
	assert.Nil(t, s.State().User)
}

func TestSetDefaultAddressExclusivity(t *testing.T) {
	s := NewUserStore()
	s.Dispatch(Login{User: loggedInUser()})
	s.Dispatch(SetDefaultAddress{ID: "addr-2"})

	user := s.State().User
	require.NotNil(t, user)
	assert.Equal(t, "addr-2", user.DefaultAddressID)

	defaults := 0
	for _, addr := range user.Addresses {
		if addr.IsDefault {
			defaults++
			assert.Equal(t, "addr-2", addr.ID)
		}
	}
	assert.Equal(t, 1, defaults, "exactly one address may carry the default flag")
}

func TestAddressCRUD(t *testing.T) {
	s := NewUserStore()
	s.Dispatch(Login{User: models.User{ID: "u-1", Phone: "+911234567890"}})

	s.Dispatch(AddAddress{Address: models.UserAddress{ID: "addr-1", Street: "1 First St"}})
	s.Dispatch(AddAddress{Address: models.UserAddress{ID: "addr-2", Street: "2 Second St"}})
	require.Len(t, s.State().User.Addresses, 2)
	assert.False(t, s.State().User.Addresses[0].IsDefault, "adding must not assign a default")

	s.Dispatch(UpdateAddress{Address: models.UserAddress{ID: "addr-2", Street: "2B Second St"}})
	assert.Equal(t, "2B Second St", s.State().User.Addresses[1].Street)

	// Unknown id: nothing changes
	before := s.State()
	s.Dispatch(UpdateAddress{Address: models.UserAddress{ID: "addr-404", Street: "Nowhere"}})
	assert.Equal(t, before, s.State())

	s.Dispatch(RemoveAddress{ID: "addr-1"})
	require.Len(t, s.State().User.Addresses, 1)
	assert.Equal(t, "addr-2", s.State().User.Addresses[0].ID)
}

func TestAddressOpsWithoutUserAreNoops(t *testing.T) {
	s := NewUserStore()
	s.Dispatch(AddAddress{Address: models.UserAddress{ID: "addr-1"}})
	s.Dispatch(SetDefaultAddress{ID: "addr-1"})
	s.Dispatch(RemoveAddress{ID: "addr-1"})
	assert.Nil(t, s.State().User)
}
