package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		name      string
		phone     string
		expectErr bool
	}{
		{name: "valid 984 prefix", phone: "9841234567"},
		{name: "valid 988 prefix", phone: "9881234567"},
		{name: "valid 961 prefix", phone: "9611234567"},
		{name: "unlisted 983 prefix", phone: "9831234567", expectErr: true},
		{name: "too short", phone: "984123456", expectErr: true},
		{name: "too long", phone: "98412345678", expectErr: true},
		{name: "non-digit characters", phone: "98412345a7", expectErr: true},
		{name: "empty", phone: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhoneNumber(tt.phone)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewAccount(t *testing.T) {
	t.Run("valid account", func(t *testing.T) {
		a, err := NewAccount("jdoe", "JDoe@Example.com", "9841234567", nil)
		require.NoError(t, err)
		assert.Equal(t, "jdoe", a.Username())
		assert.Equal(t, "jdoe@example.com", a.Email())
		assert.False(t, a.IsSuperuser())
		assert.Nil(t, a.RoleID())
	})

	t.Run("empty email normalized to absent", func(t *testing.T) {
		a, err := NewAccount("jdoe", "  ", "9841234567", nil)
		require.NoError(t, err)
		assert.False(t, a.HasEmail())
	})

	t.Run("empty username rejected", func(t *testing.T) {
		_, err := NewAccount("", "", "9841234567", nil)
		require.Error(t, err)
	})

	t.Run("bad phone rejected", func(t *testing.T) {
		_, err := NewAccount("jdoe", "", "9831234567", nil)
		require.Error(t, err)
	})
}

func TestAccount_RoleAssignment(t *testing.T) {
	a, err := NewAccount("jdoe", "", "9841234567", nil)
	require.NoError(t, err)

	require.NoError(t, a.AssignRole(3))
	require.NotNil(t, a.RoleID())
	assert.Equal(t, uint(3), *a.RoleID())

	a.ClearRole()
	assert.Nil(t, a.RoleID())

	assert.Error(t, a.AssignRole(0))
}

func TestAccount_Principal(t *testing.T) {
	a, err := NewAccount("root", "", "9841234567", nil)
	require.NoError(t, err)
	require.NoError(t, a.SetID(1))
	a.PromoteToSuperuser()

	p := a.Principal()
	assert.Equal(t, uint(1), p.AccountID)
	assert.True(t, p.IsSuperuser)
	assert.Nil(t, p.RoleID)
}
