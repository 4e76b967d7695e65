package account

import (
	"fmt"
	"strings"
	"time"
)

// carrierPrefixes is the allowlist of valid mobile prefixes. Numbers
// are exactly 10 digits and must start with one of these.
var carrierPrefixes = []string{
	"984", "985", "986",
	"974", "975", "976",
	"980", "981", "982",
	"970", "961", "962", "988",
}

type Account struct {
	id          uint
	username    string
	email       string
	phoneNumber string
	address     string
	roleID      *uint
	isSuperuser bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewAccount(username, email, phoneNumber string, roleID *uint) (*Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 50 {
		return nil, fmt.Errorf("username exceeds maximum length of 50 characters")
	}
	if err := ValidatePhoneNumber(phoneNumber); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Account{
		username:    username,
		email:       normalizeEmail(email),
		phoneNumber: phoneNumber,
		roleID:      roleID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructAccount(
	id uint,
	username, email, phoneNumber, address string,
	roleID *uint,
	isSuperuser bool,
	createdAt, updatedAt time.Time,
) (*Account, error) {
	if id == 0 {
		return nil, fmt.Errorf("account ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	return &Account{
		id:          id,
		username:    username,
		email:       normalizeEmail(email),
		phoneNumber: phoneNumber,
		address:     address,
		roleID:      roleID,
		isSuperuser: isSuperuser,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ValidatePhoneNumber enforces the 10-digit format and the carrier
// prefix allowlist.
func ValidatePhoneNumber(phoneNumber string) error {
	if phoneNumber == "" {
		return fmt.Errorf("phone number is required")
	}
	if len(phoneNumber) != 10 {
		return fmt.Errorf("phone number must be exactly 10 digits")
	}
	for _, r := range phoneNumber {
		if r < '0' || r > '9' {
			return fmt.Errorf("phone number must contain digits only")
		}
	}
	for _, prefix := range carrierPrefixes {
		if strings.HasPrefix(phoneNumber, prefix) {
			return nil
		}
	}
	return fmt.Errorf("phone number prefix %s is not a recognized carrier prefix", phoneNumber[:3])
}

// normalizeEmail collapses the empty string to absent so the optional
// unique constraint never trips on "".
func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func (a *Account) ID() uint {
	return a.id
}

func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("account ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("account ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Account) Username() string {
	return a.username
}

func (a *Account) Email() string {
	return a.email
}

func (a *Account) HasEmail() bool {
	return a.email != ""
}

func (a *Account) PhoneNumber() string {
	return a.phoneNumber
}

func (a *Account) Address() string {
	return a.address
}

func (a *Account) RoleID() *uint {
	return a.roleID
}

func (a *Account) IsSuperuser() bool {
	return a.isSuperuser
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Account) SetAddress(address string) {
	a.address = address
	a.updatedAt = time.Now()
}

func (a *Account) AssignRole(roleID uint) error {
	if roleID == 0 {
		return fmt.Errorf("role ID cannot be zero")
	}
	a.roleID = &roleID
	a.updatedAt = time.Now()
	return nil
}

func (a *Account) ClearRole() {
	a.roleID = nil
	a.updatedAt = time.Now()
}

func (a *Account) PromoteToSuperuser() {
	a.isSuperuser = true
	a.updatedAt = time.Now()
}

func (a *Account) ChangeEmail(email string) {
	a.email = normalizeEmail(email)
	a.updatedAt = time.Now()
}

func (a *Account) ChangePhoneNumber(phoneNumber string) error {
	if err := ValidatePhoneNumber(phoneNumber); err != nil {
		return err
	}
	a.phoneNumber = phoneNumber
	a.updatedAt = time.Now()
	return nil
}

// Principal is the authenticated identity handed in by the external
// authentication layer. Token mechanics are not this core's concern.
type Principal struct {
	AccountID   uint
	RoleID      *uint
	IsSuperuser bool
}

func (a *Account) Principal() Principal {
	return Principal{
		AccountID:   a.id,
		RoleID:      a.roleID,
		IsSuperuser: a.isSuperuser,
	}
}
