package profile

import (
	"fmt"
	"time"
)

// Profile mirrors an external user account. One row per account, created
// automatically the first time the account is seen.
type Profile struct {
	id        string
	userID    string
	email     string
	fullName  string
	metadata  []byte
	createdAt time.Time
	updatedAt time.Time
}

// NewProfile builds a profile from account claims. When the display name is
// absent the email is used instead.
func NewProfile(userID, email, fullName string, metadata []byte) (*Profile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if fullName == "" {
		fullName = email
	}

	now := time.Now()
	return &Profile{
		userID:    userID,
		email:     email,
		fullName:  fullName,
		metadata:  metadata,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProfile(id, userID, email, fullName string, metadata []byte, createdAt, updatedAt time.Time) (*Profile, error) {
	if id == "" {
		return nil, fmt.Errorf("profile ID cannot be empty")
	}

	return &Profile{
		id:        id,
		userID:    userID,
		email:     email,
		fullName:  fullName,
		metadata:  metadata,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Profile) ID() string {
	return p.id
}

func (p *Profile) SetID(id string) error {
	if p.id != "" {
		return fmt.Errorf("profile ID is already set")
	}
	if id == "" {
		return fmt.Errorf("profile ID cannot be empty")
	}
	p.id = id
	return nil
}

func (p *Profile) UserID() string {
	return p.userID
}

func (p *Profile) Email() string {
	return p.email
}

func (p *Profile) FullName() string {
	return p.fullName
}

func (p *Profile) Metadata() []byte {
	return p.metadata
}

func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Profile) UpdateFullName(fullName string) error {
	if fullName == "" {
		return fmt.Errorf("full name cannot be empty")
	}
	p.fullName = fullName
	p.updatedAt = time.Now()
	return nil
}
