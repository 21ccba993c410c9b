package rbac

import (
	"fmt"
	"time"
)

type Role struct {
	id          string
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRole(name, description string) (*Role, error) {
	if name == "" {
		return nil, fmt.Errorf("role name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("role name too long (max 100 characters)")
	}

	now := time.Now()
	return &Role{
		name:        name,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRole(id, name, description string, createdAt, updatedAt time.Time) (*Role, error) {
	if id == "" {
		return nil, fmt.Errorf("role ID cannot be empty")
	}

	return &Role{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (r *Role) ID() string {
	return r.id
}

func (r *Role) SetID(id string) error {
	if r.id != "" {
		return fmt.Errorf("role ID is already set")
	}
	if id == "" {
		return fmt.Errorf("role ID cannot be empty")
	}
	r.id = id
	return nil
}

func (r *Role) Name() string {
	return r.name
}

func (r *Role) Description() string {
	return r.description
}

func (r *Role) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Role) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Role) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("role name cannot be empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("role name too long (max 100 characters)")
	}
	r.name = name
	r.updatedAt = time.Now()
	return nil
}

func (r *Role) UpdateDescription(description string) {
	r.description = description
	r.updatedAt = time.Now()
}
