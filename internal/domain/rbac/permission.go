package rbac

import (
	"fmt"
	"regexp"
	"time"
)

// permission names follow the action:resource convention, e.g. read:users.
var permissionNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*:[a-z][a-z0-9_]*$`)

type Permission struct {
	id          string
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPermission(name, description string) (*Permission, error) {
	if name == "" {
		return nil, fmt.Errorf("permission name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("permission name too long (max 100 characters)")
	}
	if !permissionNameRegex.MatchString(name) {
		return nil, fmt.Errorf("permission name must follow the action:resource convention")
	}

	now := time.Now()
	return &Permission{
		name:        name,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructPermission(id, name, description string, createdAt, updatedAt time.Time) (*Permission, error) {
	if id == "" {
		return nil, fmt.Errorf("permission ID cannot be empty")
	}

	return &Permission{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Permission) ID() string {
	return p.id
}

func (p *Permission) SetID(id string) error {
	if p.id != "" {
		return fmt.Errorf("permission ID is already set")
	}
	if id == "" {
		return fmt.Errorf("permission ID cannot be empty")
	}
	p.id = id
	return nil
}

func (p *Permission) Name() string {
	return p.name
}

func (p *Permission) Description() string {
	return p.description
}

func (p *Permission) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Permission) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Permission) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("permission name cannot be empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("permission name too long (max 100 characters)")
	}
	if !permissionNameRegex.MatchString(name) {
		return fmt.Errorf("permission name must follow the action:resource convention")
	}
	p.name = name
	p.updatedAt = time.Now()
	return nil
}

func (p *Permission) UpdateDescription(description string) {
	p.description = description
	p.updatedAt = time.Now()
}

// Action returns the action part of the name, e.g. "read" for read:users.
func (p *Permission) Action() string {
	for i := 0; i < len(p.name); i++ {
		if p.name[i] == ':' {
			return p.name[:i]
		}
	}
	return p.name
}

// Resource returns the resource part of the name, e.g. "users" for read:users.
func (p *Permission) Resource() string {
	for i := 0; i < len(p.name); i++ {
		if p.name[i] == ':' {
			return p.name[i+1:]
		}
	}
	return ""
}
