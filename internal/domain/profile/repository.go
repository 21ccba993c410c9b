package profile

import "context"

type Repository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
	// Update only touches the row owned by the profile's user.
	Update(ctx context.Context, profile *Profile) error
}
