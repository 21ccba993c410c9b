package rbac

import "sort"

// Selection is the pending permission set edited in the assignment dialog.
// It always starts from the persisted set of a role and is mutated purely in
// memory; nothing reaches the store until the selection is committed.
type Selection struct {
	roleID string
	ids    map[string]struct{}
}

// NewSelection seeds a selection with the permission IDs currently assigned
// to the role.
func NewSelection(roleID string, seed []string) *Selection {
	ids := make(map[string]struct{}, len(seed))
	for _, id := range seed {
		ids[id] = struct{}{}
	}
	return &Selection{roleID: roleID, ids: ids}
}

func (s *Selection) RoleID() string {
	return s.roleID
}

// Toggle adds or removes a permission from the pending set.
func (s *Selection) Toggle(permissionID string, included bool) {
	if included {
		s.ids[permissionID] = struct{}{}
		return
	}
	delete(s.ids, permissionID)
}

func (s *Selection) Has(permissionID string) bool {
	_, ok := s.ids[permissionID]
	return ok
}

func (s *Selection) Count() int {
	return len(s.ids)
}

func (s *Selection) IsEmpty() bool {
	return len(s.ids) == 0
}

// IDs returns the pending set in deterministic order.
func (s *Selection) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
