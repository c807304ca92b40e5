package domain

import "time"

// Entity carries the identity and audit timestamps shared by every domain
// object. UpdatedAt stays nil until the entity is explicitly touched.
type Entity struct {
	ID        ID
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func newEntity() Entity {
	return Entity{CreatedAt: time.Now().UTC()}
}

func (e *Entity) SetID(id ID) error {
	if !ValidateID(string(id)) {
		return NewArgumentError("id must not be default")
	}
	e.ID = id
	return nil
}

func (e *Entity) SetUpdatedAt() {
	now := time.Now().UTC()
	e.UpdatedAt = &now
}
