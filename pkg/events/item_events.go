package events

import "time"

// ItemExchange is the topic exchange item lifecycle events are published to.
const ItemExchange = "catalog.item"

// Event names
const (
	ItemCreatedEvent = "item.created"
	ItemUpdatedEvent = "item.updated"
	ItemDeletedEvent = "item.deleted"
)

// Event versions
const (
	EventVersionV1 = "v1"
)

// ItemCreatedPayload represents the payload for item.created event
type ItemCreatedPayload struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    *bool     `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ItemUpdatedPayload represents the payload for item.updated event
type ItemUpdatedPayload struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ItemDeletedPayload struct {
	ID        int64     `json:"id"`
	DeletedAt time.Time `json:"deletedAt"`
}
