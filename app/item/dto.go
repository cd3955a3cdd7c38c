package item

import (
	"catalog/domain"
	"time"
)

// ItemDTO is the JSON shape exchanged with clients. It is read from the body
// only; query keys never bind to it.
type ItemDTO struct {
	ID          int64     `json:"id" query:"-"`
	Name        string    `json:"name" query:"-" validate:"notblank,max=255"`
	Description *string   `json:"description" query:"-" validate:"omitempty,max=1000"`
	CreatedAt   time.Time `json:"createdAt" query:"-"`
	UpdatedAt   time.Time `json:"updatedAt" query:"-"`
	IsActive    *bool     `json:"isActive" query:"-"`
}

func ToWire(item domain.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
		IsActive:    item.IsActive,
	}
}

func ToWireList(items []domain.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ToWire(item))
	}
	return dtos
}

// ToStorage builds an unsaved row from client input. Only name and description
// are taken; id and timestamps are assigned by storage and new rows start active.
func ToStorage(dto ItemDTO) domain.Item {
	active := true
	return domain.Item{
		Name:        dto.Name,
		Description: dto.Description,
		IsActive:    &active,
	}
}
