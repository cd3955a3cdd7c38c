package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type UpdateItemHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

type UpdateItemRequest struct {
	ItemID      int64   `params:"id" json:"-" query:"-"`
	Name        string  `json:"name" query:"-" validate:"notblank,max=255"`
	Description *string `json:"description" query:"-" validate:"omitempty,max=1000"`
}

func (r UpdateItemRequest) Wire() ItemDTO {
	return ItemDTO{Name: r.Name, Description: r.Description}
}

func NewUpdateItemHandler(repository Repository, eventPublisher events.Publisher) *UpdateItemHandler {
	return &UpdateItemHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

func (h UpdateItemHandler) Handle(ctx context.Context, req *UpdateItemRequest) (*ItemDTO, error) {
	existing, err := h.repository.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, findError("item.update.not_found", req.ItemID, err)
	}

	incoming := ToStorage(req.Wire())
	item, err := h.repository.Save(ctx, existing.WithDetails(incoming.Name, incoming.Description))
	if err != nil {
		// Deleted between the lookup and the write.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("item.update.not_found", req.ItemID)
		}
		return nil, fmt.Errorf("update item %d: %w", req.ItemID, err)
	}

	h.publishEvent(ctx, item)

	dto := ToWire(item)
	return &dto, nil
}

func (h UpdateItemHandler) publishEvent(ctx context.Context, item domain.Item) {
	if h.eventPublisher == nil {
		return
	}

	headers := events.NewHeaders(serviceName)
	event := events.NewEvent(
		events.ItemUpdatedEvent,
		events.EventVersionV1,
		events.ItemUpdatedPayload{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			UpdatedAt:   item.UpdatedAt,
		},
		headers,
	)

	if err := h.eventPublisher.Publish(ctx, events.ItemExchange, event, headers); err != nil {
		zap.L().Error("Failed to publish item.updated event",
			zap.Int64("itemId", item.ID),
			zap.Error(err),
		)
	}
}
