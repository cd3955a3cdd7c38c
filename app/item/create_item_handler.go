package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"context"
	"fmt"

	"go.uber.org/zap"
)

type CreateItemHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

// CreateItemRequest is the client's item. Any id, timestamps or active flag
// it carries are ignored.
type CreateItemRequest = ItemDTO

func NewCreateItemHandler(repository Repository, eventPublisher events.Publisher) *CreateItemHandler {
	return &CreateItemHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

func (h CreateItemHandler) Handle(ctx context.Context, req *CreateItemRequest) (*ItemDTO, error) {
	item, err := h.repository.Save(ctx, ToStorage(*req))
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	h.publishEvent(ctx, item)

	dto := ToWire(item)
	return &dto, nil
}

func (h CreateItemHandler) publishEvent(ctx context.Context, item domain.Item) {
	if h.eventPublisher == nil {
		return
	}

	headers := events.NewHeaders(serviceName)
	event := events.NewEvent(
		events.ItemCreatedEvent,
		events.EventVersionV1,
		events.ItemCreatedPayload{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			IsActive:    item.IsActive,
			CreatedAt:   item.CreatedAt,
		},
		headers,
	)

	if err := h.eventPublisher.Publish(ctx, events.ItemExchange, event, headers); err != nil {
		zap.L().Error("Failed to publish item.created event",
			zap.Int64("itemId", item.ID),
			zap.Error(err),
		)
	}
}
