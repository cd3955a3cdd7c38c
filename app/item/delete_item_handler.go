package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type DeleteItemHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewDeleteItemHandler(repository Repository, eventPublisher events.Publisher) *DeleteItemHandler {
	return &DeleteItemHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type DeleteItemRequest struct {
	ItemID int64 `params:"id"`
}

// DeleteItemResponse is always nil; a successful delete has no payload.
type DeleteItemResponse struct{}

func (h DeleteItemHandler) Handle(ctx context.Context, req *DeleteItemRequest) (*DeleteItemResponse, error) {
	item, err := h.repository.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, findError("item.destroy.not_found", req.ItemID, err)
	}

	if err := h.repository.Delete(ctx, item); err != nil {
		return nil, fmt.Errorf("delete item %d: %w", req.ItemID, err)
	}

	h.publishEvent(ctx, item)

	return nil, nil
}

func (h DeleteItemHandler) publishEvent(ctx context.Context, item domain.Item) {
	if h.eventPublisher == nil {
		return
	}

	headers := events.NewHeaders(serviceName)
	event := events.NewEvent(
		events.ItemDeletedEvent,
		events.EventVersionV1,
		events.ItemDeletedPayload{
			ID:        item.ID,
			DeletedAt: time.Now().UTC(),
		},
		headers,
	)

	if err := h.eventPublisher.Publish(ctx, events.ItemExchange, event, headers); err != nil {
		zap.L().Error("Failed to publish item.deleted event",
			zap.Int64("itemId", item.ID),
			zap.Error(err),
		)
	}
}
