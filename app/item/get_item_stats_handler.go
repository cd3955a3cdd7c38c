package item

import (
	"context"
	"fmt"
)

type GetItemStatsHandler struct {
	repository Repository
}

func NewGetItemStatsHandler(repository Repository) *GetItemStatsHandler {
	return &GetItemStatsHandler{
		repository: repository,
	}
}

type GetItemStatsRequest struct{}

type GetItemStatsResponse struct {
	ActiveCount int64 `json:"activeCount"`
}

func (h GetItemStatsHandler) Handle(ctx context.Context, _ *GetItemStatsRequest) (*GetItemStatsResponse, error) {
	count, err := h.repository.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active items: %w", err)
	}

	return &GetItemStatsResponse{
		ActiveCount: count,
	}, nil
}
