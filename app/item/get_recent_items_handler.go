package item

import (
	"catalog/pkg/httperror"
	"context"
	"fmt"
)

type GetRecentItemsHandler struct {
	repository   Repository
	defaultLimit int
	maxLimit     int
}

func NewGetRecentItemsHandler(repository Repository, defaultLimit, maxLimit int) *GetRecentItemsHandler {
	return &GetRecentItemsHandler{
		repository:   repository,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

type GetRecentItemsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1"`
}

// Handle returns the newest items first, at most maxLimit of them.
func (h GetRecentItemsHandler) Handle(ctx context.Context, req *GetRecentItemsRequest) ([]ItemDTO, error) {
	limit := req.Limit
	if limit == 0 {
		limit = h.defaultLimit
	}
	if limit > h.maxLimit {
		return nil, httperror.ValidationFailed(map[string]string{
			"limit": fmt.Sprintf("must be less than or equal to %d", h.maxLimit),
		})
	}

	items, err := h.repository.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent items: %w", err)
	}

	return ToWireList(items), nil
}
