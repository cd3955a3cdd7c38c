package item

import (
	"context"
	"fmt"
)

type SearchItemsHandler struct {
	repository Repository
}

func NewSearchItemsHandler(repository Repository) *SearchItemsHandler {
	return &SearchItemsHandler{
		repository: repository,
	}
}

type SearchItemsRequest struct {
	Query string `query:"q" validate:"required"`
}

// Handle matches the term against name and description, ignoring case.
func (h SearchItemsHandler) Handle(ctx context.Context, req *SearchItemsRequest) ([]ItemDTO, error) {
	items, err := h.repository.SearchText(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}

	return ToWireList(items), nil
}
