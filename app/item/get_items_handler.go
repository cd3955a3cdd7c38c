package item

import (
	"catalog/domain"
	"context"
	"fmt"
)

type GetItemsHandler struct {
	repository Repository
}

func NewGetItemsHandler(repository Repository) *GetItemsHandler {
	return &GetItemsHandler{
		repository: repository,
	}
}

// GetItemsRequest optionally narrows the listing to names containing Name.
type GetItemsRequest struct {
	Name string `query:"name"`
}

func (h GetItemsHandler) Handle(ctx context.Context, req *GetItemsRequest) ([]ItemDTO, error) {
	var (
		items []domain.Item
		err   error
	)
	if req.Name != "" {
		items, err = h.repository.FindByNameContains(ctx, req.Name)
	} else {
		items, err = h.repository.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return ToWireList(items), nil
}
