package item

import (
	"context"
)

type GetItemHandler struct {
	repository Repository
}

func NewGetItemHandler(repository Repository) *GetItemHandler {
	return &GetItemHandler{
		repository: repository,
	}
}

type GetItemRequest struct {
	ItemID int64 `params:"id"`
}

func (h GetItemHandler) Handle(ctx context.Context, req *GetItemRequest) (*ItemDTO, error) {
	item, err := h.repository.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, findError("item.show.not_found", req.ItemID, err)
	}

	dto := ToWire(item)
	return &dto, nil
}
