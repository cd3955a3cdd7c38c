package item

import (
	"catalog/domain"
	"catalog/pkg/httperror"
	"context"
	"fmt"
)

type GetActiveItemsHandler struct {
	repository Repository
}

func NewGetActiveItemsHandler(repository Repository) *GetActiveItemsHandler {
	return &GetActiveItemsHandler{
		repository: repository,
	}
}

// GetActiveItemsRequest makes the caller pick how rows without an active flag
// are treated, optionally narrowed to names containing Name.
type GetActiveItemsRequest struct {
	Policy string `query:"policy" validate:"required,oneof=strict legacy"`
	Name   string `query:"name"`
}

func (h GetActiveItemsHandler) Handle(ctx context.Context, req *GetActiveItemsRequest) ([]ItemDTO, error) {
	policy, err := domain.ParseActivePolicy(req.Policy)
	if err != nil {
		return nil, httperror.ValidationFailed(map[string]string{"policy": err.Error()})
	}

	var items []domain.Item
	switch {
	case req.Name != "" && policy == domain.ActiveStrict:
		items, err = h.repository.FindByNameContainsAndActive(ctx, req.Name)
	case req.Name != "":
		// Storage has no legacy variant of the name query.
		items, err = h.repository.FindByNameContains(ctx, req.Name)
		items = filterByPolicy(items, policy)
	case policy == domain.ActiveStrict:
		items, err = h.repository.FindActive(ctx)
	default:
		items, err = h.repository.FindActiveOrLegacy(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list active items: %w", err)
	}

	return ToWireList(items), nil
}

func filterByPolicy(items []domain.Item, policy domain.ActivePolicy) []domain.Item {
	kept := items[:0]
	for _, item := range items {
		if policy.Includes(item.Activity()) {
			kept = append(kept, item)
		}
	}
	return kept
}
