package production

import (
	"context"
	"fmt"

	"github.com/autoflexhq/inventory-console/pkg/inventory"
)

// Service fetches the server-computed production plan. The plan is
// rendered exactly as returned: producible quantities and totals are never
// recomputed on this side.
type Service interface {
	Suggest(ctx context.Context) (*inventory.ProductionSuggestion, error)
}

type apiClient interface {
	ProductionSuggestion(ctx context.Context) (*inventory.ProductionSuggestion, error)
}

type service struct {
	client apiClient
}

// NewService constructs the production service over the inventory API
// client.
func NewService(client apiClient) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("inventory client required")
	}
	return &service{client: client}, nil
}

func (s *service) Suggest(ctx context.Context) (*inventory.ProductionSuggestion, error) {
	suggestion, err := s.client.ProductionSuggestion(ctx)
	if err != nil {
		return nil, err
	}
	if suggestion.Items == nil {
		suggestion.Items = []inventory.ProductionItem{}
	}
	return suggestion, nil
}
