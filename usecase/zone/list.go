package zone

import (
	"context"

	"github.com/r53adm/r53adm/domain/model"
)

// ListInput holds parameters for zone listing.
type ListInput struct{}

// ListOutput holds the result of zone listing.
type ListOutput struct {
	Zones []*model.Zone `json:"zones"`
}

// List returns all hosted zones in provider order.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	zones, err := u.Port.ZoneList(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Zones: zones}, nil
}
