package zone

import (
	"context"
	"fmt"

	"github.com/r53adm/r53adm/domain/model"
)

// ResolveInput holds parameters for zone resolution.
type ResolveInput struct {
	Domain string `json:"domain"` // Registrable domain with trailing dot.
}

// ResolveOutput holds the resolved zone.
type ResolveOutput struct {
	Zone *model.Zone `json:"zone"`
}

// Resolve finds the hosted zone whose name exactly equals the registrable
// domain. No fuzzy or suffix matching; the first match wins so duplicate
// names resolve deterministically.
func (u *UseCase) Resolve(ctx context.Context, in *ResolveInput) (*ResolveOutput, error) {
	if in == nil || in.Domain == "" {
		return nil, fmt.Errorf("domain is required")
	}
	zones, err := u.Port.ZoneList(ctx)
	if err != nil {
		return nil, err
	}
	for _, z := range zones {
		if z.Name == in.Domain {
			return &ResolveOutput{Zone: z}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", model.ErrZoneNotFound, in.Domain)
}
