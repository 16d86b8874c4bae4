package record

import (
	"context"
	"fmt"

	"github.com/r53adm/r53adm/domain/model"
	"github.com/r53adm/r53adm/internal/dnsname"
	"github.com/r53adm/r53adm/usecase/zone"
)

// ListInput holds parameters for record listing.
type ListInput struct {
	Domain string `json:"domain"`
}

// ListOutput holds the zone and all of its record sets.
type ListOutput struct {
	Zone    *model.Zone             `json:"zone"`
	Records []*model.ResourceRecord `json:"records"`
}

// List returns all record sets of the zone owning the given domain, in
// provider order.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	parts, err := dnsname.Split(in.Domain)
	if err != nil {
		return nil, err
	}
	zout, err := u.Zones.Resolve(ctx, &zone.ResolveInput{Domain: parts.Registrable()})
	if err != nil {
		return nil, err
	}
	records, err := u.Port.RecordList(ctx, zout.Zone.ID)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Zone: zout.Zone, Records: records}, nil
}
