package record

import (
	"context"
	"fmt"

	"github.com/r53adm/r53adm/domain/model"
	"github.com/r53adm/r53adm/internal/address"
	"github.com/r53adm/r53adm/internal/dnsname"
	"github.com/r53adm/r53adm/internal/logging"
	"github.com/r53adm/r53adm/usecase/zone"
)

// AddInput holds parameters for record creation.
type AddInput struct {
	FQDN    string `json:"fqdn"`
	Address string `json:"address"` // Textual IPv4 or IPv6 address.
	TTL     int64  `json:"ttl"`
}

// AddOutput holds the created record and the provider's receipt.
type AddOutput struct {
	Record  model.ResourceRecord `json:"record"`
	Receipt *model.ChangeReceipt `json:"receipt"`
}

// Add creates a single A or AAAA record named FQDN in the zone owning the
// FQDN's registrable domain. Input validation happens before any provider
// call; a failed step is terminal, nothing is retried.
func (u *UseCase) Add(ctx context.Context, in *AddInput) (*AddOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	log := logging.FromContext(ctx)

	parts, err := dnsname.Split(in.FQDN)
	if err != nil {
		return nil, err
	}
	addr, err := address.Classify(in.Address)
	if err != nil {
		return nil, err
	}

	zout, err := u.Zones.Resolve(ctx, &zone.ResolveInput{Domain: parts.Registrable()})
	if err != nil {
		return nil, err
	}

	rec := model.ResourceRecord{
		ZoneID: zout.Zone.ID,
		Name:   dnsname.Normalize(in.FQDN),
		Type:   addr.RecordType(),
		TTL:    in.TTL,
		Values: []string{addr.String()},
	}
	log.Info(ctx, "creating record", "zone", zout.Zone.ShortID(), "name", rec.Name, "type", rec.Type, "ttl", rec.TTL)

	receipt, err := u.Port.ChangeApply(ctx, zout.Zone.ID, []model.PendingChange{
		{Action: model.ChangeActionCreate, Record: rec},
	})
	if err != nil {
		return nil, err
	}
	return &AddOutput{Record: rec, Receipt: receipt}, nil
}
