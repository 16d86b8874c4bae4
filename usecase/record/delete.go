package record

import (
	"context"
	"fmt"

	"github.com/r53adm/r53adm/domain/model"
	"github.com/r53adm/r53adm/internal/dnsname"
	"github.com/r53adm/r53adm/internal/logging"
	"github.com/r53adm/r53adm/usecase/zone"
)

// DeleteInput holds parameters for record deletion.
type DeleteInput struct {
	FQDN string `json:"fqdn"`
}

// DeleteOutput holds the deleted records and the provider's receipt.
type DeleteOutput struct {
	Records []*model.ResourceRecord `json:"records"`
	Receipt *model.ChangeReceipt    `json:"receipt"`
}

// Delete removes every record whose name exactly equals the normalized FQDN,
// in one batch the provider commits atomically. Zero matches fail before any
// mutation call is attempted.
func (u *UseCase) Delete(ctx context.Context, in *DeleteInput) (*DeleteOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	log := logging.FromContext(ctx)

	parts, err := dnsname.Split(in.FQDN)
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

	// Matching is on the full normalized FQDN, not the registrable domain.
	name := dnsname.Normalize(in.FQDN)
	var matched []*model.ResourceRecord
	for _, r := range records {
		if r.Name == name {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrNoMatchingRecords, name)
	}

	changes := make([]model.PendingChange, 0, len(matched))
	for _, r := range matched {
		changes = append(changes, model.PendingChange{Action: model.ChangeActionDelete, Record: *r})
	}
	log.Info(ctx, "deleting records", "zone", zout.Zone.ShortID(), "name", name, "count", len(changes))

	receipt, err := u.Port.ChangeApply(ctx, zout.Zone.ID, changes)
	if err != nil {
		return nil, err
	}
	return &DeleteOutput{Records: matched, Receipt: receipt}, nil
}
