package model

import "context"

// DNSPort abstracts hosted DNS provider operations. Implementations live
// under adapters/drivers/dns/<name> and hide the provider's pagination
// protocol behind fully materialized listings.
type DNSPort interface {
	// ZoneList returns all hosted zones in provider order, following
	// pagination until the provider reports no further pages.
	ZoneList(ctx context.Context) ([]*Zone, error)

	// RecordList returns all record sets of a zone in provider order,
	// following pagination until the provider reports no further pages.
	RecordList(ctx context.Context, zoneID string) ([]*ResourceRecord, error)

	// ChangeApply submits the given changes as one batch the provider
	// commits atomically. A rejected batch removes or creates nothing.
	ChangeApply(ctx context.Context, zoneID string, changes []PendingChange) (*ChangeReceipt, error)
}
