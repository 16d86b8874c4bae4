package model

import "time"

// RecordType represents provider-agnostic DNS record types.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeMX    RecordType = "MX"
	RecordTypeNS    RecordType = "NS"
	RecordTypeSOA   RecordType = "SOA"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeCAA   RecordType = "CAA"
)

// ResourceRecord describes a single record set within a hosted zone. A
// well-formed record carries either Values or AliasTarget, never neither.
// Types other than A/AAAA are passed through read-only.
type ResourceRecord struct {
	ZoneID      string     `json:"zoneId"`
	Name        string     `json:"name"` // Absolute FQDN with trailing dot.
	Type        RecordType `json:"type"`
	TTL         int64      `json:"ttl"`
	Values      []string   `json:"values,omitempty"`      // Presentation-format values.
	AliasTarget string     `json:"aliasTarget,omitempty"` // Alias endpoint DNS name when the record aliases another resource.

	// Alias bookkeeping carried so deletions can echo the record back to the
	// provider exactly as stored.
	AliasZoneID           string `json:"aliasZoneId,omitempty"`
	AliasEvalTargetHealth bool   `json:"aliasEvalTargetHealth,omitempty"`
}

// ChangeAction is the kind of mutation in a change batch.
type ChangeAction string

const (
	ChangeActionCreate ChangeAction = "CREATE"
	ChangeActionDelete ChangeAction = "DELETE"
)

// PendingChange pairs an action with a fully specified record. Changes are
// submitted together as one batch the provider commits atomically.
type PendingChange struct {
	Action ChangeAction   `json:"action"`
	Record ResourceRecord `json:"record"`
}

// ChangeReceipt is the provider's response to a submitted change batch.
type ChangeReceipt struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
	Comment     string    `json:"comment,omitempty"`
}
