package model

import "strings"

// Zone represents a hosted zone owned by the DNS provider. Zones are never
// created or mutated by this tool; they are read and referenced by ID.
type Zone struct {
	ID          string `json:"id"`          // Full provider identifier, e.g. "/hostedzone/Z12345".
	Name        string `json:"name"`        // Zone apex FQDN with trailing dot.
	RecordCount int64  `json:"recordCount"` // Number of record sets in the zone.
}

// ShortID strips the path-like namespace prefix from the provider identifier
// for display, e.g. "/hostedzone/Z12345" -> "Z12345".
func (z *Zone) ShortID() string {
	if i := strings.LastIndex(z.ID, "/"); i >= 0 {
		return z.ID[i+1:]
	}
	return z.ID
}
