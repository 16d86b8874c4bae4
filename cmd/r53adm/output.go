package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/r53adm/r53adm/domain/model"
)

// printZones writes one "<short-id>\t<name>" line per zone.
func printZones(w io.Writer, zones []*model.Zone) {
	for _, z := range zones {
		fmt.Fprintf(w, "%s\t%s\n", z.ShortID(), z.Name)
	}
}

// printRecords writes one line per record value. Alias records print the
// alias target in place of TTL and value; a record with neither values nor
// an alias target prints "?".
func printRecords(w io.Writer, records []*model.ResourceRecord) {
	for _, r := range records {
		switch {
		case len(r.Values) > 0:
			for _, v := range r.Values {
				fmt.Fprintf(w, "%s %d %s %s\n", r.Name, r.TTL, r.Type, v)
			}
		case r.AliasTarget != "":
			fmt.Fprintf(w, "%s - %s %s\n", r.Name, r.Type, r.AliasTarget)
		default:
			fmt.Fprintf(w, "%s - %s ?\n", r.Name, r.Type)
		}
	}
}

// printReceipt writes the SUCCESS marker followed by the provider's change
// receipt, unreinterpreted.
func printReceipt(w io.Writer, receipt *model.ChangeReceipt) error {
	fmt.Fprintln(w, "SUCCESS")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(receipt)
}

// printJSONLines writes one JSON object per line, the verbose listing form.
func printJSONLines[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return err
		}
	}
	return nil
}
