// Package dnsname canonicalizes fully-qualified domain names and splits them
// into their public-suffix-aware parts.
package dnsname

import (
	"fmt"
	"net/netip"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"

	"github.com/r53adm/r53adm/domain/model"
)

// profile maps names for DNS lookup without strict STD3 rules, so label
// conventions like "_dmarc" pass through.
var profile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.Transitional(false),
)

// Parts holds the labels of an FQDN split around its registrable domain.
type Parts struct {
	Subdomain string // Labels left of the registrable domain, may be empty.
	Domain    string // Registrable domain label, e.g. "example".
	TLD       string // Effective TLD, e.g. "com" or "co.uk".
}

// Registrable returns the zone-matching key "domain.tld." for the parts.
// This is the key zones are looked up by, distinct from the full FQDN used
// as a record name.
func (p Parts) Registrable() string {
	return p.Domain + "." + p.TLD + "."
}

// Normalize appends the trailing dot when absent. Idempotent.
func Normalize(fqdn string) string {
	if strings.HasSuffix(fqdn, ".") {
		return fqdn
	}
	return fqdn + "."
}

// Split separates an FQDN into subdomain labels, registrable domain label,
// and effective TLD. IP literals and syntactically invalid names are
// rejected: neither is a valid zone name.
func Split(fqdn string) (Parts, error) {
	host := strings.TrimSuffix(fqdn, ".")
	if host == "" {
		return Parts{}, fmt.Errorf("%w: empty name", model.ErrInvalidDomain)
	}
	if _, err := netip.ParseAddr(host); err == nil {
		return Parts{}, fmt.Errorf("%w: %q is an IP literal", model.ErrInvalidDomain, fqdn)
	}
	ascii, err := profile.ToASCII(host)
	if err != nil {
		return Parts{}, fmt.Errorf("%w: %q: %v", model.ErrInvalidDomain, fqdn, err)
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(ascii)
	if err != nil {
		return Parts{}, fmt.Errorf("%w: %q: %v", model.ErrInvalidDomain, fqdn, err)
	}
	tld, _ := publicsuffix.PublicSuffix(ascii)
	sub := strings.TrimSuffix(strings.TrimSuffix(ascii, registrable), ".")
	return Parts{
		Subdomain: sub,
		Domain:    strings.TrimSuffix(registrable, "."+tld),
		TLD:       tld,
	}, nil
}
