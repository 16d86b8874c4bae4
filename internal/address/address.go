// Package address classifies textual IP addresses into DNS record types.
package address

import (
	"fmt"
	"net/netip"

	"github.com/r53adm/r53adm/domain/model"
)

// Address is a parsed IP address. IPv4-mapped IPv6 forms are unmapped so they
// classify as IPv4.
type Address struct {
	IP netip.Addr
}

// Classify parses a textual IPv4 or IPv6 address. Standard and compressed
// IPv6 forms are accepted.
func Classify(text string) (Address, error) {
	ip, err := netip.ParseAddr(text)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %q", model.ErrInvalidAddress, text)
	}
	return Address{IP: ip.Unmap()}, nil
}

// RecordType returns A for IPv4 and AAAA for IPv6.
func (a Address) RecordType() model.RecordType {
	if a.IP.Is4() {
		return model.RecordTypeA
	}
	return model.RecordTypeAAAA
}

// String returns the canonical textual form of the address.
func (a Address) String() string {
	return a.IP.String()
}
