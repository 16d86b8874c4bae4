// Package dnsdrv hosts the registry of hosted DNS provider drivers.
package dnsdrv

import (
	"context"

	"github.com/r53adm/r53adm/domain/model"
)

// Settings carries provider client settings resolved from flags and config.
// Credentials themselves come from the provider SDK's own resolution chain.
type Settings struct {
	Profile string // Shared-config profile name, empty for the chain default.
	Region  string // Region override, empty for the chain default.
}

// Factory is a constructor function for a DNS driver.
type Factory func(ctx context.Context, settings Settings) (model.DNSPort, error)

// registry holds registered drivers by name.
var registry = map[string]Factory{}

// Register makes a driver available by the given name. Drivers should call
// this from their init() function.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// GetFactory returns the driver factory for the given name.
func GetFactory(name string) (Factory, bool) {
	factory, exists := registry[name]
	return factory, exists
}
