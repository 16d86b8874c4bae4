// Package record implements resource record use cases.
package record

import (
	"github.com/r53adm/r53adm/domain/model"
	"github.com/r53adm/r53adm/usecase/zone"
)

// UseCase provides application logic for record operations. Zone resolution
// is delegated to the zone use case over the same port.
type UseCase struct {
	Port  model.DNSPort
	Zones *zone.UseCase
}
