// Package zone implements hosted zone use cases.
package zone

import "github.com/r53adm/r53adm/domain/model"

// UseCase provides application logic for hosted zone operations.
type UseCase struct {
	Port model.DNSPort
}
