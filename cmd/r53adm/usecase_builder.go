package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dnsdrv "github.com/r53adm/r53adm/adapters/drivers/dns"
	"github.com/r53adm/r53adm/domain/model"
	"github.com/r53adm/r53adm/usecase/record"
	"github.com/r53adm/r53adm/usecase/zone"
)

const dnsDriverName = "route53"

// buildDNSPort constructs the registered provider driver.
func buildDNSPort(cmd *cobra.Command, s *settings) (model.DNSPort, error) {
	factory, ok := dnsdrv.GetFactory(dnsDriverName)
	if !ok {
		return nil, fmt.Errorf("unknown DNS driver: %s", dnsDriverName)
	}
	return factory(cmd.Context(), dnsdrv.Settings{Profile: s.Profile, Region: s.Region})
}

// buildZoneUseCase creates the zone use case with the provider port.
func buildZoneUseCase(cmd *cobra.Command, s *settings) (*zone.UseCase, error) {
	port, err := buildDNSPort(cmd, s)
	if err != nil {
		return nil, err
	}
	return &zone.UseCase{Port: port}, nil
}

// buildRecordUseCase creates the record use case with the provider port.
func buildRecordUseCase(cmd *cobra.Command, s *settings) (*record.UseCase, error) {
	port, err := buildDNSPort(cmd, s)
	if err != nil {
		return nil, err
	}
	return &record.UseCase{Port: port, Zones: &zone.UseCase{Port: port}}, nil
}
