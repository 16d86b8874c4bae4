// Package route53 implements the DNS driver for Amazon Route 53.
package route53

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsroute53 "github.com/aws/aws-sdk-go-v2/service/route53"

	dnsdrv "github.com/r53adm/r53adm/adapters/drivers/dns"
	"github.com/r53adm/r53adm/domain/model"
)

const driverName = "route53"

func init() {
	dnsdrv.Register(driverName, New)
}

// api is the subset of the Route 53 client the driver uses.
type api interface {
	ListHostedZones(ctx context.Context, in *awsroute53.ListHostedZonesInput, optFns ...func(*awsroute53.Options)) (*awsroute53.ListHostedZonesOutput, error)
	ListResourceRecordSets(ctx context.Context, in *awsroute53.ListResourceRecordSetsInput, optFns ...func(*awsroute53.Options)) (*awsroute53.ListResourceRecordSetsOutput, error)
	ChangeResourceRecordSets(ctx context.Context, in *awsroute53.ChangeResourceRecordSetsInput, optFns ...func(*awsroute53.Options)) (*awsroute53.ChangeResourceRecordSetsOutput, error)
}

type driver struct {
	client api
}

// New builds a Route 53 driver. Credentials come from the SDK's standard
// resolution chain (environment, shared config files, instance role).
func New(ctx context.Context, settings dnsdrv.Settings) (model.DNSPort, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if settings.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(settings.Profile))
	}
	if settings.Region != "" {
		opts = append(opts, awsconfig.WithRegion(settings.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &driver{client: awsroute53.NewFromConfig(cfg)}, nil
}
