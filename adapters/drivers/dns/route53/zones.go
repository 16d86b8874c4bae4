package route53

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsroute53 "github.com/aws/aws-sdk-go-v2/service/route53"

	"github.com/r53adm/r53adm/domain/model"
	"github.com/r53adm/r53adm/internal/dnsname"
	"github.com/r53adm/r53adm/internal/logging"
)

// ZoneList pages through ListHostedZones following the opaque marker until
// the provider reports no further truncation. Pages are fetched in strict
// sequence since each request needs the previous response's marker.
func (d *driver) ZoneList(ctx context.Context) ([]*model.Zone, error) {
	log := logging.FromContext(ctx)

	var zones []*model.Zone
	in := &awsroute53.ListHostedZonesInput{}
	for {
		out, err := d.client.ListHostedZones(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("list hosted zones: %w", err)
		}
		for _, hz := range out.HostedZones {
			zones = append(zones, &model.Zone{
				ID:          aws.ToString(hz.Id),
				Name:        dnsname.Normalize(aws.ToString(hz.Name)),
				RecordCount: aws.ToInt64(hz.ResourceRecordSetCount),
			})
		}
		if !out.IsTruncated {
			break
		}
		in = &awsroute53.ListHostedZonesInput{Marker: out.NextMarker}
	}

	log.Debug(ctx, "listed hosted zones", "count", len(zones))
	return zones, nil
}
