package route53

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsroute53 "github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"

	"github.com/r53adm/r53adm/domain/model"
	"github.com/r53adm/r53adm/internal/logging"
)

// RecordList pages through ListResourceRecordSets. The provider paginates on
// the compound (record name, record type) cursor; both fields must be
// threaded together into the next request.
func (d *driver) RecordList(ctx context.Context, zoneID string) ([]*model.ResourceRecord, error) {
	log := logging.FromContext(ctx)

	var records []*model.ResourceRecord
	in := &awsroute53.ListResourceRecordSetsInput{HostedZoneId: aws.String(zoneID)}
	for {
		out, err := d.client.ListResourceRecordSets(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("list record sets: %w", err)
		}
		for _, rrs := range out.ResourceRecordSets {
			records = append(records, recordFromSet(zoneID, rrs))
		}
		if !out.IsTruncated {
			break
		}
		in = &awsroute53.ListResourceRecordSetsInput{
			HostedZoneId:          aws.String(zoneID),
			StartRecordName:       out.NextRecordName,
			StartRecordType:       out.NextRecordType,
			StartRecordIdentifier: out.NextRecordIdentifier,
		}
	}

	log.Debug(ctx, "listed record sets", "zone", zoneID, "count", len(records))
	return records, nil
}

func recordFromSet(zoneID string, rrs types.ResourceRecordSet) *model.ResourceRecord {
	rec := &model.ResourceRecord{
		ZoneID: zoneID,
		Name:   aws.ToString(rrs.Name),
		Type:   model.RecordType(rrs.Type),
		TTL:    aws.ToInt64(rrs.TTL),
	}
	for _, rr := range rrs.ResourceRecords {
		rec.Values = append(rec.Values, aws.ToString(rr.Value))
	}
	if rrs.AliasTarget != nil {
		rec.AliasTarget = aws.ToString(rrs.AliasTarget.DNSName)
		rec.AliasZoneID = aws.ToString(rrs.AliasTarget.HostedZoneId)
		rec.AliasEvalTargetHealth = rrs.AliasTarget.EvaluateTargetHealth
	}
	return rec
}

func setFromRecord(rec model.ResourceRecord) *types.ResourceRecordSet {
	rrs := &types.ResourceRecordSet{
		Name: aws.String(rec.Name),
		Type: types.RRType(rec.Type),
	}
	if rec.AliasTarget != "" {
		rrs.AliasTarget = &types.AliasTarget{
			DNSName:              aws.String(rec.AliasTarget),
			HostedZoneId:         aws.String(rec.AliasZoneID),
			EvaluateTargetHealth: rec.AliasEvalTargetHealth,
		}
		return rrs
	}
	rrs.TTL = aws.Int64(rec.TTL)
	for _, v := range rec.Values {
		rrs.ResourceRecords = append(rrs.ResourceRecords, types.ResourceRecord{Value: aws.String(v)})
	}
	return rrs
}
