package route53

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsroute53 "github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/r53adm/r53adm/domain/model"
	"github.com/r53adm/r53adm/internal/logging"
)

// ChangeApply submits one change batch. The provider commits the whole batch
// or rejects it; there is no partial application, so no client-side
// splitting or retry happens here.
func (d *driver) ChangeApply(ctx context.Context, zoneID string, changes []model.PendingChange) (*model.ChangeReceipt, error) {
	log := logging.FromContext(ctx)

	if len(changes) == 0 {
		return nil, fmt.Errorf("change batch is empty")
	}

	batch := &types.ChangeBatch{
		// Tagged with an invocation ID so receipts can be correlated later.
		Comment: aws.String("r53adm-" + uuid.NewString()),
	}
	for _, c := range changes {
		batch.Changes = append(batch.Changes, types.Change{
			Action:            types.ChangeAction(c.Action),
			ResourceRecordSet: setFromRecord(c.Record),
		})
	}

	log.Debug(ctx, "submitting change batch", "zone", zoneID, "changes", len(changes))
	out, err := d.client.ChangeResourceRecordSets(ctx, &awsroute53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch:  batch,
	})
	if err != nil {
		return nil, mapChangeError(err)
	}

	ci := out.ChangeInfo
	receipt := &model.ChangeReceipt{
		ID:      aws.ToString(ci.Id),
		Status:  string(ci.Status),
		Comment: aws.ToString(ci.Comment),
	}
	if ci.SubmittedAt != nil {
		receipt.SubmittedAt = *ci.SubmittedAt
	}
	return receipt, nil
}

// mapChangeError translates provider batch rejections into domain error
// kinds while preserving the provider's original message text. Errors other
// than batch rejections (throttling, transport) pass through wrapped.
func mapChangeError(err error) error {
	var icb *types.InvalidChangeBatch
	if errors.As(err, &icb) {
		msg := strings.Join(icb.Messages, "; ")
		if msg == "" {
			msg = icb.ErrorMessage()
		}
		return mapBatchMessage(msg)
	}
	var ae smithy.APIError
	if errors.As(err, &ae) && ae.ErrorCode() == "InvalidChangeBatch" {
		return mapBatchMessage(ae.ErrorMessage())
	}
	return fmt.Errorf("change record sets: %w", err)
}

func mapBatchMessage(msg string) error {
	if strings.Contains(msg, "already exists") {
		return fmt.Errorf("%w: %s", model.ErrDuplicateRecord, msg)
	}
	return fmt.Errorf("%w: %s", model.ErrBatchRejected, msg)
}
