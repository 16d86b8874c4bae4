package record

import (
	"context"
	"errors"
	"testing"

	"github.com/r53adm/r53adm/domain/model"
	"github.com/r53adm/r53adm/usecase/zone"
)

type fakePort struct {
	zones    []*model.Zone
	records  []*model.ResourceRecord
	applied  [][]model.PendingChange
	applyErr error
}

func (f *fakePort) ZoneList(context.Context) ([]*model.Zone, error) {
	return f.zones, nil
}

func (f *fakePort) RecordList(context.Context, string) ([]*model.ResourceRecord, error) {
	return f.records, nil
}

func (f *fakePort) ChangeApply(_ context.Context, _ string, changes []model.PendingChange) (*model.ChangeReceipt, error) {
	f.applied = append(f.applied, changes)
	if f.applyErr != nil {
		return nil, f.applyErr
	}
	return &model.ChangeReceipt{ID: "/change/C1", Status: "PENDING"}, nil
}

func newUseCase(port *fakePort) *UseCase {
	return &UseCase{Port: port, Zones: &zone.UseCase{Port: port}}
}

func exampleZones() []*model.Zone {
	return []*model.Zone{
		{ID: "/hostedzone/Z1", Name: "example.com.", RecordCount: 4},
		{ID: "/hostedzone/Z2", Name: "example.org.", RecordCount: 2},
	}
}

func TestAddIPv4(t *testing.T) {
	port := &fakePort{zones: exampleZones()}
	u := newUseCase(port)

	out, err := u.Add(context.Background(), &AddInput{FQDN: "foo4.example.com", Address: "127.0.0.1", TTL: 300})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if len(port.applied) != 1 || len(port.applied[0]) != 1 {
		t.Fatalf("Add() applied = %v, want one batch of one change", port.applied)
	}
	ch := port.applied[0][0]
	if ch.Action != model.ChangeActionCreate {
		t.Errorf("action = %q, want CREATE", ch.Action)
	}
	rec := ch.Record
	if rec.ZoneID != "/hostedzone/Z1" {
		t.Errorf("zone = %q, want /hostedzone/Z1", rec.ZoneID)
	}
	if rec.Name != "foo4.example.com." {
		t.Errorf("name = %q, want foo4.example.com.", rec.Name)
	}
	if rec.Type != model.RecordTypeA {
		t.Errorf("type = %q, want A", rec.Type)
	}
	if rec.TTL != 300 {
		t.Errorf("ttl = %d, want 300", rec.TTL)
	}
	if len(rec.Values) != 1 || rec.Values[0] != "127.0.0.1" {
		t.Errorf("values = %v, want [127.0.0.1]", rec.Values)
	}
	if out.Receipt == nil || out.Receipt.ID == "" {
		t.Errorf("receipt = %+v", out.Receipt)
	}
}

func TestAddIPv6(t *testing.T) {
	port := &fakePort{zones: exampleZones()}
	u := newUseCase(port)

	_, err := u.Add(context.Background(), &AddInput{FQDN: "foo6.example.com", Address: "::1", TTL: 60})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	rec := port.applied[0][0].Record
	if rec.Type != model.RecordTypeAAAA {
		t.Errorf("type = %q, want AAAA", rec.Type)
	}
	if rec.Values[0] != "::1" {
		t.Errorf("values = %v, want [::1]", rec.Values)
	}
}

func TestAddValidatesBeforeProviderCalls(t *testing.T) {
	tests := []struct {
		name    string
		in      *AddInput
		wantErr error
	}{
		{name: "invalid domain", in: &AddInput{FQDN: "localhost", Address: "127.0.0.1"}, wantErr: model.ErrInvalidDomain},
		{name: "IP literal as domain", in: &AddInput{FQDN: "127.0.0.1", Address: "127.0.0.1"}, wantErr: model.ErrInvalidDomain},
		{name: "invalid address", in: &AddInput{FQDN: "foo.example.com", Address: "not-an-ip"}, wantErr: model.ErrInvalidAddress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port := &fakePort{zones: exampleZones()}
			u := newUseCase(port)
			_, err := u.Add(context.Background(), tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Add() error = %v, want %v", err, tt.wantErr)
			}
			if len(port.applied) != 0 {
				t.Errorf("Add() issued %d mutation calls, want 0", len(port.applied))
			}
		})
	}
}

func TestAddZoneNotFound(t *testing.T) {
	port := &fakePort{zones: exampleZones()}
	u := newUseCase(port)
	_, err := u.Add(context.Background(), &AddInput{FQDN: "foo.missing.net", Address: "127.0.0.1", TTL: 300})
	if !errors.Is(err, model.ErrZoneNotFound) {
		t.Errorf("Add() error = %v, want ErrZoneNotFound", err)
	}
	if len(port.applied) != 0 {
		t.Errorf("Add() issued %d mutation calls, want 0", len(port.applied))
	}
}

func TestDeleteMatchingRecords(t *testing.T) {
	port := &fakePort{
		zones: exampleZones(),
		records: []*model.ResourceRecord{
			{ZoneID: "/hostedzone/Z1", Name: "example.com.", Type: model.RecordTypeNS, TTL: 172800, Values: []string{"ns1.example.com."}},
			{ZoneID: "/hostedzone/Z1", Name: "foo4.example.com.", Type: model.RecordTypeA, TTL: 300, Values: []string{"127.0.0.1"}},
			{ZoneID: "/hostedzone/Z1", Name: "foo4.example.com.", Type: model.RecordTypeAAAA, TTL: 300, Values: []string{"::1"}},
			{ZoneID: "/hostedzone/Z1", Name: "bar.example.com.", Type: model.RecordTypeA, TTL: 300, Values: []string{"192.0.2.1"}},
		},
	}
	u := newUseCase(port)

	out, err := u.Delete(context.Background(), &DeleteInput{FQDN: "foo4.example.com"})
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	// Both matching records go out in one atomic batch.
	if len(port.applied) != 1 {
		t.Fatalf("Delete() submitted %d batches, want 1", len(port.applied))
	}
	batch := port.applied[0]
	if len(batch) != 2 {
		t.Fatalf("batch has %d changes, want 2", len(batch))
	}
	for i, ch := range batch {
		if ch.Action != model.ChangeActionDelete {
			t.Errorf("change %d action = %q, want DELETE", i, ch.Action)
		}
		if ch.Record.Name != "foo4.example.com." {
			t.Errorf("change %d name = %q", i, ch.Record.Name)
		}
	}
	if batch[0].Record.Type != model.RecordTypeA || batch[1].Record.Type != model.RecordTypeAAAA {
		t.Errorf("batch order changed: %q, %q", batch[0].Record.Type, batch[1].Record.Type)
	}
	if len(out.Records) != 2 {
		t.Errorf("output records = %d, want 2", len(out.Records))
	}
}

func TestDeleteNoMatchingRecords(t *testing.T) {
	port := &fakePort{
		zones: exampleZones(),
		records: []*model.ResourceRecord{
			{ZoneID: "/hostedzone/Z1", Name: "bar.example.com.", Type: model.RecordTypeA, TTL: 300, Values: []string{"192.0.2.1"}},
		},
	}
	u := newUseCase(port)

	_, err := u.Delete(context.Background(), &DeleteInput{FQDN: "foo4.example.com"})
	if !errors.Is(err, model.ErrNoMatchingRecords) {
		t.Errorf("Delete() error = %v, want ErrNoMatchingRecords", err)
	}
	if len(port.applied) != 0 {
		t.Errorf("Delete() issued %d mutation calls, want 0", len(port.applied))
	}
}

func TestDeletePropagatesBatchRejection(t *testing.T) {
	port := &fakePort{
		zones: exampleZones(),
		records: []*model.ResourceRecord{
			{ZoneID: "/hostedzone/Z1", Name: "foo4.example.com.", Type: model.RecordTypeA, TTL: 300, Values: []string{"127.0.0.1"}},
		},
		applyErr: model.ErrBatchRejected,
	}
	u := newUseCase(port)

	_, err := u.Delete(context.Background(), &DeleteInput{FQDN: "foo4.example.com"})
	if !errors.Is(err, model.ErrBatchRejected) {
		t.Errorf("Delete() error = %v, want ErrBatchRejected", err)
	}
	// One attempt only; a rejected batch is never split or retried.
	if len(port.applied) != 1 {
		t.Errorf("Delete() submitted %d batches, want 1", len(port.applied))
	}
}

func TestListRecordsOfZone(t *testing.T) {
	port := &fakePort{
		zones: exampleZones(),
		records: []*model.ResourceRecord{
			{ZoneID: "/hostedzone/Z1", Name: "example.com.", Type: model.RecordTypeNS, TTL: 172800, Values: []string{"ns1.example.com."}},
			{ZoneID: "/hostedzone/Z1", Name: "foo4.example.com.", Type: model.RecordTypeA, TTL: 300, Values: []string{"127.0.0.1"}},
		},
	}
	u := newUseCase(port)

	out, err := u.List(context.Background(), &ListInput{Domain: "example.com"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if out.Zone.ID != "/hostedzone/Z1" {
		t.Errorf("zone = %q, want /hostedzone/Z1", out.Zone.ID)
	}
	if len(out.Records) != 2 {
		t.Errorf("records = %d, want 2", len(out.Records))
	}
}
