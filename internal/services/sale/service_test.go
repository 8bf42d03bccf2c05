package sale

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"ahlan_office/internal/adapters/crmapi"
	"ahlan_office/internal/models"
	"ahlan_office/internal/ports"
)

type fakeCRM struct {
	created   []crmapi.PaymentCreate
	processed []decimal.Decimal
	patched   []models.ApartmentStatus
	nextID    int64

	failCreate error
}

func (f *fakeCRM) CreatePayment(ctx context.Context, req crmapi.PaymentCreate) (crmapi.PaymentRecord, error) {
	if f.failCreate != nil {
		return crmapi.PaymentRecord{}, f.failCreate
	}
	f.created = append(f.created, req)
	f.nextID++
	return crmapi.PaymentRecord{ID: f.nextID + 400}, nil
}

func (f *fakeCRM) ProcessPayment(ctx context.Context, paymentID int64, amount decimal.Decimal) error {
	f.processed = append(f.processed, amount)
	return nil
}

func (f *fakeCRM) UpdateApartmentStatus(ctx context.Context, apartmentID int64, status models.ApartmentStatus) error {
	f.patched = append(f.patched, status)
	return nil
}

type fakeArtifacts struct {
	keys []string
	fail error
}

func (f *fakeArtifacts) Put(ctx context.Context, key string, blob []byte, contentType string) (ports.ArtifactMeta, error) {
	if f.fail != nil {
		return ports.ArtifactMeta{}, f.fail
	}
	f.keys = append(f.keys, key)
	return ports.ArtifactMeta{Bucket: "documents", Key: key, Size: int64(len(blob)), ContentType: contentType}, nil
}

func (f *fakeArtifacts) Get(ctx context.Context, key string) ([]byte, string, error) {
	return nil, "", errors.New("not implemented")
}

type fakeDrafts struct {
	inserted []models.ContractDraft
}

func (f *fakeDrafts) Insert(ctx context.Context, draft models.ContractDraft, artifact ports.ArtifactMeta) error {
	f.inserted = append(f.inserted, draft)
	return nil
}

func (f *fakeDrafts) FindByReference(ctx context.Context, referenceID int64) (models.ContractDraft, ports.ArtifactMeta, error) {
	return models.ContractDraft{}, ports.ArtifactMeta{}, errors.New("not found")
}

func installmentRequest() Request {
	return Request{
		Apartment: models.Apartment{
			ID:         9,
			ObjectName: "Ahlan House 2",
			RoomNumber: "45",
			Rooms:      3,
			Price:      decimal.NewFromInt(130_000_000),
		},
		Client: models.Client{
			ID:       12,
			FullName: "Aliyev Vali G'anievich",
			Phone:    "+998901234567",
		},
		Terms: models.SaleTerms{
			TotalAmount:    decimal.NewFromInt(120_000_000),
			InitialPayment: decimal.NewFromInt(20_000_000),
			DurationMonths: 10,
			DueDayOfMonth:  15,
			PaymentType:    models.PaymentInstallment,
			StartDate:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		Comment: "chegirma kelishildi",
	}
}

func TestSubmit_Installment(t *testing.T) {
	crm := &fakeCRM{}
	arts := &fakeArtifacts{}
	drafts := &fakeDrafts{}
	svc := NewService(crm, arts, drafts)

	res, err := svc.Submit(context.Background(), installmentRequest())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if res.ReferenceID == 0 {
		t.Error("missing reference id")
	}
	if len(res.Schedule) != 10 {
		t.Errorf("schedule has %d entries, want 10", len(res.Schedule))
	}
	if !strings.Contains(res.ContractText, "TO'LOV JADVALI") {
		t.Errorf("contract text missing schedule:\n%s", res.ContractText)
	}

	if len(crm.created) != 1 {
		t.Fatalf("created %d payments", len(crm.created))
	}
	pc := crm.created[0]
	if !pc.MonthlyPayment.Equal(decimal.NewFromInt(10_000_000)) {
		t.Errorf("monthly payment sent = %s", pc.MonthlyPayment)
	}
	if pc.AdditionalInfo.DiscountPercent != "7.7" {
		t.Errorf("discount sent = %q, want 7.7", pc.AdditionalInfo.DiscountPercent)
	}
	if len(crm.processed) != 1 || !crm.processed[0].Equal(decimal.NewFromInt(20_000_000)) {
		t.Errorf("initial payment not processed: %v", crm.processed)
	}
	if len(crm.patched) != 0 {
		t.Errorf("installment sale must not patch apartment status, got %v", crm.patched)
	}

	if len(arts.keys) != 1 || !strings.HasPrefix(arts.keys[0], "contracts/") {
		t.Errorf("artifact keys = %v", arts.keys)
	}
	if len(drafts.inserted) != 1 || drafts.inserted[0].ReferenceID != res.ReferenceID {
		t.Errorf("draft not archived: %+v", drafts.inserted)
	}
}

func TestSubmit_ReservationPatchesStatusAndSkipsDocument(t *testing.T) {
	crm := &fakeCRM{}
	arts := &fakeArtifacts{}
	svc := NewService(crm, arts, &fakeDrafts{})

	req := installmentRequest()
	deadline := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	req.Terms.PaymentType = models.PaymentReservation
	req.Terms.DurationMonths = 0
	req.Terms.DueDayOfMonth = 0
	req.Terms.InitialPayment = decimal.NewFromInt(5_000_000)
	req.Terms.ReservationDeadline = &deadline

	res, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(crm.patched) != 1 || crm.patched[0] != models.StatusReserved {
		t.Errorf("apartment not marked band: %v", crm.patched)
	}
	if len(arts.keys) != 0 {
		t.Errorf("reservation must not produce a contract document, got %v", arts.keys)
	}
	if strings.Contains(res.ContractText, "TO'LOV JADVALI") {
		t.Errorf("reservation text contains a schedule:\n%s", res.ContractText)
	}
	if crm.created[0].ReservationDeadline == nil || *crm.created[0].ReservationDeadline != "2024-02-01" {
		t.Errorf("reservation deadline sent = %v", crm.created[0].ReservationDeadline)
	}
}

func TestSubmit_ValidationBlocksBeforeNetwork(t *testing.T) {
	crm := &fakeCRM{}
	svc := NewService(crm, &fakeArtifacts{}, &fakeDrafts{})

	req := installmentRequest()
	req.Terms.InitialPayment = decimal.NewFromInt(999_999_999)
	req.Client.FullName = ""

	_, err := svc.Submit(context.Background(), req)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Reasons) < 2 {
		t.Errorf("expected both reasons, got %v", verr.Reasons)
	}
	if len(crm.created) != 0 || len(crm.processed) != 0 {
		t.Errorf("network calls made despite validation failure")
	}
}

func TestSubmit_RemoteFailureIsTerminal(t *testing.T) {
	crm := &fakeCRM{failCreate: &crmapi.APIError{Status: 400, Detail: "kvartira band"}}
	svc := NewService(crm, &fakeArtifacts{}, &fakeDrafts{})

	_, err := svc.Submit(context.Background(), installmentRequest())
	var apiErr *crmapi.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError passthrough, got %v", err)
	}
}

func TestSubmit_ArtifactFailureDoesNotFailSale(t *testing.T) {
	crm := &fakeCRM{}
	svc := NewService(crm, &fakeArtifacts{fail: errors.New("s3 down")}, &fakeDrafts{})

	res, err := svc.Submit(context.Background(), installmentRequest())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.ArtifactKey != "" {
		t.Errorf("artifact key = %q, want empty on store failure", res.ArtifactKey)
	}
	if res.ReferenceID == 0 {
		t.Error("sale should still carry a reference id")
	}
}

func TestSubmit_ResubmissionCreatesFreshDraft(t *testing.T) {
	crm := &fakeCRM{}
	drafts := &fakeDrafts{}
	svc := NewService(crm, &fakeArtifacts{}, drafts)

	first, err := svc.Submit(context.Background(), installmentRequest())
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Submit(context.Background(), installmentRequest())
	if err != nil {
		t.Fatal(err)
	}

	// double submission is an accepted gap: two records, two drafts
	if first.ReferenceID == second.ReferenceID {
		t.Errorf("re-submission reused reference id %d", first.ReferenceID)
	}
	if len(drafts.inserted) != 2 {
		t.Errorf("archived %d drafts, want 2", len(drafts.inserted))
	}
}
