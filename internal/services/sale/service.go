package sale

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ahlan_office/internal/adapters/crmapi"
	"ahlan_office/internal/models"
	"ahlan_office/internal/ports"
	"ahlan_office/internal/services/contract"
	"ahlan_office/internal/services/installment"
)

// CRM is the slice of the remote API client the submission flow uses.
type CRM interface {
	CreatePayment(ctx context.Context, req crmapi.PaymentCreate) (crmapi.PaymentRecord, error)
	ProcessPayment(ctx context.Context, paymentID int64, amount decimal.Decimal) error
	UpdateApartmentStatus(ctx context.Context, apartmentID int64, status models.ApartmentStatus) error
}

// ValidationError aborts a submission before any network call is made.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "tekshiruvdan o'tmadi: " + strings.Join(e.Reasons, "; ")
}

type Service struct {
	CRM       CRM
	Artifacts ports.ArtifactStore
	Drafts    ports.DraftStore
	Logger    *log.Logger
}

func NewService(crm CRM, artifacts ports.ArtifactStore, drafts ports.DraftStore) *Service {
	return &Service{
		CRM:       crm,
		Artifacts: artifacts,
		Drafts:    drafts,
		Logger:    log.Default(),
	}
}

type Request struct {
	Apartment models.Apartment
	Client    models.Client
	Terms     models.SaleTerms
	Comment   string
}

type Result struct {
	ReferenceID  int64                  `json:"reference_id"`
	ContractText string                 `json:"contract_text"`
	Schedule     []models.ScheduleEntry `json:"schedule,omitempty"`
	ArtifactKey  string                 `json:"artifact_key,omitempty"`
	Warning      string                 `json:"warning,omitempty"`
}

// Submit runs the whole sale/reservation flow: validate, compute, create
// the payment record remotely, record the initial payment, mark the
// apartment reserved for band sales, render the contract and archive it.
//
// There is no request deduplication: submitting twice creates two payment
// records and two drafts, each with its own reference id.
func (s *Service) Submit(ctx context.Context, req Request) (Result, error) {
	if verr := s.validate(req); verr != nil {
		return Result{}, verr
	}

	start := time.Now()
	monthly, _ := installment.MonthlyPayment(req.Terms)
	schedule, scheduleReason := installment.Schedule(req.Terms)

	var warning string
	if req.Terms.PaymentType == models.PaymentInstallment && scheduleReason != "" {
		warning = "to'lov jadvali tuzilmadi: " + scheduleReason
	}

	rec, err := s.CRM.CreatePayment(ctx, s.paymentBody(req, monthly))
	if err != nil {
		s.Logger.Printf("[SALE][ERR] create payment: %v", err)
		return Result{}, err
	}

	if req.Terms.InitialPayment.Sign() > 0 {
		if err := s.CRM.ProcessPayment(ctx, rec.ID, req.Terms.InitialPayment); err != nil {
			s.Logger.Printf("[SALE][ERR] process payment ref=%d: %v", rec.ID, err)
			return Result{}, err
		}
	}

	if req.Terms.PaymentType == models.PaymentReservation {
		if err := s.CRM.UpdateApartmentStatus(ctx, req.Apartment.ID, models.StatusReserved); err != nil {
			s.Logger.Printf("[SALE][ERR] reserve apartment=%d ref=%d: %v", req.Apartment.ID, rec.ID, err)
			return Result{}, err
		}
	}

	in := contract.Input{
		ReferenceID: rec.ID,
		Apartment:   req.Apartment,
		Client:      req.Client,
		Terms:       req.Terms,
		Schedule:    schedule,
		Now:         time.Now(),
	}
	text := contract.Text(in)

	artifact := s.storeDocument(ctx, in)
	s.archiveDraft(ctx, in, text, artifact)

	s.Logger.Printf("[SALE][OK] ref=%d type=%s apartment=%d took=%s",
		rec.ID, req.Terms.PaymentType, req.Apartment.ID, time.Since(start))

	return Result{
		ReferenceID:  rec.ID,
		ContractText: text,
		Schedule:     schedule,
		ArtifactKey:  artifact.Key,
		Warning:      warning,
	}, nil
}

func (s *Service) validate(req Request) *ValidationError {
	var reasons []string
	if res := models.ValidateSaleTerms(req.Terms); !res.OK() {
		reasons = append(reasons, res.Reasons...)
	}
	if res := models.ValidateClient(req.Client); !res.OK() {
		reasons = append(reasons, res.Reasons...)
	}
	if strings.TrimSpace(req.Apartment.RoomNumber) == "" {
		reasons = append(reasons, "kvartira raqami ko'rsatilmagan")
	}
	if len(reasons) > 0 {
		return &ValidationError{Reasons: reasons}
	}
	return nil
}

func (s *Service) paymentBody(req Request, monthly decimal.Decimal) crmapi.PaymentCreate {
	body := crmapi.PaymentCreate{
		ApartmentID:    req.Apartment.ID,
		ClientID:       req.Client.ID,
		TotalAmount:    req.Terms.TotalAmount,
		InitialPayment: req.Terms.InitialPayment,
		DurationMonths: req.Terms.DurationMonths,
		MonthlyPayment: monthly,
		DueDate:        req.Terms.DueDayOfMonth,
		PaymentType:    req.Terms.PaymentType,
		AdditionalInfo: crmapi.AdditionalInfo{
			Comment:  req.Comment,
			BankName: req.Terms.BankName,
		},
	}
	if req.Terms.ReservationDeadline != nil {
		d := req.Terms.ReservationDeadline.Format("2006-01-02")
		body.ReservationDeadline = &d
	}
	if disc := installment.DiscountPercentage(req.Apartment.Price, req.Terms.TotalAmount); disc.Sign() > 0 {
		body.AdditionalInfo.DiscountPercent = disc.StringFixed(1)
	}
	return body
}

// storeDocument renders and uploads the contract workbook. Reservations
// have no contract document; upload failures degrade to a log line, the
// sale itself already went through.
func (s *Service) storeDocument(ctx context.Context, in contract.Input) ports.ArtifactMeta {
	if s.Artifacts == nil || in.Terms.PaymentType == models.PaymentReservation {
		return ports.ArtifactMeta{}
	}

	blob, err := contract.Document(in)
	if err != nil {
		s.Logger.Printf("[SALE][WARN] render document ref=%d: %v", in.ReferenceID, err)
		return ports.ArtifactMeta{}
	}

	key := fmt.Sprintf("contracts/%d-%s.xlsx", in.ReferenceID, uuid.NewString())
	meta, err := s.Artifacts.Put(ctx, key, blob,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err != nil {
		s.Logger.Printf("[SALE][WARN] store document ref=%d: %v", in.ReferenceID, err)
		return ports.ArtifactMeta{}
	}
	return meta
}

func (s *Service) archiveDraft(ctx context.Context, in contract.Input, text string, artifact ports.ArtifactMeta) {
	if s.Drafts == nil {
		return
	}
	draft := models.ContractDraft{
		ReferenceID:   in.ReferenceID,
		Client:        in.Client,
		Terms:         in.Terms,
		Schedule:      in.Schedule,
		GeneratedText: text,
		GeneratedAt:   in.Now,
	}
	if err := s.Drafts.Insert(ctx, draft, artifact); err != nil {
		s.Logger.Printf("[SALE][WARN] archive draft ref=%d: %v", in.ReferenceID, err)
	}
}
