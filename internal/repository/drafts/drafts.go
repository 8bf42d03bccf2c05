package drafts

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mg "ahlan_office/internal/config/connections/mongo"
	"ahlan_office/internal/models"
	"ahlan_office/internal/ports"
)

const Collection = "contract_drafts"

// Record is the archived form of a generated contract draft. Amounts are
// stored as strings so the archive round-trips without precision loss.
type Record struct {
	ID                  any           `bson:"_id,omitempty" json:"id"`
	ReferenceID         int64         `bson:"reference_id" json:"reference_id"`
	ClientID            int64         `bson:"client_id" json:"client_id"`
	ClientName          string        `bson:"client_name" json:"client_name"`
	ClientPhone         string        `bson:"client_phone" json:"client_phone"`
	ClientAddress       string        `bson:"client_address,omitempty" json:"client_address,omitempty"`
	GuarantorName       string        `bson:"guarantor_name,omitempty" json:"guarantor_name,omitempty"`
	GuarantorPhone      string        `bson:"guarantor_phone,omitempty" json:"guarantor_phone,omitempty"`
	GuarantorAddress    string        `bson:"guarantor_address,omitempty" json:"guarantor_address,omitempty"`
	PaymentType         string        `bson:"payment_type" json:"payment_type"`
	TotalAmount         string        `bson:"total_amount" json:"total_amount"`
	InitialPayment      string        `bson:"initial_payment" json:"initial_payment"`
	DurationMonths      int           `bson:"duration_months" json:"duration_months"`
	DueDayOfMonth       int           `bson:"due_day_of_month" json:"due_day_of_month"`
	StartDate           time.Time     `bson:"start_date" json:"start_date"`
	ReservationDeadline *time.Time    `bson:"reservation_deadline,omitempty" json:"reservation_deadline,omitempty"`
	BankName            string        `bson:"bank_name,omitempty" json:"bank_name,omitempty"`
	Schedule            []ScheduleRow `bson:"schedule,omitempty" json:"schedule,omitempty"`
	GeneratedText       string        `bson:"generated_text" json:"generated_text"`
	GeneratedAt         time.Time     `bson:"generated_at" json:"generated_at"`
	ArtifactBucket      string        `bson:"artifact_bucket,omitempty" json:"artifact_bucket,omitempty"`
	ArtifactKey         string        `bson:"artifact_key,omitempty" json:"artifact_key,omitempty"`
	ArtifactSize        int64         `bson:"artifact_size,omitempty" json:"artifact_size,omitempty"`
	ContentType         string        `bson:"content_type,omitempty" json:"content_type,omitempty"`
	CreatedAt           time.Time     `bson:"created_at" json:"created_at"`
}

type ScheduleRow struct {
	MonthIndex int       `bson:"month_index" json:"month_index"`
	DueDate    time.Time `bson:"due_date" json:"due_date"`
	Amount     string    `bson:"amount" json:"amount"`
}

type Repo struct {
	Mongo *mg.Mongo
}

func NewRepo(m *mg.Mongo) *Repo { return &Repo{Mongo: m} }

var _ ports.DraftStore = (*Repo)(nil)

func (r *Repo) Insert(ctx context.Context, draft models.ContractDraft, artifact ports.ArtifactMeta) error {
	if r.Mongo == nil || r.Mongo.Database == nil {
		return mongo.ErrClientDisconnected
	}

	rec := fromDraft(draft, artifact)
	rec.CreatedAt = time.Now().UTC()

	_, err := r.Mongo.Database.Collection(Collection).InsertOne(ctx, rec, options.InsertOne())
	return err
}

func (r *Repo) FindByReference(ctx context.Context, referenceID int64) (models.ContractDraft, ports.ArtifactMeta, error) {
	if r.Mongo == nil || r.Mongo.Database == nil {
		return models.ContractDraft{}, ports.ArtifactMeta{}, mongo.ErrClientDisconnected
	}

	// drafts are immutable and re-submissions append, so take the latest
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var rec Record
	err := r.Mongo.Database.Collection(Collection).
		FindOne(ctx, bson.M{"reference_id": referenceID}, opts).
		Decode(&rec)
	if err != nil {
		return models.ContractDraft{}, ports.ArtifactMeta{}, fmt.Errorf("draft %d not found: %w", referenceID, err)
	}

	return toDraft(rec), ports.ArtifactMeta{
		Bucket:      rec.ArtifactBucket,
		Key:         rec.ArtifactKey,
		Size:        rec.ArtifactSize,
		ContentType: rec.ContentType,
	}, nil
}

// List returns archived drafts newest first, for the back-office audit view.
func (r *Repo) List(ctx context.Context, limit int64) ([]Record, error) {
	if r.Mongo == nil || r.Mongo.Database == nil {
		return nil, mongo.ErrClientDisconnected
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.Mongo.Database.Collection(Collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	recs := make([]Record, 0)
	for cur.Next(ctx) {
		var rec Record
		if err := cur.Decode(&rec); err != nil {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, cur.Err()
}

func fromDraft(d models.ContractDraft, artifact ports.ArtifactMeta) Record {
	rec := Record{
		ReferenceID:         d.ReferenceID,
		ClientID:            d.Client.ID,
		ClientName:          d.Client.FullName,
		ClientPhone:         d.Client.Phone,
		ClientAddress:       d.Client.Address,
		GuarantorName:       d.Client.GuarantorName,
		GuarantorPhone:      d.Client.GuarantorPhone,
		GuarantorAddress:    d.Client.GuarantorAddress,
		PaymentType:         string(d.Terms.PaymentType),
		TotalAmount:         d.Terms.TotalAmount.String(),
		InitialPayment:      d.Terms.InitialPayment.String(),
		DurationMonths:      d.Terms.DurationMonths,
		DueDayOfMonth:       d.Terms.DueDayOfMonth,
		StartDate:           d.Terms.StartDate,
		ReservationDeadline: d.Terms.ReservationDeadline,
		BankName:            d.Terms.BankName,
		GeneratedText:       d.GeneratedText,
		GeneratedAt:         d.GeneratedAt,
		ArtifactBucket:      artifact.Bucket,
		ArtifactKey:         artifact.Key,
		ArtifactSize:        artifact.Size,
		ContentType:         artifact.ContentType,
	}
	for _, e := range d.Schedule {
		rec.Schedule = append(rec.Schedule, ScheduleRow{
			MonthIndex: e.MonthIndex,
			DueDate:    e.DueDate,
			Amount:     e.Amount.String(),
		})
	}
	return rec
}

func toDraft(rec Record) models.ContractDraft {
	d := models.ContractDraft{
		ReferenceID: rec.ReferenceID,
		Client: models.Client{
			ID:               rec.ClientID,
			FullName:         rec.ClientName,
			Phone:            rec.ClientPhone,
			Address:          rec.ClientAddress,
			GuarantorName:    rec.GuarantorName,
			GuarantorPhone:   rec.GuarantorPhone,
			GuarantorAddress: rec.GuarantorAddress,
		},
		Terms: models.SaleTerms{
			TotalAmount:         parseAmount(rec.TotalAmount),
			InitialPayment:      parseAmount(rec.InitialPayment),
			DurationMonths:      rec.DurationMonths,
			DueDayOfMonth:       rec.DueDayOfMonth,
			PaymentType:         models.PaymentType(rec.PaymentType),
			StartDate:           rec.StartDate,
			ReservationDeadline: rec.ReservationDeadline,
			BankName:            rec.BankName,
		},
		GeneratedText: rec.GeneratedText,
		GeneratedAt:   rec.GeneratedAt,
	}
	for _, row := range rec.Schedule {
		d.Schedule = append(d.Schedule, models.ScheduleEntry{
			MonthIndex: row.MonthIndex,
			DueDate:    row.DueDate,
			Amount:     parseAmount(row.Amount),
		})
	}
	return d
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
