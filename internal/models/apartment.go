package models

import "github.com/shopspring/decimal"

// UnknownLabel is the placeholder shown when an enrichment lookup failed
// or a record carries a value we do not recognise.
const UnknownLabel = "Noma'lum"

// ApartmentStatus mirrors the status values of the CRM API.
type ApartmentStatus string

const (
	StatusFree     ApartmentStatus = "bosh"
	StatusReserved ApartmentStatus = "band"
	StatusSold     ApartmentStatus = "sotilgan"
	StatusMortgage ApartmentStatus = "ipoteka"
)

var apartmentStatusLabels = map[ApartmentStatus]string{
	StatusFree:     "Bo'sh",
	StatusReserved: "Band qilingan",
	StatusSold:     "Sotilgan",
	StatusMortgage: "Ipoteka",
}

func (s ApartmentStatus) Valid() bool {
	_, ok := apartmentStatusLabels[s]
	return ok
}

// Label returns the display name for the status, "Noma'lum" for anything
// the CRM API sends that we do not know.
func (s ApartmentStatus) Label() string {
	if l, ok := apartmentStatusLabels[s]; ok {
		return l
	}
	return UnknownLabel
}

type Apartment struct {
	ID         int64           `json:"id"`
	ObjectID   int64           `json:"object"`
	ObjectName string          `json:"object_name,omitempty"`
	RoomNumber string          `json:"room_number"`
	Rooms      int             `json:"rooms"`
	Floor      int             `json:"floor"`
	Area       decimal.Decimal `json:"area"`
	Price      decimal.Decimal `json:"price"`
	Status     ApartmentStatus `json:"status"`
}
