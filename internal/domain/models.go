package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns an ID when the caller did not.
// Kept as a hook so the sqlite test driver behaves like Postgres.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TripStatus represents the operational status of a trip
type TripStatus string

const (
	TripStatusBooked    TripStatus = "Booked"
	TripStatusInTransit TripStatus = "In Transit"
	TripStatusDelivered TripStatus = "Delivered"
	TripStatusCompleted TripStatus = "Completed"
	TripStatusCancelled TripStatus = "Cancelled"
)

// IsValid reports whether the status is a known trip status
func (s TripStatus) IsValid() bool {
	switch s {
	case TripStatusBooked, TripStatusInTransit, TripStatusDelivered, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus represents the settlement state of one payment leg
type PaymentStatus string

const (
	PaymentNotStarted PaymentStatus = "Not Started"
	PaymentInitiated  PaymentStatus = "Initiated"
	PaymentPending    PaymentStatus = "Pending"
	PaymentPaid       PaymentStatus = "Paid"
)

// IsValid reports whether the status is a known payment status
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentNotStarted, PaymentInitiated, PaymentPending, PaymentPaid:
		return true
	}
	return false
}

// PaymentType identifies which supplier payment leg an operation targets
type PaymentType string

const (
	PaymentTypeAdvance PaymentType = "advance"
	PaymentTypeBalance PaymentType = "balance"
)

// IsValid reports whether the payment type is known
func (t PaymentType) IsValid() bool {
	return t == PaymentTypeAdvance || t == PaymentTypeBalance
}

// ChargeType classifies a charge as added to or deducted from the balance
type ChargeType string

const (
	ChargeTypeAdditional ChargeType = "additional"
	ChargeTypeDeduction  ChargeType = "deduction"
)

// ChargeAction records what happened to a charge in the audit trail
type ChargeAction string

const (
	ChargeActionAdd    ChargeAction = "add"
	ChargeActionModify ChargeAction = "modify"
	ChargeActionRemove ChargeAction = "remove"
)

// DeductionCategory is the bucket a deduction charge is aggregated under
type DeductionCategory string

const (
	DeductionCategoryLR            DeductionCategory = "lr"
	DeductionCategoryPlatform      DeductionCategory = "platform"
	DeductionCategoryMiscellaneous DeductionCategory = "miscellaneous"
)

// ClassifyDeduction buckets a deduction charge by its description.
// Case-insensitive substring match, first match wins: LR, then platform,
// everything else is miscellaneous.
func ClassifyDeduction(description string) DeductionCategory {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "lr"):
		return DeductionCategoryLR
	case strings.Contains(desc, "platform"):
		return DeductionCategoryPlatform
	default:
		return DeductionCategoryMiscellaneous
	}
}

// Material is one line item of the load being carried
type Material struct {
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	Unit      string  `json:"unit"`
	RatePerMT float64 `json:"ratePerMT,omitempty"`
}

// FieldOpsContact is the operations contact assigned to a trip
type FieldOpsContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Trip is the central entity: one freight shipment booking from a client
// through a supplier/vehicle to a destination, carrying the full payment
// workflow state.
type Trip struct {
	BaseModel
	OrderNumber string `gorm:"type:varchar(50);not null;uniqueIndex"`

	ClientID      *uuid.UUID `gorm:"type:uuid;index"`
	ClientName    string     `gorm:"type:varchar(200);not null"`
	SupplierID    *uuid.UUID `gorm:"type:uuid;index"`
	SupplierName  string     `gorm:"type:varchar(200);not null"`
	VehicleID     *uuid.UUID `gorm:"type:uuid;index"`
	VehicleNumber string     `gorm:"type:varchar(50)"`

	Source      string `gorm:"type:varchar(200)"`
	Destination string `gorm:"type:varchar(200)"`

	Materials  []Material      `gorm:"serializer:json"`
	FieldOps   FieldOpsContact `gorm:"serializer:json;column:field_ops"`
	PickupDate *time.Time
	PickupTime string `gorm:"type:varchar(10)"`
	Notes      string `gorm:"type:text"`

	ClientFreight          float64 `gorm:"not null;default:0"`
	SupplierFreight        float64 `gorm:"not null;default:0"`
	AdvancePercentage      float64 `gorm:"not null;default:30"`
	Margin                 float64 `gorm:"not null;default:0"`
	AdvanceSupplierFreight float64 `gorm:"not null;default:0"`
	BalanceSupplierFreight float64 `gorm:"not null;default:0"`

	Charges []TripCharge `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`

	TotalAdditionalCharges float64 `gorm:"not null;default:0"`
	TotalDeductionCharges  float64 `gorm:"not null;default:0"`
	LRCharges              float64 `gorm:"not null;default:0;column:lr_charges"`
	PlatformFees           float64 `gorm:"not null;default:0"`
	MiscellaneousCharges   float64 `gorm:"not null;default:0"`

	Status TripStatus `gorm:"type:varchar(20);not null;default:'Booked';index"`

	AdvancePaymentStatus      PaymentStatus `gorm:"type:varchar(20);not null;default:'Not Started';index"`
	BalancePaymentStatus      PaymentStatus `gorm:"type:varchar(20);not null;default:'Not Started';index"`
	AdvancePaymentInitiatedAt *time.Time
	AdvancePaymentCompletedAt *time.Time
	BalancePaymentInitiatedAt *time.Time
	BalancePaymentCompletedAt *time.Time
	PaymentDate               *time.Time
	UTRNumber                 string `gorm:"type:varchar(50);column:utr_number"`
	PaymentMethod             string `gorm:"type:varchar(50);default:'Bank Transfer'"`

	IsInAdvanceQueue bool `gorm:"not null;default:false;index"`
	IsInBalanceQueue bool `gorm:"not null;default:false;index"`

	PODUploaded bool       `gorm:"not null;default:false;column:pod_uploaded"`
	PODDate     *time.Time `gorm:"column:pod_date"`

	Documents      []TripDocument        `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	PaymentHistory []PaymentHistoryEntry `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	ChargesHistory []ChargesHistoryEntry `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`

	// Version guards read-modify-write sequences; every conditional update
	// increments it and fails when the loaded version is stale.
	Version int64 `gorm:"not null;default:0"`
}

// PODDocument returns the proof-of-delivery document, if one was uploaded
func (t *Trip) PODDocument() *TripDocument {
	for i := range t.Documents {
		if t.Documents[i].Type == DocumentTypePOD {
			return &t.Documents[i]
		}
	}
	return nil
}

// PaymentStatusFor returns the status of the given payment leg
func (t *Trip) PaymentStatusFor(pt PaymentType) PaymentStatus {
	if pt == PaymentTypeAdvance {
		return t.AdvancePaymentStatus
	}
	return t.BalancePaymentStatus
}

// AmountFor returns the supplier freight amount of the given payment leg
func (t *Trip) AmountFor(pt PaymentType) float64 {
	if pt == PaymentTypeAdvance {
		return t.AdvanceSupplierFreight
	}
	return t.BalanceSupplierFreight
}

// TripCharge is one current additional or deduction charge on a trip.
// Charge updates replace the full list; the audit trail lives in
// ChargesHistoryEntry.
type TripCharge struct {
	BaseModel
	TripID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ChargeType  ChargeType `gorm:"type:varchar(20);not null"`
	Description string     `gorm:"type:varchar(500);not null"`
	Amount      float64    `gorm:"not null"`
	Reason      string     `gorm:"type:varchar(500)"`
	AddedAt     time.Time  `gorm:"not null"`
	AddedBy     string     `gorm:"type:varchar(200);not null;default:'system'"`
	Position    int        `gorm:"not null;default:0"`
}

// PaymentHistoryEntry is one append-only audit record per payment-status
// change
type PaymentHistoryEntry struct {
	BaseModel
	TripID        uuid.UUID     `gorm:"type:uuid;not null;index"`
	PaymentType   PaymentType   `gorm:"type:varchar(20);not null"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null"`
	Amount        float64       `gorm:"not null"`
	Timestamp     time.Time     `gorm:"not null;index"`
	UTRNumber     string        `gorm:"type:varchar(50);column:utr_number"`
	PaymentMethod string        `gorm:"type:varchar(50)"`
	Notes         string        `gorm:"type:varchar(500)"`
}

func (PaymentHistoryEntry) TableName() string {
	return "trip_payment_history"
}

// ChargesHistoryEntry is one append-only audit record per charge
// add/modify/remove
type ChargesHistoryEntry struct {
	BaseModel
	TripID      uuid.UUID    `gorm:"type:uuid;not null;index"`
	Action      ChargeAction `gorm:"type:varchar(20);not null"`
	ChargeType  ChargeType   `gorm:"type:varchar(20);not null"`
	Description string       `gorm:"type:varchar(500);not null"`
	Amount      float64      `gorm:"not null"`
	Reason      string       `gorm:"type:varchar(500)"`
	Timestamp   time.Time    `gorm:"not null;index"`
	AddedBy     string       `gorm:"type:varchar(200)"`
}

func (ChargesHistoryEntry) TableName() string {
	return "trip_charges_history"
}

// DocumentType classifies an uploaded trip document
type DocumentType string

const (
	DocumentTypePOD      DocumentType = "POD"
	DocumentTypeLR       DocumentType = "LR"
	DocumentTypeInvoice  DocumentType = "Invoice"
	DocumentTypeEWayBill DocumentType = "E-Way Bill"
	DocumentTypeOther    DocumentType = "Other"
)

// TripDocument is an uploaded document attached to a trip
type TripDocument struct {
	BaseModel
	TripID         uuid.UUID    `gorm:"type:uuid;not null;index"`
	Type           DocumentType `gorm:"type:varchar(50);not null"`
	Filename       string       `gorm:"type:varchar(500);not null"`
	URL            string       `gorm:"type:varchar(1000);not null"`
	Number         string       `gorm:"type:varchar(100)"`
	UploadedAt     time.Time    `gorm:"not null"`
	IsDownloadable bool         `gorm:"not null;default:true"`
}

// Client is an organization that books freight
type Client struct {
	BaseModel
	Name          string `gorm:"type:varchar(200);not null;index"`
	Address       string `gorm:"type:varchar(500)"`
	City          string `gorm:"type:varchar(100)"`
	AddressType   string `gorm:"type:varchar(100)"`
	GSTNumber     string `gorm:"type:varchar(50);column:gst_number"`
	PANNumber     string `gorm:"type:varchar(50);column:pan_number"`
	ContactPerson string `gorm:"type:varchar(200)"`
	ContactPhone  string `gorm:"type:varchar(50)"`
	ContactEmail  string `gorm:"type:varchar(255)"`
	Trips         []Trip `gorm:"foreignKey:ClientID"`
}

// Supplier is a transporter that carries freight on its vehicles
type Supplier struct {
	BaseModel
	Name          string `gorm:"type:varchar(200);not null;index"`
	City          string `gorm:"type:varchar(100)"`
	Address       string `gorm:"type:varchar(500)"`
	ContactPerson string `gorm:"type:varchar(200)"`
	ContactPhone  string `gorm:"type:varchar(50)"`
	ContactEmail  string `gorm:"type:varchar(255)"`
	GSTNumber     string `gorm:"type:varchar(50);column:gst_number"`
	Trips         []Trip `gorm:"foreignKey:SupplierID"`
}

// Vehicle is a truck or trailer registered under a supplier
type Vehicle struct {
	BaseModel
	SupplierID     *uuid.UUID `gorm:"type:uuid;index"`
	RegistrationNo string     `gorm:"type:varchar(50);not null;uniqueIndex;column:registration_no"`
	VehicleType    string     `gorm:"type:varchar(100)"`
	VehicleSize    string     `gorm:"type:varchar(50)"`
	Capacity       string     `gorm:"type:varchar(50)"`
	AxleType       string     `gorm:"type:varchar(50)"`
	DriverName     string     `gorm:"type:varchar(200)"`
	DriverPhone    string     `gorm:"type:varchar(50)"`
	Trips          []Trip     `gorm:"foreignKey:VehicleID"`
}

// OrderSequence backs order-number generation. One row per year; the last
// used sequence is incremented atomically inside a transaction.
type OrderSequence struct {
	Year         int   `gorm:"primaryKey;autoIncrement:false"`
	LastSequence int64 `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
