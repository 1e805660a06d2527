package domain

import (
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

// CreateTripRequest carries everything needed to book a trip
type CreateTripRequest struct {
	ClientID      *uuid.UUID `json:"clientId"`
	ClientName    string     `json:"clientName" validate:"required,max=200"`
	SupplierID    *uuid.UUID `json:"supplierId"`
	SupplierName  string     `json:"supplierName" validate:"required,max=200"`
	VehicleID     *uuid.UUID `json:"vehicleId"`
	VehicleNumber string     `json:"vehicleNumber" validate:"max=50"`

	Source      string `json:"source" validate:"max=200"`
	Destination string `json:"destination" validate:"max=200"`

	Materials  []Material       `json:"materials"`
	FieldOps   *FieldOpsContact `json:"fieldOps"`
	PickupDate *time.Time       `json:"pickupDate"`
	PickupTime string           `json:"pickupTime" validate:"max=10"`
	Notes      string           `json:"notes"`

	ClientFreight     float64  `json:"clientFreight" validate:"gte=0"`
	SupplierFreight   float64  `json:"supplierFreight" validate:"gte=0"`
	AdvancePercentage *float64 `json:"advancePercentage" validate:"omitempty,gte=0,lte=100"`
	// Margin overrides the derived clientFreight - supplierFreight when set
	Margin *float64 `json:"margin"`
}

// UpdateTripRequest is the generic partial update; nil fields are untouched.
// Payment state is deliberately absent: it only moves through the payment
// operations.
type UpdateTripRequest struct {
	ClientID      *uuid.UUID `json:"clientId"`
	ClientName    *string    `json:"clientName" validate:"omitempty,max=200"`
	SupplierID    *uuid.UUID `json:"supplierId"`
	SupplierName  *string    `json:"supplierName" validate:"omitempty,max=200"`
	VehicleID     *uuid.UUID `json:"vehicleId"`
	VehicleNumber *string    `json:"vehicleNumber" validate:"omitempty,max=50"`

	Source      *string `json:"source" validate:"omitempty,max=200"`
	Destination *string `json:"destination" validate:"omitempty,max=200"`

	Materials  []Material       `json:"materials"`
	FieldOps   *FieldOpsContact `json:"fieldOps"`
	PickupDate *time.Time       `json:"pickupDate"`
	PickupTime *string          `json:"pickupTime" validate:"omitempty,max=10"`
	Notes      *string          `json:"notes"`

	ClientFreight     *float64 `json:"clientFreight" validate:"omitempty,gte=0"`
	SupplierFreight   *float64 `json:"supplierFreight" validate:"omitempty,gte=0"`
	AdvancePercentage *float64 `json:"advancePercentage" validate:"omitempty,gte=0,lte=100"`
}

// UpdatePaymentStatusRequest is the granular payment update: either or both
// legs in one call
type UpdatePaymentStatusRequest struct {
	AdvancePaymentStatus *PaymentStatus `json:"advancePaymentStatus" validate:"omitempty,oneof='Not Started' Initiated Pending Paid"`
	BalancePaymentStatus *PaymentStatus `json:"balancePaymentStatus" validate:"omitempty,oneof='Not Started' Initiated Pending Paid"`
	UTRNumber            string         `json:"utrNumber" validate:"max=50"`
	PaymentMethod        string         `json:"paymentMethod" validate:"max=50"`
}

// ProcessPaymentRequest is the coarse payment update with an explicit leg
type ProcessPaymentRequest struct {
	PaymentType   PaymentType   `json:"paymentType" validate:"required,oneof=advance balance"`
	PaymentStatus PaymentStatus `json:"paymentStatus" validate:"required,oneof=Initiated Pending Paid"`
	UTRNumber     string        `json:"utrNumber" validate:"max=50"`
	PaymentMethod string        `json:"paymentMethod" validate:"max=50"`
	Notes         string        `json:"notes" validate:"max=500"`
}

// UploadPODRequest carries proof-of-delivery document metadata
type UploadPODRequest struct {
	Filename string `json:"filename" validate:"required,max=500"`
	URL      string `json:"url" validate:"required,max=1000"`
}

// UploadDocumentRequest attaches an arbitrary document to a trip
type UploadDocumentRequest struct {
	Type     DocumentType `json:"type" validate:"required"`
	URL      string       `json:"url" validate:"required,max=1000"`
	Filename string       `json:"filename" validate:"max=500"`
	Number   string       `json:"number" validate:"max=100"`
}

// ChargeInput is one charge in a replacement list
type ChargeInput struct {
	Description string  `json:"description" validate:"required,max=500"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Reason      string  `json:"reason" validate:"max=500"`
}

// UpdateChargesRequest replaces the full additional and deduction charge
// lists. NewBalanceAmount overrides the recomputed balance when set.
type UpdateChargesRequest struct {
	AdditionalCharges []ChargeInput `json:"additionalCharges" validate:"dive"`
	DeductionCharges  []ChargeInput `json:"deductionCharges" validate:"dive"`
	NewBalanceAmount  *float64      `json:"newBalanceAmount" validate:"omitempty,gte=0"`
	Reason            string        `json:"reason" validate:"max=500"`
	AddedBy           string        `json:"addedBy" validate:"max=200"`
}

// UpdateTripStatusRequest moves a trip to a target operational status
type UpdateTripStatusRequest struct {
	Status TripStatus `json:"status" validate:"required,oneof=Booked 'In Transit' Delivered Completed Cancelled"`
}

// CreateClientRequest creates a client organization
type CreateClientRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Address       string `json:"address" validate:"max=500"`
	City          string `json:"city" validate:"max=100"`
	AddressType   string `json:"addressType" validate:"max=100"`
	GSTNumber     string `json:"gstNumber" validate:"max=50"`
	PANNumber     string `json:"panNumber" validate:"max=50"`
	ContactPerson string `json:"contactPerson" validate:"max=200"`
	ContactPhone  string `json:"contactPhone" validate:"max=50"`
	ContactEmail  string `json:"contactEmail" validate:"omitempty,email"`
}

// UpdateClientRequest partially updates a client
type UpdateClientRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=200"`
	Address       *string `json:"address" validate:"omitempty,max=500"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	AddressType   *string `json:"addressType" validate:"omitempty,max=100"`
	GSTNumber     *string `json:"gstNumber" validate:"omitempty,max=50"`
	PANNumber     *string `json:"panNumber" validate:"omitempty,max=50"`
	ContactPerson *string `json:"contactPerson" validate:"omitempty,max=200"`
	ContactPhone  *string `json:"contactPhone" validate:"omitempty,max=50"`
	ContactEmail  *string `json:"contactEmail" validate:"omitempty,email"`
}

// CreateSupplierRequest creates a supplier (transporter)
type CreateSupplierRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	City          string `json:"city" validate:"max=100"`
	Address       string `json:"address" validate:"max=500"`
	ContactPerson string `json:"contactPerson" validate:"max=200"`
	ContactPhone  string `json:"contactPhone" validate:"max=50"`
	ContactEmail  string `json:"contactEmail" validate:"omitempty,email"`
	GSTNumber     string `json:"gstNumber" validate:"max=50"`
}

// UpdateSupplierRequest partially updates a supplier
type UpdateSupplierRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=200"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	Address       *string `json:"address" validate:"omitempty,max=500"`
	ContactPerson *string `json:"contactPerson" validate:"omitempty,max=200"`
	ContactPhone  *string `json:"contactPhone" validate:"omitempty,max=50"`
	ContactEmail  *string `json:"contactEmail" validate:"omitempty,email"`
	GSTNumber     *string `json:"gstNumber" validate:"omitempty,max=50"`
}

// CreateVehicleRequest registers a vehicle
type CreateVehicleRequest struct {
	SupplierID     *uuid.UUID `json:"supplierId"`
	RegistrationNo string     `json:"registrationNo" validate:"required,max=50"`
	VehicleType    string     `json:"vehicleType" validate:"max=100"`
	VehicleSize    string     `json:"vehicleSize" validate:"max=50"`
	Capacity       string     `json:"capacity" validate:"max=50"`
	AxleType       string     `json:"axleType" validate:"max=50"`
	DriverName     string     `json:"driverName" validate:"max=200"`
	DriverPhone    string     `json:"driverPhone" validate:"max=50"`
}

// UpdateVehicleRequest partially updates a vehicle
type UpdateVehicleRequest struct {
	SupplierID     *uuid.UUID `json:"supplierId"`
	RegistrationNo *string    `json:"registrationNo" validate:"omitempty,max=50"`
	VehicleType    *string    `json:"vehicleType" validate:"omitempty,max=100"`
	VehicleSize    *string    `json:"vehicleSize" validate:"omitempty,max=50"`
	Capacity       *string    `json:"capacity" validate:"omitempty,max=50"`
	AxleType       *string    `json:"axleType" validate:"omitempty,max=50"`
	DriverName     *string    `json:"driverName" validate:"omitempty,max=200"`
	DriverPhone    *string    `json:"driverPhone" validate:"omitempty,max=50"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

// TripDTO is the API representation of a trip
type TripDTO struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"orderNumber"`

	ClientID      *uuid.UUID `json:"clientId,omitempty"`
	ClientName    string     `json:"clientName"`
	SupplierID    *uuid.UUID `json:"supplierId,omitempty"`
	SupplierName  string     `json:"supplierName"`
	VehicleID     *uuid.UUID `json:"vehicleId,omitempty"`
	VehicleNumber string     `json:"vehicleNumber,omitempty"`

	Source      string `json:"source,omitempty"`
	Destination string `json:"destination,omitempty"`

	Materials  []Material      `json:"materials"`
	FieldOps   FieldOpsContact `json:"fieldOps"`
	PickupDate *time.Time      `json:"pickupDate,omitempty"`
	PickupTime string          `json:"pickupTime,omitempty"`
	Notes      string          `json:"notes,omitempty"`

	ClientFreight          float64 `json:"clientFreight"`
	SupplierFreight        float64 `json:"supplierFreight"`
	AdvancePercentage      float64 `json:"advancePercentage"`
	Margin                 float64 `json:"margin"`
	AdvanceSupplierFreight float64 `json:"advanceSupplierFreight"`
	BalanceSupplierFreight float64 `json:"balanceSupplierFreight"`

	AdditionalCharges []ChargeDTO `json:"additionalCharges"`
	DeductionCharges  []ChargeDTO `json:"deductionCharges"`

	TotalAdditionalCharges float64 `json:"totalAdditionalCharges"`
	TotalDeductionCharges  float64 `json:"totalDeductionCharges"`
	LRCharges              float64 `json:"lrCharges"`
	PlatformFees           float64 `json:"platformFees"`
	MiscellaneousCharges   float64 `json:"miscellaneousCharges"`

	Status TripStatus `json:"status"`

	AdvancePaymentStatus      PaymentStatus `json:"advancePaymentStatus"`
	BalancePaymentStatus      PaymentStatus `json:"balancePaymentStatus"`
	AdvancePaymentInitiatedAt *time.Time    `json:"advancePaymentInitiatedAt,omitempty"`
	AdvancePaymentCompletedAt *time.Time    `json:"advancePaymentCompletedAt,omitempty"`
	BalancePaymentInitiatedAt *time.Time    `json:"balancePaymentInitiatedAt,omitempty"`
	BalancePaymentCompletedAt *time.Time    `json:"balancePaymentCompletedAt,omitempty"`
	PaymentDate               *time.Time    `json:"paymentDate,omitempty"`
	UTRNumber                 string        `json:"utrNumber,omitempty"`
	PaymentMethod             string        `json:"paymentMethod,omitempty"`

	IsInAdvanceQueue bool `json:"isInAdvanceQueue"`
	IsInBalanceQueue bool `json:"isInBalanceQueue"`

	PODUploaded bool              `json:"podUploaded"`
	PODDate     *time.Time        `json:"podDate,omitempty"`
	PODDocument *TripDocumentDTO  `json:"podDocument,omitempty"`
	Documents   []TripDocumentDTO `json:"documents"`

	PaymentHistory []PaymentHistoryDTO `json:"paymentHistory"`
	ChargesHistory []ChargesHistoryDTO `json:"chargesHistory"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ChargeDTO is the API representation of one charge
type ChargeDTO struct {
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Reason      string    `json:"reason,omitempty"`
	AddedAt     time.Time `json:"addedAt"`
	AddedBy     string    `json:"addedBy"`
}

// TripDocumentDTO is the API representation of an uploaded document
type TripDocumentDTO struct {
	ID             uuid.UUID    `json:"id"`
	Type           DocumentType `json:"type"`
	Filename       string       `json:"filename"`
	URL            string       `json:"url"`
	Number         string       `json:"number,omitempty"`
	UploadedAt     time.Time    `json:"uploadedAt"`
	IsDownloadable bool         `json:"isDownloadable"`
}

// PaymentHistoryDTO is one audit entry of the payment trail
type PaymentHistoryDTO struct {
	PaymentType   PaymentType   `json:"paymentType"`
	Status        PaymentStatus `json:"status"`
	Amount        float64       `json:"amount"`
	Timestamp     time.Time     `json:"timestamp"`
	UTRNumber     string        `json:"utrNumber,omitempty"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// ChargesHistoryDTO is one audit entry of the charges trail
type ChargesHistoryDTO struct {
	Action      ChargeAction `json:"action"`
	ChargeType  ChargeType   `json:"chargeType"`
	Description string       `json:"description"`
	Amount      float64      `json:"amount"`
	Reason      string       `json:"reason,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
	AddedBy     string       `json:"addedBy,omitempty"`
}

// QueueEntryDTO is the trimmed trip projection shown in payment queues
type QueueEntryDTO struct {
	ID            uuid.UUID     `json:"id"`
	OrderNumber   string        `json:"orderNumber"`
	ClientName    string        `json:"clientName"`
	SupplierName  string        `json:"supplierName"`
	VehicleNumber string        `json:"vehicleNumber,omitempty"`
	PaymentType   PaymentType   `json:"paymentType"`
	Amount        float64       `json:"amount"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PODUploaded   bool          `json:"podUploaded"`
	CreatedAt     time.Time     `json:"createdAt"`
	PODDate       *time.Time    `json:"podDate,omitempty"`
}

// StatusCountsDTO aggregates trip counts for the dashboard
type StatusCountsDTO struct {
	TotalTrips             int64 `json:"totalTrips"`
	BookedTrips            int64 `json:"bookedTrips"`
	InTransitTrips         int64 `json:"inTransitTrips"`
	CompletedTrips         int64 `json:"completedTrips"`
	PendingAdvancePayments int64 `json:"pendingAdvancePayments"`
	PendingBalancePayments int64 `json:"pendingBalancePayments"`
}

// PaymentStatsDTO summarizes payment-queue load
type PaymentStatsDTO struct {
	AdvanceQueue int64     `json:"advanceQueue"`
	BalanceQueue int64     `json:"balanceQueue"`
	TotalPending int64     `json:"totalPending"`
	TotalPaid    int64     `json:"totalPaid"`
	Timestamp    time.Time `json:"timestamp"`
}

// ClientDTO is the API representation of a client
type ClientDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address,omitempty"`
	City          string    `json:"city,omitempty"`
	AddressType   string    `json:"addressType,omitempty"`
	GSTNumber     string    `json:"gstNumber,omitempty"`
	PANNumber     string    `json:"panNumber,omitempty"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	ContactPhone  string    `json:"contactPhone,omitempty"`
	ContactEmail  string    `json:"contactEmail,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SupplierDTO is the API representation of a supplier
type SupplierDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	City          string    `json:"city,omitempty"`
	Address       string    `json:"address,omitempty"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	ContactPhone  string    `json:"contactPhone,omitempty"`
	ContactEmail  string    `json:"contactEmail,omitempty"`
	GSTNumber     string    `json:"gstNumber,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// VehicleDTO is the API representation of a vehicle
type VehicleDTO struct {
	ID             uuid.UUID  `json:"id"`
	SupplierID     *uuid.UUID `json:"supplierId,omitempty"`
	RegistrationNo string     `json:"registrationNo"`
	VehicleType    string     `json:"vehicleType,omitempty"`
	VehicleSize    string     `json:"vehicleSize,omitempty"`
	Capacity       string     `json:"capacity,omitempty"`
	AxleType       string     `json:"axleType,omitempty"`
	DriverName     string     `json:"driverName,omitempty"`
	DriverPhone    string     `json:"driverPhone,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// PaginatedResponse wraps list endpoints
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}
