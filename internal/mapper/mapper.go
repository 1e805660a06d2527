package mapper

import (
	"github.com/freightflow/booking-api/internal/domain"
)

// ToTripDTO converts Trip to TripDTO
func ToTripDTO(trip *domain.Trip) domain.TripDTO {
	additional := make([]domain.ChargeDTO, 0)
	deductions := make([]domain.ChargeDTO, 0)
	for i := range trip.Charges {
		c := &trip.Charges[i]
		if c.ChargeType == domain.ChargeTypeAdditional {
			additional = append(additional, ToChargeDTO(c))
		} else {
			deductions = append(deductions, ToChargeDTO(c))
		}
	}

	documents := make([]domain.TripDocumentDTO, len(trip.Documents))
	for i := range trip.Documents {
		documents[i] = ToTripDocumentDTO(&trip.Documents[i])
	}

	paymentHistory := make([]domain.PaymentHistoryDTO, len(trip.PaymentHistory))
	for i := range trip.PaymentHistory {
		paymentHistory[i] = ToPaymentHistoryDTO(&trip.PaymentHistory[i])
	}

	chargesHistory := make([]domain.ChargesHistoryDTO, len(trip.ChargesHistory))
	for i := range trip.ChargesHistory {
		chargesHistory[i] = ToChargesHistoryDTO(&trip.ChargesHistory[i])
	}

	dto := domain.TripDTO{
		ID:          trip.ID,
		OrderNumber: trip.OrderNumber,

		ClientID:      trip.ClientID,
		ClientName:    trip.ClientName,
		SupplierID:    trip.SupplierID,
		SupplierName:  trip.SupplierName,
		VehicleID:     trip.VehicleID,
		VehicleNumber: trip.VehicleNumber,

		Source:      trip.Source,
		Destination: trip.Destination,

		Materials:  trip.Materials,
		FieldOps:   trip.FieldOps,
		PickupDate: trip.PickupDate,
		PickupTime: trip.PickupTime,
		Notes:      trip.Notes,

		ClientFreight:          trip.ClientFreight,
		SupplierFreight:        trip.SupplierFreight,
		AdvancePercentage:      trip.AdvancePercentage,
		Margin:                 trip.Margin,
		AdvanceSupplierFreight: trip.AdvanceSupplierFreight,
		BalanceSupplierFreight: trip.BalanceSupplierFreight,

		AdditionalCharges: additional,
		DeductionCharges:  deductions,

		TotalAdditionalCharges: trip.TotalAdditionalCharges,
		TotalDeductionCharges:  trip.TotalDeductionCharges,
		LRCharges:              trip.LRCharges,
		PlatformFees:           trip.PlatformFees,
		MiscellaneousCharges:   trip.MiscellaneousCharges,

		Status: trip.Status,

		AdvancePaymentStatus:      trip.AdvancePaymentStatus,
		BalancePaymentStatus:      trip.BalancePaymentStatus,
		AdvancePaymentInitiatedAt: trip.AdvancePaymentInitiatedAt,
		AdvancePaymentCompletedAt: trip.AdvancePaymentCompletedAt,
		BalancePaymentInitiatedAt: trip.BalancePaymentInitiatedAt,
		BalancePaymentCompletedAt: trip.BalancePaymentCompletedAt,
		PaymentDate:               trip.PaymentDate,
		UTRNumber:                 trip.UTRNumber,
		PaymentMethod:             trip.PaymentMethod,

		IsInAdvanceQueue: trip.IsInAdvanceQueue,
		IsInBalanceQueue: trip.IsInBalanceQueue,

		PODUploaded: trip.PODUploaded,
		PODDate:     trip.PODDate,
		Documents:   documents,

		PaymentHistory: paymentHistory,
		ChargesHistory: chargesHistory,

		CreatedAt: trip.CreatedAt,
		UpdatedAt: trip.UpdatedAt,
	}

	if pod := trip.PODDocument(); pod != nil {
		podDTO := ToTripDocumentDTO(pod)
		dto.PODDocument = &podDTO
	}

	if dto.Materials == nil {
		dto.Materials = []domain.Material{}
	}

	return dto
}

// ToChargeDTO converts TripCharge to ChargeDTO
func ToChargeDTO(charge *domain.TripCharge) domain.ChargeDTO {
	return domain.ChargeDTO{
		Description: charge.Description,
		Amount:      charge.Amount,
		Reason:      charge.Reason,
		AddedAt:     charge.AddedAt,
		AddedBy:     charge.AddedBy,
	}
}

// ToTripDocumentDTO converts TripDocument to TripDocumentDTO
func ToTripDocumentDTO(doc *domain.TripDocument) domain.TripDocumentDTO {
	return domain.TripDocumentDTO{
		ID:             doc.ID,
		Type:           doc.Type,
		Filename:       doc.Filename,
		URL:            doc.URL,
		Number:         doc.Number,
		UploadedAt:     doc.UploadedAt,
		IsDownloadable: doc.IsDownloadable,
	}
}

// ToPaymentHistoryDTO converts PaymentHistoryEntry to PaymentHistoryDTO
func ToPaymentHistoryDTO(entry *domain.PaymentHistoryEntry) domain.PaymentHistoryDTO {
	return domain.PaymentHistoryDTO{
		PaymentType:   entry.PaymentType,
		Status:        entry.Status,
		Amount:        entry.Amount,
		Timestamp:     entry.Timestamp,
		UTRNumber:     entry.UTRNumber,
		PaymentMethod: entry.PaymentMethod,
		Notes:         entry.Notes,
	}
}

// ToChargesHistoryDTO converts ChargesHistoryEntry to ChargesHistoryDTO
func ToChargesHistoryDTO(entry *domain.ChargesHistoryEntry) domain.ChargesHistoryDTO {
	return domain.ChargesHistoryDTO{
		Action:      entry.Action,
		ChargeType:  entry.ChargeType,
		Description: entry.Description,
		Amount:      entry.Amount,
		Reason:      entry.Reason,
		Timestamp:   entry.Timestamp,
		AddedBy:     entry.AddedBy,
	}
}

// ToQueueEntryDTO converts a trip into its payment-queue projection
func ToQueueEntryDTO(trip *domain.Trip, paymentType domain.PaymentType) domain.QueueEntryDTO {
	return domain.QueueEntryDTO{
		ID:            trip.ID,
		OrderNumber:   trip.OrderNumber,
		ClientName:    trip.ClientName,
		SupplierName:  trip.SupplierName,
		VehicleNumber: trip.VehicleNumber,
		PaymentType:   paymentType,
		Amount:        trip.AmountFor(paymentType),
		PaymentStatus: trip.PaymentStatusFor(paymentType),
		PODUploaded:   trip.PODUploaded,
		CreatedAt:     trip.CreatedAt,
		PODDate:       trip.PODDate,
	}
}

// ToClientDTO converts Client to ClientDTO
func ToClientDTO(client *domain.Client) domain.ClientDTO {
	return domain.ClientDTO{
		ID:            client.ID,
		Name:          client.Name,
		Address:       client.Address,
		City:          client.City,
		AddressType:   client.AddressType,
		GSTNumber:     client.GSTNumber,
		PANNumber:     client.PANNumber,
		ContactPerson: client.ContactPerson,
		ContactPhone:  client.ContactPhone,
		ContactEmail:  client.ContactEmail,
		CreatedAt:     client.CreatedAt,
		UpdatedAt:     client.UpdatedAt,
	}
}

// ToSupplierDTO converts Supplier to SupplierDTO
func ToSupplierDTO(supplier *domain.Supplier) domain.SupplierDTO {
	return domain.SupplierDTO{
		ID:            supplier.ID,
		Name:          supplier.Name,
		City:          supplier.City,
		Address:       supplier.Address,
		ContactPerson: supplier.ContactPerson,
		ContactPhone:  supplier.ContactPhone,
		ContactEmail:  supplier.ContactEmail,
		GSTNumber:     supplier.GSTNumber,
		CreatedAt:     supplier.CreatedAt,
		UpdatedAt:     supplier.UpdatedAt,
	}
}

// ToVehicleDTO converts Vehicle to VehicleDTO
func ToVehicleDTO(vehicle *domain.Vehicle) domain.VehicleDTO {
	return domain.VehicleDTO{
		ID:             vehicle.ID,
		SupplierID:     vehicle.SupplierID,
		RegistrationNo: vehicle.RegistrationNo,
		VehicleType:    vehicle.VehicleType,
		VehicleSize:    vehicle.VehicleSize,
		Capacity:       vehicle.Capacity,
		AxleType:       vehicle.AxleType,
		DriverName:     vehicle.DriverName,
		DriverPhone:    vehicle.DriverPhone,
		CreatedAt:      vehicle.CreatedAt,
		UpdatedAt:      vehicle.UpdatedAt,
	}
}
