package domain_test

import (
	"testing"

	"github.com/freightflow/booking-api/internal/domain"
)

// TestClassifyDeduction tests the deduction bucket mapping
func TestClassifyDeduction(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    domain.DeductionCategory
	}{
		{
			name:        "lr charges bucket to lr",
			description: "LR charges",
			expected:    domain.DeductionCategoryLR,
		},
		{
			name:        "lowercase lr copy matches",
			description: "missing lr copy",
			expected:    domain.DeductionCategoryLR,
		},
		{
			name:        "platform fee buckets to platform",
			description: "Platform fee",
			expected:    domain.DeductionCategoryPlatform,
		},
		{
			name:        "uppercase platform matches",
			description: "PLATFORM commission",
			expected:    domain.DeductionCategoryPlatform,
		},
		{
			name:        "lr wins over platform on first match",
			description: "LR platform adjustment",
			expected:    domain.DeductionCategoryLR,
		},
		{
			name:        "unknown description is miscellaneous",
			description: "Damage penalty",
			expected:    domain.DeductionCategoryMiscellaneous,
		},
		{
			name:        "empty description is miscellaneous",
			description: "",
			expected:    domain.DeductionCategoryMiscellaneous,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := domain.ClassifyDeduction(tc.description)
			if result != tc.expected {
				t.Errorf("ClassifyDeduction(%q) = %q, want %q", tc.description, result, tc.expected)
			}
		})
	}
}

// TestTripStatusIsValid tests the trip status validation
func TestTripStatusIsValid(t *testing.T) {
	valid := []domain.TripStatus{
		domain.TripStatusBooked,
		domain.TripStatusInTransit,
		domain.TripStatusDelivered,
		domain.TripStatusCompleted,
		domain.TripStatusCancelled,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	for _, s := range []domain.TripStatus{"", "booked", "Done"} {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

// TestPaymentStatusIsValid tests the payment status validation
func TestPaymentStatusIsValid(t *testing.T) {
	valid := []domain.PaymentStatus{
		domain.PaymentNotStarted,
		domain.PaymentInitiated,
		domain.PaymentPending,
		domain.PaymentPaid,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	for _, s := range []domain.PaymentStatus{"", "paid", "Completed"} {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

// TestTripLegAccessors tests the per-leg helpers
func TestTripLegAccessors(t *testing.T) {
	trip := &domain.Trip{
		AdvancePaymentStatus:   domain.PaymentPaid,
		BalancePaymentStatus:   domain.PaymentPending,
		AdvanceSupplierFreight: 24000,
		BalanceSupplierFreight: 56000,
	}

	if got := trip.PaymentStatusFor(domain.PaymentTypeAdvance); got != domain.PaymentPaid {
		t.Errorf("advance status = %q, want Paid", got)
	}
	if got := trip.PaymentStatusFor(domain.PaymentTypeBalance); got != domain.PaymentPending {
		t.Errorf("balance status = %q, want Pending", got)
	}
	if got := trip.AmountFor(domain.PaymentTypeAdvance); got != 24000 {
		t.Errorf("advance amount = %v, want 24000", got)
	}
	if got := trip.AmountFor(domain.PaymentTypeBalance); got != 56000 {
		t.Errorf("balance amount = %v, want 56000", got)
	}
}

// TestTripPODDocument tests POD lookup among trip documents
func TestTripPODDocument(t *testing.T) {
	trip := &domain.Trip{
		Documents: []domain.TripDocument{
			{Type: domain.DocumentTypeLR, Filename: "lr.pdf"},
			{Type: domain.DocumentTypePOD, Filename: "pod.pdf"},
		},
	}

	doc := trip.PODDocument()
	if doc == nil || doc.Filename != "pod.pdf" {
		t.Errorf("PODDocument() = %v, want pod.pdf", doc)
	}

	empty := &domain.Trip{}
	if empty.PODDocument() != nil {
		t.Error("expected nil POD document for trip without documents")
	}
}
