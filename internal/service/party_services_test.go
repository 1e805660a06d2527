package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/repository"
	"github.com/freightflow/booking-api/internal/service"
	"github.com/freightflow/booking-api/internal/testutil"
)

func strPtr(s string) *string { return &s }

func newPartyFixture(t *testing.T) (*service.ClientService, *service.SupplierService, *service.VehicleService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	log := testutil.NewTestLogger()
	clients := service.NewClientService(repository.NewClientRepository(db), log)
	suppliers := service.NewSupplierService(repository.NewSupplierRepository(db), log)
	vehicles := service.NewVehicleService(repository.NewVehicleRepository(db), log)
	return clients, suppliers, vehicles, db
}

func TestClientLifecycle(t *testing.T) {
	clients, _, _, _ := newPartyFixture(t)
	ctx := context.Background()

	created, err := clients.CreateClient(ctx, &domain.CreateClientRequest{
		Name:         "Acme Industries",
		City:         "Pune",
		GSTNumber:    "27AAACA1234A1Z5",
		ContactEmail: "dispatch@acme.example.com",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	fetched, err := clients.GetClient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Industries", fetched.Name)

	updated, err := clients.UpdateClient(ctx, created.ID, &domain.UpdateClientRequest{
		City:          strPtr("Mumbai"),
		ContactPerson: strPtr("R. Deshmukh"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", updated.City)
	assert.Equal(t, "R. Deshmukh", updated.ContactPerson)
	// Untouched fields survive a partial update
	assert.Equal(t, "27AAACA1234A1Z5", updated.GSTNumber)

	require.NoError(t, clients.DeleteClient(ctx, created.ID))
	_, err = clients.GetClient(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrClientNotFound)
}

func TestClientNotFound(t *testing.T) {
	clients, _, _, _ := newPartyFixture(t)
	ctx := context.Background()

	_, err := clients.GetClient(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrClientNotFound)

	_, err = clients.UpdateClient(ctx, uuid.New(), &domain.UpdateClientRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, service.ErrClientNotFound)

	assert.ErrorIs(t, clients.DeleteClient(ctx, uuid.New()), service.ErrClientNotFound)
}

func TestListClientsSearchAndPagination(t *testing.T) {
	clients, _, _, _ := newPartyFixture(t)
	ctx := context.Background()

	for _, name := range []string{"Acme Industries", "Acme Chemicals", "Zenith Steel"} {
		_, err := clients.CreateClient(ctx, &domain.CreateClientRequest{Name: name})
		require.NoError(t, err)
	}

	page, err := clients.ListClients(ctx, 1, 20, "acme")
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	page, err = clients.ListClients(ctx, 1, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Data.([]domain.ClientDTO), 2)
}

func TestSupplierLifecycle(t *testing.T) {
	_, suppliers, _, _ := newPartyFixture(t)
	ctx := context.Background()

	created, err := suppliers.CreateSupplier(ctx, &domain.CreateSupplierRequest{
		Name: "Sharma Transport",
		City: "Nagpur",
	})
	require.NoError(t, err)

	updated, err := suppliers.UpdateSupplier(ctx, created.ID, &domain.UpdateSupplierRequest{
		ContactPhone: strPtr("+91-9800000000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "+91-9800000000", updated.ContactPhone)
	assert.Equal(t, "Nagpur", updated.City)

	require.NoError(t, suppliers.DeleteSupplier(ctx, created.ID))
	_, err = suppliers.GetSupplier(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrSupplierNotFound)
}

func TestVehicleLifecycle(t *testing.T) {
	_, suppliers, vehicles, _ := newPartyFixture(t)
	ctx := context.Background()

	supplier, err := suppliers.CreateSupplier(ctx, &domain.CreateSupplierRequest{Name: "Sharma Transport"})
	require.NoError(t, err)

	created, err := vehicles.CreateVehicle(ctx, &domain.CreateVehicleRequest{
		SupplierID:     &supplier.ID,
		RegistrationNo: "MH12AB1234",
		VehicleType:    "Container",
		Capacity:       "20T",
		DriverName:     "S. Yadav",
	})
	require.NoError(t, err)
	require.NotNil(t, created.SupplierID)
	assert.Equal(t, supplier.ID, *created.SupplierID)

	updated, err := vehicles.UpdateVehicle(ctx, created.ID, &domain.UpdateVehicleRequest{
		DriverPhone: strPtr("+91-9811111111"),
	})
	require.NoError(t, err)
	assert.Equal(t, "+91-9811111111", updated.DriverPhone)
	assert.Equal(t, "MH12AB1234", updated.RegistrationNo)

	// Listing scoped to the supplier finds the vehicle
	page, err := vehicles.ListVehicles(ctx, 1, 20, &supplier.ID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	other := uuid.New()
	page, err = vehicles.ListVehicles(ctx, 1, 20, &other, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)

	require.NoError(t, vehicles.DeleteVehicle(ctx, created.ID))
	_, err = vehicles.GetVehicle(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrVehicleNotFound)
}

func TestDashboardStatusCounts(t *testing.T) {
	tripSvc, docSvc, db := newPaymentFixture(t)
	dashboard := service.NewDashboardService(repository.NewTripRepository(db), testutil.NewTestLogger())
	ctx := context.Background()

	bookTrip(t, tripSvc, nil)

	moving := bookTrip(t, tripSvc, nil)
	_, err := tripSvc.ProcessPayment(ctx, moving.OrderNumber, &domain.ProcessPaymentRequest{
		PaymentType:   domain.PaymentTypeAdvance,
		PaymentStatus: domain.PaymentPaid,
	})
	require.NoError(t, err)
	uploadPOD(t, docSvc, moving.OrderNumber)

	counts, err := dashboard.StatusCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.TotalTrips)
	assert.Equal(t, int64(1), counts.BookedTrips)
	assert.Equal(t, int64(1), counts.InTransitTrips)
	assert.Equal(t, int64(1), counts.PendingAdvancePayments)
	assert.Equal(t, int64(1), counts.PendingBalancePayments)
}
