package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/freightflow/booking-api/internal/domain"
	"github.com/freightflow/booking-api/internal/mapper"
	"github.com/freightflow/booking-api/internal/repository"
)

// VehicleService handles vehicle CRUD
type VehicleService struct {
	vehicleRepo *repository.VehicleRepository
	logger      *zap.Logger
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(vehicleRepo *repository.VehicleRepository, logger *zap.Logger) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// CreateVehicle registers a new vehicle
func (s *VehicleService) CreateVehicle(ctx context.Context, req *domain.CreateVehicleRequest) (*domain.VehicleDTO, error) {
	vehicle := &domain.Vehicle{
		SupplierID:     req.SupplierID,
		RegistrationNo: req.RegistrationNo,
		VehicleType:    req.VehicleType,
		VehicleSize:    req.VehicleSize,
		Capacity:       req.Capacity,
		AxleType:       req.AxleType,
		DriverName:     req.DriverName,
		DriverPhone:    req.DriverPhone,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.logger.Info("Vehicle created",
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.String("registration_no", vehicle.RegistrationNo),
	)

	dto := mapper.ToVehicleDTO(vehicle)
	return &dto, nil
}

// GetVehicle returns a vehicle by ID
func (s *VehicleService) GetVehicle(ctx context.Context, id uuid.UUID) (*domain.VehicleDTO, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	dto := mapper.ToVehicleDTO(vehicle)
	return &dto, nil
}

// UpdateVehicle partially updates a vehicle
func (s *VehicleService) UpdateVehicle(ctx context.Context, id uuid.UUID, req *domain.UpdateVehicleRequest) (*domain.VehicleDTO, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if req.SupplierID != nil {
		vehicle.SupplierID = req.SupplierID
	}
	if req.RegistrationNo != nil {
		vehicle.RegistrationNo = *req.RegistrationNo
	}
	if req.VehicleType != nil {
		vehicle.VehicleType = *req.VehicleType
	}
	if req.VehicleSize != nil {
		vehicle.VehicleSize = *req.VehicleSize
	}
	if req.Capacity != nil {
		vehicle.Capacity = *req.Capacity
	}
	if req.AxleType != nil {
		vehicle.AxleType = *req.AxleType
	}
	if req.DriverName != nil {
		vehicle.DriverName = *req.DriverName
	}
	if req.DriverPhone != nil {
		vehicle.DriverPhone = *req.DriverPhone
	}

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}

	dto := mapper.ToVehicleDTO(vehicle)
	return &dto, nil
}

// DeleteVehicle removes a vehicle
func (s *VehicleService) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	if _, err := s.vehicleRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("failed to get vehicle: %w", err)
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}

// ListVehicles returns vehicles with pagination, optionally filtered by
// supplier
func (s *VehicleService) ListVehicles(ctx context.Context, page, pageSize int, supplierID *uuid.UUID, search string) (*domain.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	vehicles, total, err := s.vehicleRepo.List(ctx, page, pageSize, supplierID, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	dtos := make([]domain.VehicleDTO, len(vehicles))
	for i := range vehicles {
		dtos[i] = mapper.ToVehicleDTO(&vehicles[i])
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
