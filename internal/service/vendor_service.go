package service

import (
	"context"
	"errors"

	"github.com/alligatorO15/wed-planner/internal/models"
	"github.com/alligatorO15/wed-planner/internal/repository"
	"github.com/google/uuid"
)

var ErrVendorNotFound = errors.New("vendor not found")

// VendorService каталог подрядчиков, общий для всех пользователей
type VendorService interface {
	Create(ctx context.Context, input *models.VendorCreate) (*models.Vendor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	GetAll(ctx context.Context, filter *models.VendorFilter) ([]models.Vendor, error)
	Update(ctx context.Context, id uuid.UUID, update *models.VendorUpdate) (*models.Vendor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type vendorService struct {
	vendorRepo repository.VendorRepository
}

func NewVendorService(vendorRepo repository.VendorRepository) VendorService {
	return &vendorService{vendorRepo: vendorRepo}
}

func (s *vendorService) Create(ctx context.Context, input *models.VendorCreate) (*models.Vendor, error) {
	vendor := &models.Vendor{
		Name:      input.Name,
		Category:  models.ParseBudgetCategory(input.Category),
		City:      input.City,
		Phone:     input.Phone,
		Email:     input.Email,
		PriceFrom: input.PriceFrom,
		PriceTo:   input.PriceTo,
		Notes:     input.Notes,
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrVendorNotFound
	}
	return vendor, nil
}

func (s *vendorService) GetAll(ctx context.Context, filter *models.VendorFilter) ([]models.Vendor, error) {
	return s.vendorRepo.GetAll(ctx, filter)
}

func (s *vendorService) Update(ctx context.Context, id uuid.UUID, update *models.VendorUpdate) (*models.Vendor, error) {
	if update.Category != nil {
		normalized := string(models.ParseBudgetCategory(*update.Category))
		update.Category = &normalized
	}
	if err := s.vendorRepo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.vendorRepo.GetByID(ctx, id)
}

func (s *vendorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.vendorRepo.Delete(ctx, id)
}
