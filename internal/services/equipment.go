package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inventive-admin/internal/dto"
	"inventive-admin/internal/entities"
	"inventive-admin/internal/repositories"
	apperrors "inventive-admin/pkg/errors"
)

type AdminEquipmentServiceInterface interface {
	AddNewEquipment(ctx context.Context, request dto.AddEquipmentDTO) (*dto.EquipmentDTO, error)
	GetAllEquipment(ctx context.Context, request dto.PaginatedRequestDTO) (*dto.PaginatedResultDTO[dto.EquipmentDTO], error)
	GetEquipmentByID(ctx context.Context, id uuid.UUID) (*dto.EquipmentDTO, error)
}

// AdminEquipmentService orchestrates repository calls and maps entities to
// transfer objects. Expected failures come back as typed errors; validation
// never reaches this layer.
type AdminEquipmentService struct {
	uowFactory repositories.UnitOfWorkFactoryInterface
	logger     *zap.Logger
}

func NewAdminEquipmentService(uowFactory repositories.UnitOfWorkFactoryInterface, logger *zap.Logger) AdminEquipmentServiceInterface {
	return &AdminEquipmentService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *AdminEquipmentService) AddNewEquipment(ctx context.Context, request dto.AddEquipmentDTO) (*dto.EquipmentDTO, error) {
	s.logger.Info("adding equipment",
		zap.String("name", request.Name),
		zap.Float64("length", request.Length),
		zap.Float64("width", request.Width),
		zap.Float64("height", request.Height),
		zap.Float64("weight", request.Weight),
	)

	equipment := entities.NewEquipment(
		request.Name,
		request.Description,
		request.Length,
		request.Width,
		request.Height,
		request.Weight,
	)

	uow := s.uowFactory.New()
	uow.Equipment().Add(equipment)
	if _, err := uow.Commit(ctx); err != nil {
		s.logger.Error("failed to add equipment", zap.String("name", request.Name), zap.Error(err))
		return nil, err
	}

	response := mapToDTO(equipment)
	s.logger.Info("added equipment",
		zap.String("name", response.Name),
		zap.String("id", response.ID.String()),
	)
	return &response, nil
}

func (s *AdminEquipmentService) GetAllEquipment(ctx context.Context, request dto.PaginatedRequestDTO) (*dto.PaginatedResultDTO[dto.EquipmentDTO], error) {
	s.logger.Info("fetching equipment page",
		zap.Int("page", request.Page),
		zap.Int("pageSize", request.PageSize),
	)

	items, total, err := s.uowFactory.New().Equipment().GetPaginated(ctx, request.Skip(), request.PageSize, nil)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.EquipmentDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, mapToDTO(&items[i]))
	}

	s.logger.Info("returning equipment page",
		zap.Int("count", len(dtos)),
		zap.Int("totalCount", total),
	)
	return &dto.PaginatedResultDTO[dto.EquipmentDTO]{Items: dtos, TotalCount: total}, nil
}

func (s *AdminEquipmentService) GetEquipmentByID(ctx context.Context, id uuid.UUID) (*dto.EquipmentDTO, error) {
	equipment, err := s.uowFactory.New().Equipment().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("equipment not found", zap.String("id", id.String()))
			return nil, apperrors.NewNotFoundError("Equipment with ID %s not found", id)
		}
		return nil, err
	}

	response := mapToDTO(equipment)
	return &response, nil
}

func mapToDTO(e *entities.Equipment) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Status:      e.Status.String(),
		Length:      e.Length,
		Width:       e.Width,
		Height:      e.Height,
		Weight:      e.Weight,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
		ModifiedAt:  e.ModifiedAt,
		ModifiedBy:  e.ModifiedBy,
	}
}
