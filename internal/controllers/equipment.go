package controllers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventive-admin/internal/dto"
	"inventive-admin/internal/services"
	apperrors "inventive-admin/pkg/errors"
	"inventive-admin/pkg/utils"
	"inventive-admin/pkg/validation"
)

type EquipmentController struct {
	equipmentService services.AdminEquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(service services.AdminEquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{
		equipmentService: service,
		logger:           logger,
	}
}

func (c *EquipmentController) AddEquipment(ctx echo.Context) error {
	var request dto.AddEquipmentDTO
	if err := ctx.Bind(&request); err != nil {
		c.logger.Warn("AddEquipment: malformed request body", zap.Error(err))
		return ctx.JSON(http.StatusBadRequest, dto.ValidationErrorResponseDTO{
			Errors: map[string][]string{"request": {"Request body is malformed"}},
		})
	}

	if err := ctx.Validate(&request); err != nil {
		c.logger.Warn("AddEquipment: validation failed", zap.String("name", request.Name), zap.Error(err))
		return ctx.JSON(http.StatusBadRequest, dto.ValidationErrorResponseDTO{
			Errors: validation.Messages(err),
		})
	}

	res, err := c.equipmentService.AddNewEquipment(ctx.Request().Context(), request)
	if err != nil {
		c.logger.Error("AddEquipment: unexpected error", zap.String("name", request.Name), zap.Error(err))
		return c.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dto.AddEquipmentResponseDTO{
		ID:          res.ID,
		Name:        res.Name,
		Description: res.Description,
		Status:      res.Status,
		Length:      res.Length,
		Width:       res.Width,
		Height:      res.Height,
		Weight:      res.Weight,
		CreatedAt:   res.CreatedAt,
	})
}

func (c *EquipmentController) GetAllEquipment(ctx echo.Context) error {
	page, pageSize := utils.ParsePaginationParams(ctx.QueryParams())

	res, err := c.equipmentService.GetAllEquipment(ctx.Request().Context(), dto.PaginatedRequestDTO{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		c.logger.Error("GetAllEquipment: unexpected error", zap.Int("page", page), zap.Error(err))
		return c.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dto.NewPaginatedResponse(*res, page, pageSize))
}

func (c *EquipmentController) GetEquipmentByID(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		// A non-UUID id is a missing resource, not a validation failure;
		// mirrors a typed route constraint.
		return c.writeError(ctx, apperrors.NewHttpError(http.StatusNotFound, "Not Found", err))
	}

	res, err := c.equipmentService.GetEquipmentByID(ctx.Request().Context(), id)
	if err != nil {
		var notFound *apperrors.NotFoundError
		if errors.As(err, &notFound) {
			c.logger.Warn("GetEquipmentByID: not found", zap.String("id", id.String()))
		} else {
			c.logger.Error("GetEquipmentByID: unexpected error", zap.String("id", id.String()), zap.Error(err))
		}
		return c.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, res)
}

// writeError translates typed failures into responses. NotFoundError and
// HttpError carry their own caller-facing message; anything else stays
// server-side and becomes an empty 500.
func (c *EquipmentController) writeError(ctx echo.Context, err error) error {
	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, dto.MessageResponseDTO{Message: notFound.Message})
	}

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return ctx.JSON(httpErr.Code, dto.MessageResponseDTO{Message: httpErr.Message})
	}

	return ctx.NoContent(http.StatusInternalServerError)
}
