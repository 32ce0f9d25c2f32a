package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventive-admin/internal/controllers"
	"inventive-admin/internal/repositories"
	"inventive-admin/internal/services"
)

func RegisterEquipmentRoutes(v1 *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	var (
		uowFactory    = repositories.NewUnitOfWorkFactory(dbConn, logger)
		equipmentSvc  = services.NewAdminEquipmentService(uowFactory, logger)
		equipmentCtrl = controllers.NewEquipmentController(equipmentSvc, logger)
	)

	v1.POST("/equipment", equipmentCtrl.AddEquipment)
	v1.GET("/equipment", equipmentCtrl.GetAllEquipment)
	v1.GET("/equipment/:id", equipmentCtrl.GetEquipmentByID)
}
