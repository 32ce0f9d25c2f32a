package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InitRouter wires all versioned endpoints. Everything lives under /v1.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	v1 := e.Group("/v1")

	RegisterEquipmentRoutes(v1, dbConn, logger)
}
