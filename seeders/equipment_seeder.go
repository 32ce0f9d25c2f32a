package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventive-admin/internal/entities"
	"inventive-admin/internal/repositories"
)

// SeedEquipment inserts the sample inventory through the unit of work, so the
// rows carry the same audit stamps production writes get. Already-present
// names are skipped, which makes the seeder safe to rerun.
func SeedEquipment(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	uow := repositories.NewUnitOfWork(pool, logger)
	repo := uow.Equipment()

	for _, seed := range equipmentData {
		exists, err := repo.ExistsByName(ctx, seed.Name)
		if err != nil {
			return err
		}
		if exists {
			logger.Info("equipment already seeded, skipping", zap.String("name", seed.Name))
			continue
		}

		repo.Add(entities.NewEquipment(
			seed.Name, seed.Description,
			seed.Length, seed.Width, seed.Height, seed.Weight,
		))
	}

	affected, err := uow.Commit(ctx)
	if err != nil {
		return err
	}

	logger.Info("equipment seeding finished", zap.Int64("inserted", affected))
	return nil
}

// Reset empties the equipment table before seeding.
func Reset(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if _, err := pool.Exec(ctx, "TRUNCATE TABLE equipment"); err != nil {
		return err
	}
	logger.Info("equipment table truncated")
	return nil
}
