package repositories

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventive-admin/internal/entities"
	"inventive-admin/migrations"
	apperrors "inventive-admin/pkg/errors"
	"inventive-admin/pkg/types"
)

var testPool *pgxpool.Pool

// TestMain connects to the test database named by TEST_DATABASE_URL and
// applies the embedded migrations. Without the variable every integration
// test below skips itself.
func TestMain(m *testing.M) {
	testDbUrl := os.Getenv("TEST_DATABASE_URL")
	if testDbUrl == "" {
		os.Exit(m.Run())
	}

	var err error
	testPool, err = pgxpool.New(context.Background(), testDbUrl)
	if err != nil {
		log.Fatalf("failed to connect to the test database: %v", err)
	}
	defer testPool.Close()

	applyMigrations(testDbUrl)

	os.Exit(m.Run())
}

func applyMigrations(dsn string) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open migration connection: %v", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}
}

func requirePool(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL is not set")
	}
}

func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE TABLE equipment;`)
	require.NoError(t, err, "failed to clean up tables")
}

// seedEquipment persists one entity through the unit of work, the same path
// production writes take, so audit stamping applies to it.
func seedEquipment(t *testing.T, name string) *entities.Equipment {
	t.Helper()
	e := entities.NewEquipment(name, null.String{}, 100, 50, 75, 25)

	uow := NewUnitOfWork(testPool, zap.NewNop())
	uow.Equipment().Add(e)
	affected, err := uow.Commit(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	return e
}

func TestEquipmentRepository_Integration_AddStampsAudit(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)

	created := seedEquipment(t, "Integration Crane")

	uow := NewUnitOfWork(testPool, zap.NewNop())
	found, err := uow.Equipment().GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Integration Crane", found.Name)
	assert.Equal(t, entities.StatusAvailable, found.Status)
	assert.False(t, found.CreatedAt.IsZero())
	assert.Equal(t, types.SystemUserID, found.CreatedByID)
	assert.Equal(t, types.SystemUserName, found.CreatedBy)
	assert.False(t, found.ModifiedAt.Valid, "creation must not stamp modification fields")
	assert.False(t, found.IsDeleted)
}

func TestEquipmentRepository_Integration_UpdateStampsModification(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)

	created := seedEquipment(t, "Before Update")
	createdAt := created.CreatedAt

	uow := NewUnitOfWork(testPool, zap.NewNop())
	found, err := uow.Equipment().GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	found.Update("After Update", found.Description, 1, 2, 3, 4)
	uow.Equipment().Update(found)
	_, err = uow.Commit(context.Background())
	require.NoError(t, err)

	reread, err := NewUnitOfWork(testPool, zap.NewNop()).Equipment().GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "After Update", reread.Name)
	assert.True(t, reread.ModifiedAt.Valid)
	assert.Equal(t, types.SystemUserID, reread.ModifiedByID.UUID)
	assert.Equal(t, types.SystemUserName, reread.ModifiedBy.String)
	assert.True(t, reread.CreatedAt.Equal(createdAt), "update must not rewrite creation fields")
}

func TestEquipmentRepository_Integration_SoftDelete(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)

	created := seedEquipment(t, "To Delete")

	uow := NewUnitOfWork(testPool, zap.NewNop())
	found, err := uow.Equipment().GetByID(context.Background(), created.ID)
	require.NoError(t, err)

	found.Delete()
	uow.Equipment().Update(found)
	_, err = uow.Commit(context.Background())
	require.NoError(t, err)

	repo := NewUnitOfWork(testPool, zap.NewNop()).Equipment()

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "deleted equipment must not be readable")

	_, total, err := repo.GetPaginated(context.Background(), 0, 20, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, total, "deleted equipment must not be counted")

	// The row itself survives; only the filter hides it.
	var isDeleted bool
	var deletedAt sql.NullTime
	err = testPool.QueryRow(context.Background(),
		"SELECT is_deleted, deleted_at FROM equipment WHERE id = $1", created.ID).
		Scan(&isDeleted, &deletedAt)
	require.NoError(t, err)
	assert.True(t, isDeleted)
	assert.True(t, deletedAt.Valid)
}

func TestEquipmentRepository_Integration_GetPaginated(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)

	seedEquipment(t, "Crane")
	seedEquipment(t, "Bulldozer")
	seedEquipment(t, "Excavator")

	repo := NewUnitOfWork(testPool, zap.NewNop()).Equipment()

	items, total, err := repo.GetPaginated(context.Background(), 0, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Bulldozer", items[0].Name, "pages are ordered by name ascending")
	assert.Equal(t, "Crane", items[1].Name)

	items, total, err = repo.GetPaginated(context.Background(), 2, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Excavator", items[0].Name)
}

func TestEquipmentRepository_Integration_GetByID_NotFound(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)

	repo := NewUnitOfWork(testPool, zap.NewNop()).Equipment()
	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEquipmentRepository_Integration_ExistsByName(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)

	seedEquipment(t, "Forklift")

	repo := NewUnitOfWork(testPool, zap.NewNop()).Equipment()

	exists, err := repo.ExistsByName(context.Background(), "FORKLIFT")
	require.NoError(t, err)
	assert.True(t, exists, "name comparison is case-insensitive")

	exists, err = repo.ExistsByName(context.Background(), "Crane")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEquipmentRepository_Integration_PagesReproduceGetAll(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)

	for _, name := range []string{"Winch", "Auger", "Paver", "Grader", "Loader"} {
		seedEquipment(t, name)
	}

	repo := NewUnitOfWork(testPool, zap.NewNop()).Equipment()

	all, err := repo.GetAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "Auger", all[0].Name)
	assert.Equal(t, "Winch", all[4].Name)

	// Walking every page must reproduce the full ordered result, each row
	// exactly once.
	pageSize := 2
	var concatenated []entities.Equipment
	for skip := 0; skip < len(all); skip += pageSize {
		items, total, err := repo.GetPaginated(context.Background(), skip, pageSize, nil)
		require.NoError(t, err)
		assert.Equal(t, len(all), total)
		concatenated = append(concatenated, items...)
	}

	require.Len(t, concatenated, len(all))
	for i := range all {
		assert.Equal(t, all[i].ID, concatenated[i].ID)
		assert.Equal(t, all[i].Name, concatenated[i].Name)
	}
}

func TestEquipmentRepository_Integration_StatusFilter(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)

	seedEquipment(t, "Available Crane")
	broken := seedEquipment(t, "Broken Drill")

	uow := NewUnitOfWork(testPool, zap.NewNop())
	found, err := uow.Equipment().GetByID(context.Background(), broken.ID)
	require.NoError(t, err)
	found.ChangeStatus(entities.StatusMaintenance)
	uow.Equipment().Update(found)
	_, err = uow.Commit(context.Background())
	require.NoError(t, err)

	repo := NewUnitOfWork(testPool, zap.NewNop()).Equipment()
	status := entities.StatusMaintenance

	all, err := repo.GetAll(context.Background(), &status)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Broken Drill", all[0].Name)
	assert.Equal(t, entities.StatusMaintenance, all[0].Status)

	items, total, err := repo.GetPaginated(context.Background(), 0, 20, &status)
	require.NoError(t, err)
	assert.Equal(t, 1, total, "the total respects the status filter")
	require.Len(t, items, 1)
	assert.Equal(t, "Broken Drill", items[0].Name)
}

func TestEquipmentRepository_Integration_ExistsIgnoresDeleted(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)

	created := seedEquipment(t, "Retired Loader")

	uow := NewUnitOfWork(testPool, zap.NewNop())
	found, err := uow.Equipment().GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	found.Delete()
	uow.Equipment().Update(found)
	_, err = uow.Commit(context.Background())
	require.NoError(t, err)

	repo := NewUnitOfWork(testPool, zap.NewNop()).Equipment()

	exists, err := repo.ExistsByName(context.Background(), "Retired Loader")
	require.NoError(t, err)
	assert.False(t, exists, "deleted equipment must not count as existing")

	exists, err = repo.ExistsByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUnitOfWork_Integration_EmptyCommit(t *testing.T) {
	requirePool(t)

	uow := NewUnitOfWork(testPool, zap.NewNop())
	affected, err := uow.Commit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
