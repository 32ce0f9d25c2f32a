package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"inventive-admin/internal/entities"
	apperrors "inventive-admin/pkg/errors"
)

const equipmentTable = "equipment"

var equipmentColumns = []string{
	"id", "name", "description", "status",
	"length", "width", "height", "weight",
	"is_deleted", "deleted_at",
	"created_at", "created_by_id", "created_by",
	"modified_at", "modified_by_id", "modified_by",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// notDeleted is the soft-delete filter. Every read builder appends it, so
// deleted rows cannot leak out of any query path.
var notDeleted = sq.Eq{"is_deleted": false}

func selectEquipment() sq.SelectBuilder {
	return psql.Select(equipmentColumns...).
		From(equipmentTable).
		Where(notDeleted)
}

type EquipmentRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Equipment, error)
	GetAll(ctx context.Context, status *entities.EquipmentStatus) ([]entities.Equipment, error)
	GetPaginated(ctx context.Context, skip, pageSize int, status *entities.EquipmentStatus) ([]entities.Equipment, int, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Add(equipment *entities.Equipment)
	Update(equipment *entities.Equipment)
	SaveChanges(ctx context.Context) (int64, error)
}

type EquipmentRepository struct {
	db     querier
	uow    *UnitOfWork
	logger *zap.Logger
}

func NewEquipmentRepository(db querier, uow *UnitOfWork, logger *zap.Logger) *EquipmentRepository {
	return &EquipmentRepository{
		db:     db,
		uow:    uow,
		logger: logger,
	}
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Equipment, error) {
	query, args, err := selectEquipment().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	equipment, err := scanEquipment(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return equipment, nil
}

// GetAll returns every non-deleted row ordered by name ascending, optionally
// narrowed to one status.
func (r *EquipmentRepository) GetAll(ctx context.Context, status *entities.EquipmentStatus) ([]entities.Equipment, error) {
	builder := selectEquipment().OrderBy("name ASC")
	if status != nil {
		builder = builder.Where(sq.Eq{"status": int(*status)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEquipment(rows)
}

// GetPaginated returns one page ordered by name ascending plus the total
// count under the same filter. Ordering keeps pages deterministic.
func (r *EquipmentRepository) GetPaginated(ctx context.Context, skip, pageSize int, status *entities.EquipmentStatus) ([]entities.Equipment, int, error) {
	if skip < 0 {
		skip = 0
	}

	countBuilder := psql.Select("COUNT(*)").
		From(equipmentTable).
		Where(notDeleted)
	if status != nil {
		countBuilder = countBuilder.Where(sq.Eq{"status": int(*status)})
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	builder := selectEquipment().
		OrderBy("name ASC").
		Limit(uint64(pageSize)).
		Offset(uint64(skip))
	if status != nil {
		builder = builder.Where(sq.Eq{"status": int(*status)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := collectEquipment(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ExistsByName reports whether a non-deleted row with this name exists,
// case-insensitively. Reserved for duplicate prevention.
func (r *EquipmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query, args, err := psql.Select("COUNT(1)").
		From(equipmentTable).
		Where(notDeleted).
		Where(sq.Expr("LOWER(name) = LOWER(?)", name)).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *EquipmentRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := psql.Select("COUNT(1)").
		From(equipmentTable).
		Where(notDeleted).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add stages an insert; nothing hits the database until SaveChanges.
func (r *EquipmentRepository) Add(equipment *entities.Equipment) {
	r.uow.stage(equipment, stateAdded)
}

// Update stages an update for an already-persisted entity.
func (r *EquipmentRepository) Update(equipment *entities.Equipment) {
	r.uow.stage(equipment, stateModified)
}

// SaveChanges commits the owning unit of work.
func (r *EquipmentRepository) SaveChanges(ctx context.Context) (int64, error) {
	return r.uow.Commit(ctx)
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var status int

	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &status,
		&e.Length, &e.Width, &e.Height, &e.Weight,
		&e.IsDeleted, &e.DeletedAt,
		&e.CreatedAt, &e.CreatedByID, &e.CreatedBy,
		&e.ModifiedAt, &e.ModifiedByID, &e.ModifiedBy,
	)
	if err != nil {
		return nil, err
	}

	e.Status = entities.EquipmentStatus(status)
	return &e, nil
}

func collectEquipment(rows pgx.Rows) ([]entities.Equipment, error) {
	var items []entities.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
