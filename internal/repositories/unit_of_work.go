package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventive-admin/internal/entities"
	"inventive-admin/pkg/types"
)

type changeState int

const (
	stateAdded changeState = iota
	stateModified
)

type pendingChange struct {
	equipment *entities.Equipment
	state     changeState
}

// UnitOfWorkInterface groups the repositories of one request into a single
// commit boundary.
type UnitOfWorkInterface interface {
	Equipment() EquipmentRepositoryInterface
	Commit(ctx context.Context) (int64, error)
}

// UnitOfWorkFactoryInterface hands out a fresh unit of work per request, so
// staged changes are never shared between goroutines.
type UnitOfWorkFactoryInterface interface {
	New() UnitOfWorkInterface
}

type UnitOfWorkFactory struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewUnitOfWorkFactory(pool *pgxpool.Pool, logger *zap.Logger) UnitOfWorkFactoryInterface {
	return &UnitOfWorkFactory{pool: pool, logger: logger}
}

func (f *UnitOfWorkFactory) New() UnitOfWorkInterface {
	return NewUnitOfWork(f.pool, f.logger)
}

// UnitOfWork owns the pending change set. Reads go straight to the pool;
// staged writes execute inside one transaction on Commit, after the audit
// stamping hook has run over them.
type UnitOfWork struct {
	pool      *pgxpool.Pool
	logger    *zap.Logger
	pending   []pendingChange
	equipment *EquipmentRepository
}

func NewUnitOfWork(pool *pgxpool.Pool, logger *zap.Logger) *UnitOfWork {
	return &UnitOfWork{pool: pool, logger: logger}
}

func (u *UnitOfWork) Equipment() EquipmentRepositoryInterface {
	if u.equipment == nil {
		u.equipment = NewEquipmentRepository(u.pool, u, u.logger)
	}
	return u.equipment
}

func (u *UnitOfWork) stage(equipment *entities.Equipment, state changeState) {
	u.pending = append(u.pending, pendingChange{equipment: equipment, state: state})
}

// Commit stamps audit fields on every staged change and executes the staged
// statements in one transaction. Returns the number of affected rows.
func (u *UnitOfWork) Commit(ctx context.Context) (int64, error) {
	if len(u.pending) == 0 {
		return 0, nil
	}

	var affected int64
	err := WithTx(ctx, u.pool, func(tx pgx.Tx) error {
		now := time.Now().UTC()
		for _, change := range u.pending {
			stampAudit(change, now)

			var tag pgconn.CommandTag
			var err error
			switch change.state {
			case stateAdded:
				tag, err = insertEquipment(ctx, tx, change.equipment)
			case stateModified:
				tag, err = updateEquipment(ctx, tx, change.equipment)
			}
			if err != nil {
				return err
			}
			affected += tag.RowsAffected()
		}
		return nil
	})
	if err != nil {
		u.logger.Error("unit of work commit failed", zap.Error(err))
		return 0, err
	}

	u.pending = u.pending[:0]
	return affected, nil
}

// stampAudit is the pre-commit hook: inserts get creation fields, updates get
// modification fields. The System identity stands in until auth exists.
func stampAudit(change pendingChange, now time.Time) {
	switch change.state {
	case stateAdded:
		change.equipment.CreatedAt = now
		change.equipment.CreatedByID = types.SystemUserID
		change.equipment.CreatedBy = types.SystemUserName
	case stateModified:
		change.equipment.ModifiedAt = null.TimeFrom(now)
		change.equipment.ModifiedByID = uuid.NullUUID{UUID: types.SystemUserID, Valid: true}
		change.equipment.ModifiedBy = null.StringFrom(types.SystemUserName)
	}
}

func insertEquipment(ctx context.Context, tx pgx.Tx, e *entities.Equipment) (pgconn.CommandTag, error) {
	query, args, err := psql.Insert(equipmentTable).
		Columns(equipmentColumns...).
		Values(
			e.ID, e.Name, e.Description, int(e.Status),
			e.Length, e.Width, e.Height, e.Weight,
			e.IsDeleted, e.DeletedAt,
			e.CreatedAt, e.CreatedByID, e.CreatedBy,
			e.ModifiedAt, e.ModifiedByID, e.ModifiedBy,
		).
		ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return tx.Exec(ctx, query, args...)
}

func updateEquipment(ctx context.Context, tx pgx.Tx, e *entities.Equipment) (pgconn.CommandTag, error) {
	query, args, err := psql.Update(equipmentTable).
		Set("name", e.Name).
		Set("description", e.Description).
		Set("status", int(e.Status)).
		Set("length", e.Length).
		Set("width", e.Width).
		Set("height", e.Height).
		Set("weight", e.Weight).
		Set("is_deleted", e.IsDeleted).
		Set("deleted_at", e.DeletedAt).
		Set("modified_at", e.ModifiedAt).
		Set("modified_by_id", e.ModifiedByID).
		Set("modified_by", e.ModifiedBy).
		Where(sq.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return tx.Exec(ctx, query, args...)
}
