package repositories

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	intdb "rental-backend/internal/db"
	"rental-backend/internal/domain"
	"rental-backend/internal/metrics"
	"rental-backend/internal/utils"
)

// Query narrows Find to a filtered, ordered window.
type Query struct {
	Where   []sq.Sqlizer
	OrderBy []string
	Limit   uint64
	Offset  uint64
}

// Repository is the data-access gateway for one entity type. Every mutating
// call is its own unit of work. Absence is reported as nil / false, never as
// an error.
type Repository[E any] interface {
	GetByID(ctx context.Context, id domain.ID) (*E, error)
	GetAll(ctx context.Context) ([]E, error)
	Find(ctx context.Context, q Query) ([]E, error)
	Count(ctx context.Context, where []sq.Sqlizer) (int64, error)
	Add(ctx context.Context, e *E) error
	Update(ctx context.Context, e *E) (bool, error)
	Delete(ctx context.Context, id domain.ID) (bool, error)
}

// DB is satisfied by *sqlx.DB and *sqlx.Tx.
type DB interface {
	sqlx.ExtContext
}

// Schema describes how an entity maps onto its table. Values must return one
// entry per column in Columns; identity and audit columns are handled by the
// repository and must not appear in either.
type Schema[E any] struct {
	Table   string
	Columns []string
	Values  func(e *E) map[string]any
}

type options struct {
	now     func() time.Time
	metrics *metrics.Metrics
}

type Option func(*options)

// WithClock overrides the audit timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// SQLRepository implements Repository over database/sql with squirrel-built
// statements and sqlx scanning.
type SQLRepository[E any] struct {
	db      DB
	schema  Schema[E]
	columns []string
	sb      sq.StatementBuilderType
	opts    options
}

// NewRepository validates schema against E and returns a ready repository.
func NewRepository[E any](db DB, schema Schema[E], opts ...Option) (*SQLRepository[E], error) {
	if db == nil {
		return nil, errors.New("repository: db is nil")
	}
	if strings.TrimSpace(schema.Table) == "" {
		return nil, errors.New("repository: table name is empty")
	}
	if _, ok := any(new(E)).(domain.Record); !ok {
		return nil, fmt.Errorf("repository %s: entity %T does not embed domain.Base", schema.Table, *new(E))
	}
	if schema.Values == nil {
		return nil, domain.Misconfigured(schema.Table, "Values")
	}
	if err := checkColumns(schema); err != nil {
		return nil, err
	}

	o := options{now: utils.NowUTC}
	for _, opt := range opts {
		opt(&o)
	}

	cols := make([]string, 0, len(domain.BaseColumns)+len(schema.Columns))
	cols = append(cols, domain.BaseColumns...)
	cols = append(cols, schema.Columns...)

	return &SQLRepository[E]{
		db:      db,
		schema:  schema,
		columns: cols,
		sb:      sq.StatementBuilder.PlaceholderFormat(sq.Question),
		opts:    o,
	}, nil
}

func checkColumns[E any](schema Schema[E]) error {
	row := schema.Values(new(E))
	if len(row) != len(schema.Columns) {
		return fmt.Errorf("repository %s: Values returns %d columns, schema lists %d", schema.Table, len(row), len(schema.Columns))
	}
	for _, c := range schema.Columns {
		if _, ok := row[c]; !ok {
			return fmt.Errorf("repository %s: column %q missing from Values", schema.Table, c)
		}
		for _, reserved := range domain.BaseColumns {
			if c == reserved {
				return fmt.Errorf("repository %s: column %q is managed by the repository", schema.Table, c)
			}
		}
	}
	return nil
}

// Table is the backing table name.
func (r *SQLRepository[E]) Table() string { return r.schema.Table }

func (r *SQLRepository[E]) observe(op string, start time.Time, err *error) {
	r.opts.metrics.ObserveStore(r.schema.Table, op, start, *err)
}

func (r *SQLRepository[E]) selectFrom() sq.SelectBuilder {
	return r.sb.Select(r.columns...).From(r.schema.Table)
}

func (r *SQLRepository[E]) GetByID(ctx context.Context, id domain.ID) (_ *E, err error) {
	defer r.observe("get_by_id", time.Now(), &err)

	query, args, err := r.selectFrom().Where(sq.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s select: %w", r.schema.Table, err)
	}

	var out E
	if err = sqlx.GetContext(ctx, r.db, &out, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s %d: %w", r.schema.Table, id, err)
	}
	return &out, nil
}

func (r *SQLRepository[E]) GetAll(ctx context.Context) ([]E, error) {
	return r.Find(ctx, Query{})
}

// Find returns rows matching q. Without OrderBy rows come back by id.
func (r *SQLRepository[E]) Find(ctx context.Context, q Query) (_ []E, err error) {
	defer r.observe("find", time.Now(), &err)

	b := r.selectFrom()
	if len(q.Where) > 0 {
		b = b.Where(sq.And(q.Where))
	}
	if len(q.OrderBy) > 0 {
		b = b.OrderBy(q.OrderBy...)
	} else {
		b = b.OrderBy("id ASC")
	}
	if q.Limit > 0 {
		b = b.Limit(q.Limit)
		if q.Offset > 0 {
			b = b.Offset(q.Offset)
		}
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s find: %w", r.schema.Table, err)
	}

	out := []E{}
	if err = sqlx.SelectContext(ctx, r.db, &out, query, args...); err != nil {
		return nil, fmt.Errorf("find %s: %w", r.schema.Table, err)
	}
	return out, nil
}

func (r *SQLRepository[E]) Count(ctx context.Context, where []sq.Sqlizer) (_ int64, err error) {
	defer r.observe("count", time.Now(), &err)

	b := r.sb.Select("COUNT(*)").From(r.schema.Table)
	if len(where) > 0 {
		b = b.Where(sq.And(where))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s count: %w", r.schema.Table, err)
	}

	var n int64
	if err = sqlx.GetContext(ctx, r.db, &n, query, args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.schema.Table, err)
	}
	return n, nil
}

// Add inserts e and writes the generated id and audit fields back into it.
func (r *SQLRepository[E]) Add(ctx context.Context, e *E) (err error) {
	defer r.observe("add", time.Now(), &err)

	rec := any(e).(domain.Record).Record()
	now := r.opts.now()
	actor := domain.ActorName(ctx)

	values := r.schema.Values(e)
	values["created_at"] = now
	values["created_by"] = actor
	values["updated_at"] = now
	values["updated_by"] = actor

	query, args, err := r.sb.Insert(r.schema.Table).SetMap(values).ToSql()
	if err != nil {
		return fmt.Errorf("build %s insert: %w", r.schema.Table, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.classify("insert", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert %s: read id: %w", r.schema.Table, err)
	}

	rec.ID = domain.ID(id)
	rec.CreatedAt, rec.UpdatedAt = now, now
	rec.CreatedBy, rec.UpdatedBy = actor, actor
	return nil
}

// Update replaces every writable column of the row with e's id and reports
// whether the row still exists. created_* are never rewritten.
func (r *SQLRepository[E]) Update(ctx context.Context, e *E) (_ bool, err error) {
	defer r.observe("update", time.Now(), &err)

	rec := any(e).(domain.Record).Record()
	if rec.ID <= 0 {
		return false, fmt.Errorf("update %s: entity has no id", r.schema.Table)
	}
	now := r.opts.now()
	actor := domain.ActorName(ctx)

	values := r.schema.Values(e)
	values["updated_at"] = now
	values["updated_by"] = actor

	query, args, err := r.sb.Update(r.schema.Table).SetMap(values).Where(sq.Eq{"id": rec.ID}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s update: %w", r.schema.Table, err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, r.classify("update", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update %s %d: rows affected: %w", r.schema.Table, rec.ID, err)
	}
	if n == 0 {
		// MySQL reports 0 for a matched row whose values did not change.
		found, err := r.Count(ctx, []sq.Sqlizer{sq.Eq{"id": rec.ID}})
		if err != nil {
			return false, err
		}
		if found == 0 {
			return false, nil
		}
	}

	rec.UpdatedAt = now
	rec.UpdatedBy = actor
	return true, nil
}

// Delete removes the row and reports whether one existed.
func (r *SQLRepository[E]) Delete(ctx context.Context, id domain.ID) (_ bool, err error) {
	defer r.observe("delete", time.Now(), &err)

	query, args, err := r.sb.Delete(r.schema.Table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s delete: %w", r.schema.Table, err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, r.classify("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete %s %d: rows affected: %w", r.schema.Table, id, err)
	}
	return n > 0, nil
}

// classify wraps constraint violations as ConflictError; the driver error stays
// reachable through errors.As.
func (r *SQLRepository[E]) classify(op string, err error) error {
	switch {
	case intdb.IsDuplicateKey(err):
		return domain.ConflictError{Resource: r.schema.Table, Msg: "duplicate value", Err: err}
	case intdb.IsForeignKeyViolation(err):
		return domain.ConflictError{Resource: r.schema.Table, Msg: "referenced record missing or still in use", Err: err}
	default:
		return fmt.Errorf("%s %s: %w", op, r.schema.Table, err)
	}
}
