package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/solanera/ventaflow/internal/domain/errors"
	"github.com/solanera/ventaflow/internal/domain/model"
	"github.com/solanera/ventaflow/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage uses, kept as an
// interface so tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type operationRepository struct {
	storage *Storage
}

type stepRepository struct {
	storage *Storage
}

type documentRepository struct {
	storage *Storage
}

type commentRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Operations() repository.OperationRepository {
	return &operationRepository{storage: s}
}

func (s *Storage) Steps() repository.StepRepository {
	return &stepRepository{storage: s}
}

func (s *Storage) Documents() repository.DocumentRepository {
	return &documentRepository{storage: s}
}

func (s *Storage) Comments() repository.CommentRepository {
	return &commentRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            display_name TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS operations (
            id SERIAL PRIMARY KEY,
            buyer_id BIGINT NOT NULL REFERENCES users(id),
            total_amount NUMERIC(14,2) NOT NULL,
            currency TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS steps (
            id SERIAL PRIMARY KEY,
            operation_id BIGINT NOT NULL REFERENCES operations(id) ON DELETE CASCADE,
            step_order INT NOT NULL,
            step_name TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (operation_id, step_order)
        )`,
		`CREATE TABLE IF NOT EXISTS documents (
            id SERIAL PRIMARY KEY,
            step_id BIGINT NOT NULL REFERENCES steps(id) ON DELETE CASCADE,
            operation_id BIGINT NOT NULL REFERENCES operations(id) ON DELETE CASCADE,
            uploader_id BIGINT NOT NULL,
            uploader_role TEXT NOT NULL,
            document_type TEXT NOT NULL,
            file_url TEXT NOT NULL,
            file_name TEXT NOT NULL,
            file_size BIGINT NOT NULL,
            mime_type TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'uploaded',
            notes TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS comments (
            id SERIAL PRIMARY KEY,
            step_id BIGINT NOT NULL REFERENCES steps(id) ON DELETE CASCADE,
            author_id BIGINT NOT NULL,
            author_name TEXT NOT NULL,
            content TEXT NOT NULL,
            is_internal BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_steps_operation ON steps(operation_id, step_order)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_documents_outstanding ON documents(step_id) WHERE status = 'uploaded'`,
		`CREATE INDEX IF NOT EXISTS idx_documents_step ON documents(step_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_step ON comments(step_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, passwordHash string, role model.UserRole, displayName string) (*model.User, error) {
	const query = `INSERT INTO users (email, password_hash, role, display_name) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, passwordHash, role, displayName).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.PasswordHash = passwordHash
	u.Role = role
	u.DisplayName = displayName
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, role, display_name, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.DisplayName, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, password_hash, role, display_name, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.DisplayName, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- OperationRepository implementation ---

func (r *operationRepository) Create(ctx context.Context, buyerID int64, amount decimal.Decimal, currency string, stepNames []string) (*model.Operation, []model.Step, error) {
	var (
		op    model.Operation
		steps []model.Step
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOp = `INSERT INTO operations (buyer_id, total_amount, currency) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOp, buyerID, amount, currency).Scan(&op.ID, &op.CreatedAt, &op.UpdatedAt); err != nil {
			return err
		}
		op.BuyerID = buyerID
		op.TotalAmount = amount
		op.Currency = currency
		op.Status = model.OperationStatusDraft

		const insertStep = `INSERT INTO steps (operation_id, step_order, step_name, status) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
		for i, name := range stepNames {
			step := model.Step{
				OperationID: op.ID,
				StepOrder:   i + 1,
				StepName:    name,
				Status:      model.StepStatusPending,
			}
			if err := tx.QueryRow(ctx, insertStep, op.ID, step.StepOrder, name, model.StepStatusPending).Scan(&step.ID, &step.CreatedAt, &step.UpdatedAt); err != nil {
				return err
			}
			steps = append(steps, step)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &op, steps, nil
}

func (r *operationRepository) GetByID(ctx context.Context, id int64) (*model.Operation, error) {
	const query = `SELECT id, buyer_id, total_amount, currency, created_at, updated_at FROM operations WHERE id=$1`
	var op model.Operation
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&op.ID, &op.BuyerID, &op.TotalAmount, &op.Currency, &op.CreatedAt, &op.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &op, nil
}

func (r *operationRepository) ListByBuyer(ctx context.Context, buyerID int64) ([]model.Operation, error) {
	const query = `SELECT id, buyer_id, total_amount, currency, created_at, updated_at
                   FROM operations WHERE buyer_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Operation
	for rows.Next() {
		var op model.Operation
		if err := rows.Scan(&op.ID, &op.BuyerID, &op.TotalAmount, &op.Currency, &op.CreatedAt, &op.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, op)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *operationRepository) ListSteps(ctx context.Context, operationID int64) ([]model.Step, error) {
	const query = `SELECT id, operation_id, step_order, step_name, status, created_at, updated_at
                   FROM steps WHERE operation_id=$1 ORDER BY step_order`
	rows, err := r.storage.pool.Query(ctx, query, operationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Step
	for rows.Next() {
		var s model.Step
		if err := rows.Scan(&s.ID, &s.OperationID, &s.StepOrder, &s.StepName, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- StepRepository implementation ---

func scanStep(row pgx.Row, s *model.Step) error {
	return row.Scan(&s.ID, &s.OperationID, &s.StepOrder, &s.StepName, &s.Status, &s.CreatedAt, &s.UpdatedAt)
}

func (r *stepRepository) GetByID(ctx context.Context, stepID int64) (*model.Step, error) {
	const query = `SELECT id, operation_id, step_order, step_name, status, created_at, updated_at FROM steps WHERE id=$1`
	var s model.Step
	if err := scanStep(r.storage.pool.QueryRow(ctx, query, stepID), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *stepRepository) CurrentStep(ctx context.Context, operationID int64) (*model.Step, error) {
	const query = `SELECT id, operation_id, step_order, step_name, status, created_at, updated_at
                   FROM steps WHERE operation_id=$1 AND status='in_progress'`
	var s model.Step
	if err := scanStep(r.storage.pool.QueryRow(ctx, query, operationID), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *stepRepository) NextPendingStep(ctx context.Context, operationID int64) (*model.Step, error) {
	const query = `SELECT id, operation_id, step_order, step_name, status, created_at, updated_at
                   FROM steps WHERE operation_id=$1 AND status='pending' ORDER BY step_order LIMIT 1`
	var s model.Step
	if err := scanStep(r.storage.pool.QueryRow(ctx, query, operationID), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Advance applies a single step transition. All rules are evaluated under
// row locks inside one transaction, so a racing caller observes a typed
// error instead of a double advance.
func (r *stepRepository) Advance(ctx context.Context, operationID, stepID int64, target model.StepStatus) (*model.Step, error) {
	var advanced model.Step
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT id, step_order, status FROM steps WHERE operation_id=$1 ORDER BY step_order FOR UPDATE`
		rows, err := tx.Query(ctx, lockQuery, operationID)
		if err != nil {
			return err
		}

		type stepRow struct {
			id        int64
			stepOrder int
			status    model.StepStatus
		}
		var all []stepRow
		for rows.Next() {
			var sr stepRow
			if err := rows.Scan(&sr.id, &sr.stepOrder, &sr.status); err != nil {
				rows.Close()
				return err
			}
			all = append(all, sr)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		var requested *stepRow
		for i := range all {
			if all[i].id == stepID {
				requested = &all[i]
				break
			}
		}
		if requested == nil {
			return domainErrors.ErrNotFound
		}

		switch target {
		case model.StepStatusInProgress:
			if requested.status != model.StepStatusPending {
				return domainErrors.ErrInvalidTransition
			}
			for _, sr := range all {
				if sr.status == model.StepStatusInProgress {
					return domainErrors.ErrOutOfOrderTransition
				}
				if sr.stepOrder < requested.stepOrder && sr.status != model.StepStatusCompleted {
					return domainErrors.ErrOutOfOrderTransition
				}
			}
		case model.StepStatusCompleted:
			if requested.status != model.StepStatusInProgress {
				return domainErrors.ErrInvalidTransition
			}
			ready, err := stepReadyTx(ctx, tx, stepID)
			if err != nil {
				return err
			}
			if !ready {
				return domainErrors.ErrDocumentsNotReady
			}
		default:
			return domainErrors.ErrInvalidTransition
		}

		const updateQuery = `UPDATE steps SET status=$1, updated_at=NOW() WHERE id=$2 AND status=$3
                             RETURNING id, operation_id, step_order, step_name, status, created_at, updated_at`
		if err := scanStep(tx.QueryRow(ctx, updateQuery, target, stepID, requested.status), &advanced); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrInvalidTransition
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &advanced, nil
}

// stepReadyTx evaluates the document gate inside the caller's transaction:
// at least one validated document and no outstanding upload.
func stepReadyTx(ctx context.Context, tx pgx.Tx, stepID int64) (bool, error) {
	const query = `SELECT
                     COUNT(*) FILTER (WHERE status='validated'),
                     COUNT(*) FILTER (WHERE status='uploaded')
                   FROM documents WHERE step_id=$1`
	var validated, uploaded int64
	if err := tx.QueryRow(ctx, query, stepID).Scan(&validated, &uploaded); err != nil {
		return false, err
	}
	return validated > 0 && uploaded == 0, nil
}

// --- DocumentRepository implementation ---

func (r *documentRepository) Submit(ctx context.Context, params repository.SubmitParams) (*model.Document, error) {
	doc := model.Document{
		StepID:       params.StepID,
		OperationID:  params.OperationID,
		UploaderID:   params.UploaderID,
		UploaderRole: params.UploaderRole,
		DocumentType: params.DocumentType,
		File:         params.File,
		Status:       model.DocumentStatusUploaded,
	}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockStep = `SELECT operation_id, status FROM steps WHERE id=$1 FOR UPDATE`
		var (
			stepOperationID int64
			stepStatus      model.StepStatus
		)
		if err := tx.QueryRow(ctx, lockStep, params.StepID).Scan(&stepOperationID, &stepStatus); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if stepOperationID != params.OperationID {
			return domainErrors.ErrNotFound
		}
		if stepStatus != model.StepStatusInProgress {
			return domainErrors.ErrStepNotActive
		}

		const outstanding = `SELECT EXISTS (SELECT 1 FROM documents WHERE step_id=$1 AND status='uploaded')`
		var pending bool
		if err := tx.QueryRow(ctx, outstanding, params.StepID).Scan(&pending); err != nil {
			return err
		}
		if pending {
			return domainErrors.ErrDocumentPending
		}

		const insert = `INSERT INTO documents (step_id, operation_id, uploader_id, uploader_role, document_type, file_url, file_name, file_size, mime_type, status)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                        RETURNING id, created_at`
		err := tx.QueryRow(ctx, insert,
			params.StepID, params.OperationID, params.UploaderID, params.UploaderRole, params.DocumentType,
			params.File.URL, params.File.FileName, params.File.FileSize, params.File.MimeType, model.DocumentStatusUploaded,
		).Scan(&doc.ID, &doc.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrDocumentPending
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func scanDocument(row pgx.Row, d *model.Document) error {
	return row.Scan(&d.ID, &d.StepID, &d.OperationID, &d.UploaderID, &d.UploaderRole, &d.DocumentType,
		&d.File.URL, &d.File.FileName, &d.File.FileSize, &d.File.MimeType, &d.Status, &d.Notes, &d.CreatedAt)
}

func (r *documentRepository) Review(ctx context.Context, documentID int64, decision model.ReviewDecision, notes string) (*model.Document, error) {
	var doc model.Document
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const update = `UPDATE documents SET status=$1, notes=$2 WHERE id=$3 AND status='uploaded'
                        RETURNING id, step_id, operation_id, uploader_id, uploader_role, document_type, file_url, file_name, file_size, mime_type, status, notes, created_at`
		err := scanDocument(tx.QueryRow(ctx, update, decision, notes, documentID), &doc)
		if err == nil {
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		const exists = `SELECT EXISTS (SELECT 1 FROM documents WHERE id=$1)`
		var found bool
		if err := tx.QueryRow(ctx, exists, documentID).Scan(&found); err != nil {
			return err
		}
		if found {
			return domainErrors.ErrAlreadyReviewed
		}
		return domainErrors.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) IsStepReady(ctx context.Context, stepID int64) (bool, error) {
	const query = `SELECT
                     COUNT(*) FILTER (WHERE status='validated'),
                     COUNT(*) FILTER (WHERE status='uploaded')
                   FROM documents WHERE step_id=$1`
	var validated, uploaded int64
	if err := r.storage.pool.QueryRow(ctx, query, stepID).Scan(&validated, &uploaded); err != nil {
		return false, err
	}
	return validated > 0 && uploaded == 0, nil
}

func (r *documentRepository) ListForStep(ctx context.Context, stepID int64) ([]model.Document, error) {
	const query = `SELECT id, step_id, operation_id, uploader_id, uploader_role, document_type, file_url, file_name, file_size, mime_type, status, notes, created_at
                   FROM documents WHERE step_id=$1 ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, stepID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Document
	for rows.Next() {
		var d model.Document
		if err := rows.Scan(&d.ID, &d.StepID, &d.OperationID, &d.UploaderID, &d.UploaderRole, &d.DocumentType,
			&d.File.URL, &d.File.FileName, &d.File.FileSize, &d.File.MimeType, &d.Status, &d.Notes, &d.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *documentRepository) GetByID(ctx context.Context, documentID int64) (*model.Document, error) {
	const query = `SELECT id, step_id, operation_id, uploader_id, uploader_role, document_type, file_url, file_name, file_size, mime_type, status, notes, created_at
                   FROM documents WHERE id=$1`
	var d model.Document
	if err := scanDocument(r.storage.pool.QueryRow(ctx, query, documentID), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// --- CommentRepository implementation ---

func (r *commentRepository) Add(ctx context.Context, stepID, authorID int64, authorName, content string, isInternal bool) (*model.Comment, error) {
	const query = `INSERT INTO comments (step_id, author_id, author_name, content, is_internal)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	c := model.Comment{
		StepID:     stepID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Content:    content,
		IsInternal: isInternal,
	}
	err := r.storage.pool.QueryRow(ctx, query, stepID, authorID, authorName, content, isInternal).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *commentRepository) ListForStep(ctx context.Context, stepID int64) ([]model.Comment, error) {
	const query = `SELECT id, step_id, author_id, author_name, content, is_internal, created_at
                   FROM comments WHERE step_id=$1 ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, stepID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.StepID, &c.AuthorID, &c.AuthorName, &c.Content, &c.IsInternal, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
