package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/dbx"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation = "23505"

	emailConstraint  = "credentials_email_key"
	digestConstraint = "credentials_biometric_digest_key"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.CredentialRecord, error) {
	var (
		rec       models.CredentialRecord
		password  sql.NullString
		biometric sql.NullString
	)
	if err := row.Scan(&rec.ID, &rec.Email, &password, &biometric, &rec.BiometricDigest,
		&rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	rec.PasswordHash = password.String
	rec.BiometricHash = biometric.String
	return &rec, nil
}

// FindByID looks a record up by primary key. Ids that are not UUIDs cannot
// exist and are reported as not found without a round trip.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.CredentialRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	query :=
		`SELECT id, email, password_hash, biometric_hash, biometric_digest, created_at, updated_at
		 FROM credentials
		 WHERE id = $1
		 `

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.CredentialRecord, error) {
	query :=
		`SELECT id, email, password_hash, biometric_hash, biometric_digest, created_at, updated_at
		 FROM credentials
		 WHERE email = $1
		 `

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) FindByBiometricDigest(ctx context.Context, digest []byte) (*models.CredentialRecord, error) {
	if len(digest) == 0 {
		return nil, common.ErrorNotFound
	}

	query :=
		`SELECT id, email, password_hash, biometric_hash, biometric_digest, created_at, updated_at
		 FROM credentials
		 WHERE biometric_digest = $1
		 `

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, digest))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]*models.CredentialRecord, error) {
	query :=
		`SELECT id, email, password_hash, biometric_hash, biometric_digest, created_at, updated_at
		 FROM credentials
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.CredentialRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rec *models.CredentialRecord) (*models.CredentialRecord, error) {
	query :=
		`INSERT INTO credentials (email, password_hash, biometric_hash, biometric_digest)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		rec.Email, nullString(rec.PasswordHash), nullString(rec.BiometricHash), nullBytes(rec.BiometricDigest),
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) Update(ctx context.Context, email string, upd models.CredentialUpdate) error {
	query :=
		`UPDATE credentials
		 SET biometric_hash = $2, biometric_digest = $3, updated_at = now()
		 WHERE email = $1
		 `

	res, err := r.db.ExecContext(ctx, query, email, nullString(upd.BiometricHash), nullBytes(upd.BiometricDigest))
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// mapUniqueViolation translates unique-constraint failures into domain
// sentinels. It returns nil for any other error.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case emailConstraint:
		return common.ErrorAlreadyExists
	case digestConstraint:
		return common.ErrorAlreadyInUse
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
