package faqrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
	apperrors "github.com/yanqian/faq-chatbot/pkg/errors"
)

// PostgresRepository loads the FAQ catalog from Postgres and writes trained
// sentence vectors back for pgvector-based inspection.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Load fetches all catalog rows in insertion order.
func (r *PostgresRepository) Load(ctx context.Context) ([]faq.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT question, answer
		FROM faq_entries
		ORDER BY id
	`)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeResourceError, "query faq catalog", err)
	}
	defer rows.Close()

	var entries []faq.Entry
	for rows.Next() {
		var e faq.Entry
		if err := rows.Scan(&e.Question, &e.Answer); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeResourceError, "scan faq catalog row", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeResourceError, "read faq catalog rows", err)
	}
	return entries, nil
}

// SaveVectors upserts the trained sentence vector for each entry, keyed by
// the question text. Dimensions may change between deploys, so the column
// is overwritten wholesale.
func (r *PostgresRepository) SaveVectors(ctx context.Context, entries []faq.Entry, vectors [][]float32) error {
	if len(entries) != len(vectors) {
		return apperrors.Wrap(apperrors.CodeFAQError, "catalog and vector counts differ", nil)
	}
	for i, entry := range entries {
		_, err := r.pool.Exec(ctx, `
			INSERT INTO faq_entries (question, answer, embedding)
			VALUES ($1, $2, $3)
			ON CONFLICT (question)
			DO UPDATE SET answer = EXCLUDED.answer, embedding = EXCLUDED.embedding
		`, entry.Question, entry.Answer, pgvector.NewVector(vectors[i]))
		if err != nil {
			return apperrors.Wrap(apperrors.CodeResourceError, "persist faq vector", err)
		}
	}
	return nil
}

var _ faq.CatalogRepository = (*PostgresRepository)(nil)
var _ faq.VectorWriter = (*PostgresRepository)(nil)
