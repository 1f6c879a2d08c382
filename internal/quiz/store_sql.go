package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// SQLStore keeps quizzes in a quizzes table with questions serialized as
// JSON. Works against both the sqlite and pgx drivers opened by internal/db.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Put(ctx context.Context, q Quiz) error {
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quizzes (id,questions_json,created_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (id) DO UPDATE SET questions_json=EXCLUDED.questions_json`,
		q.ID, string(qj), time.Now().Unix())
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (Quiz, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,questions_json FROM quizzes WHERE id=$1`, id)
	var q Quiz
	var qjson string
	if err := row.Scan(&q.ID, &qjson); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Quiz{}, ErrNotFound
		}
		return Quiz{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
		return Quiz{}, err
	}
	return q, nil
}
