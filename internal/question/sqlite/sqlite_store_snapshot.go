package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"qa-platform/internal/question"
)

var ErrNoSnapshot = errors.New("no snapshot has been written")

type SnapshotInfo struct {
	Source      string
	RecordCount int
	ExportedAt  time.Time
}

type CategoryCount struct {
	Category string
	Count    int
}

// WriteSnapshot replaces any previous snapshot with records in one transaction.
func (s *SQLiteStore) WriteSnapshot(ctx context.Context, source string, records []question.Record, exportedAt time.Time) error {
	if exportedAt.IsZero() {
		exportedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM question_keywords`,
		`DELETE FROM questions`,
		`DELETE FROM snapshots`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	insertQuestion, err := tx.PrepareContext(ctx,
		`INSERT INTO questions (id, question, answer, category, difficulty, tone, view_count, is_favorite)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer insertQuestion.Close()

	insertKeyword, err := tx.PrepareContext(ctx,
		`INSERT INTO question_keywords (question_id, position, keyword) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer insertKeyword.Close()

	for _, record := range records {
		if _, err := insertQuestion.ExecContext(
			ctx,
			record.ID,
			record.Question,
			record.Answer,
			record.Category,
			record.Difficulty,
			record.Tone,
			record.ViewCount,
			boolToInt(record.IsFavorite),
		); err != nil {
			return err
		}

		for position, keyword := range record.Keywords {
			if _, err := insertKeyword.ExecContext(ctx, record.ID, position, keyword); err != nil {
				return err
			}
		}
	}

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO snapshots (snapshot_id, source, record_count, exported_at_unix) VALUES (1, ?, ?, ?)`,
		source,
		len(records),
		exportedAt.UnixNano(),
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetSnapshotInfo(ctx context.Context) (SnapshotInfo, error) {
	var (
		info           SnapshotInfo
		exportedAtUnix int64
	)
	err := s.db.QueryRowContext(
		ctx,
		`SELECT source, record_count, exported_at_unix FROM snapshots WHERE snapshot_id = 1`,
	).Scan(&info.Source, &info.RecordCount, &exportedAtUnix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SnapshotInfo{}, ErrNoSnapshot
		}
		return SnapshotInfo{}, err
	}

	info.ExportedAt = time.Unix(0, exportedAtUnix).UTC()
	return info, nil
}

// ListRecords reads the snapshot back in id order.
func (s *SQLiteStore) ListRecords(ctx context.Context) ([]question.Record, error) {
	keywords, err := s.listKeywords(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, question, answer, category, difficulty, tone, view_count, is_favorite
		 FROM questions
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]question.Record, 0)
	for rows.Next() {
		var (
			record   question.Record
			favorite int
		)
		if err := rows.Scan(
			&record.ID,
			&record.Question,
			&record.Answer,
			&record.Category,
			&record.Difficulty,
			&record.Tone,
			&record.ViewCount,
			&favorite,
		); err != nil {
			return nil, err
		}
		record.IsFavorite = favorite != 0
		record.Keywords = keywords[record.ID]
		if record.Keywords == nil {
			record.Keywords = []string{}
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (s *SQLiteStore) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT category, COUNT(*) FROM questions GROUP BY category ORDER BY category ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]CategoryCount, 0)
	for rows.Next() {
		var item CategoryCount
		if err := rows.Scan(&item.Category, &item.Count); err != nil {
			return nil, err
		}
		counts = append(counts, item)
	}
	return counts, rows.Err()
}

func (s *SQLiteStore) listKeywords(ctx context.Context) (map[int][]string, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT question_id, keyword FROM question_keywords ORDER BY question_id ASC, position ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keywords := make(map[int][]string)
	for rows.Next() {
		var (
			questionID int
			keyword    string
		)
		if err := rows.Scan(&questionID, &keyword); err != nil {
			return nil, err
		}
		keywords[questionID] = append(keywords[questionID], keyword)
	}
	return keywords, rows.Err()
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
