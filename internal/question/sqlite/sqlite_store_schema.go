package sqlite

import (
	"context"
)

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			category TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			tone TEXT NOT NULL,
			view_count INTEGER NOT NULL DEFAULT 0,
			is_favorite INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS question_keywords (
			question_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			keyword TEXT NOT NULL,
			PRIMARY KEY (question_id, position)
		);`,
		`CREATE TABLE IF NOT EXISTS snapshots (
			snapshot_id INTEGER PRIMARY KEY CHECK (snapshot_id = 1),
			source TEXT NOT NULL,
			record_count INTEGER NOT NULL,
			exported_at_unix INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category);`,
		`CREATE INDEX IF NOT EXISTS idx_questions_difficulty ON questions(difficulty);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
