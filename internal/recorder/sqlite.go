package recorder

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"stock-price-predictor/internal/models"
)

// SQLiteRecorder appends predictions to a local SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets readers inspect the audit table while the server writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS predictions (
			id              TEXT PRIMARY KEY,
			ticker          TEXT NOT NULL,
			open            REAL,
			high            REAL,
			low             REAL,
			predicted_close REAL,
			samples         INTEGER,
			r_squared       REAL,
			created_at      INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_ticker_ts ON predictions(ticker, created_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordPrediction(ctx context.Context, rec *models.PredictionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `INSERT INTO predictions
		(id, ticker, open, high, low, predicted_close, samples, r_squared, created_at)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		rec.Id, rec.Ticker, rec.Open, rec.High, rec.Low,
		rec.PredictedClose, rec.Samples, rec.RSquared, rec.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("sqlite insert prediction: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("closing sqlite recorder")
	return r.db.Close()
}
