package db

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"scan-recognition/models"
	"scan-recognition/utils"

	_ "github.com/mattn/go-sqlite3" // SQLite driver registration
)

// SQLiteClient stores classification history in a local SQLite database.
type SQLiteClient struct {
	db *sql.DB
}

func NewSQLiteClient(dataSourceName string) (*SQLiteClient, error) {
	// Extract the file path before query parameters
	dbPath := dataSourceName
	if idx := strings.Index(dataSourceName, "?"); idx != -1 {
		dbPath = dataSourceName[:idx]
	}

	dbDir := filepath.Dir(dbPath)
	if dbDir != "." && dbDir != "" {
		if err := utils.CreateFolder(dbDir); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	// Add busy timeout param to DSN (milliseconds)
	if !strings.Contains(dataSourceName, "_busy_timeout") {
		if strings.Contains(dataSourceName, "?") {
			dataSourceName += "&_busy_timeout=5000"
		} else {
			dataSourceName += "?_busy_timeout=5000"
		}
	}

	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("error connecting to SQLite: %w", err)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	return &SQLiteClient{db: db}, nil
}

func createTables(db *sql.DB) error {
	createScansTable := `
    CREATE TABLE IF NOT EXISTS scans (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
        source_path TEXT,
        scan_type TEXT NOT NULL,
        confidence REAL NOT NULL DEFAULT 0,
        description TEXT,
        resolution TEXT,
        latency_ms REAL NOT NULL DEFAULT 0,
        all_scores TEXT NOT NULL,
        features TEXT
    );
    CREATE INDEX IF NOT EXISTS idx_scans_timestamp ON scans(timestamp);
    CREATE INDEX IF NOT EXISTS idx_scans_type ON scans(scan_type);
    `

	if _, err := db.Exec(createScansTable); err != nil {
		return fmt.Errorf("error creating scans table: %w", err)
	}
	return nil
}

func (c *SQLiteClient) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// StoreScanRecord inserts one classification outcome and fills in the
// generated ID and timestamp on the passed record.
func (c *SQLiteClient) StoreScanRecord(record *models.ScanRecord) error {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	result, err := c.db.Exec(
		`INSERT INTO scans
         (timestamp, source_path, scan_type, confidence, description, resolution, latency_ms, all_scores, features)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Timestamp,
		record.SourcePath,
		record.ScanType,
		record.Confidence,
		record.Description,
		record.Resolution,
		record.LatencyMs,
		string(record.AllScores),
		string(record.Features),
	)
	if err != nil {
		return fmt.Errorf("error inserting scan record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("error reading inserted id: %w", err)
	}
	record.ID = id
	return nil
}

// GetRecentScans returns the newest records first, up to limit.
func (c *SQLiteClient) GetRecentScans(limit int) ([]models.ScanRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := c.db.Query(
		`SELECT id, timestamp, source_path, scan_type, confidence, description, resolution, latency_ms, all_scores, features
         FROM scans ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying scans: %w", err)
	}
	defer rows.Close()

	var records []models.ScanRecord
	for rows.Next() {
		var record models.ScanRecord
		var sourcePath, description, resolution, allScores, features sql.NullString
		if err := rows.Scan(
			&record.ID,
			&record.Timestamp,
			&sourcePath,
			&record.ScanType,
			&record.Confidence,
			&description,
			&resolution,
			&record.LatencyMs,
			&allScores,
			&features,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		record.SourcePath = sourcePath.String
		record.Description = description.String
		record.Resolution = resolution.String
		record.AllScores = []byte(allScores.String)
		if features.Valid {
			record.Features = []byte(features.String)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// TotalScans reports how many classifications have been recorded.
func (c *SQLiteClient) TotalScans() (int, error) {
	var count int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM scans`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting scans: %w", err)
	}
	return count, nil
}
