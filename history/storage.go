package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"scan-recognition/models"
	"scan-recognition/utils"
)

var (
	historyFile = "history.json"
	mu          sync.RWMutex
)

func historyFilePath() string {
	dir := utils.GetEnv("SCAN_HISTORY_DIR", ".")
	return filepath.Join(dir, historyFile)
}

// loadRecordsInternal loads all records from the JSON file (without lock).
func loadRecordsInternal() ([]models.ScanRecord, error) {
	filePath := historyFilePath()

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return []models.ScanRecord{}, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading history file: %w", err)
	}

	if len(data) == 0 {
		return []models.ScanRecord{}, nil
	}

	var records []models.ScanRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error unmarshaling history: %w", err)
	}

	return records, nil
}

// LoadRecords loads all stored classification records.
func LoadRecords() ([]models.ScanRecord, error) {
	mu.RLock()
	defer mu.RUnlock()
	return loadRecordsInternal()
}

// SaveRecord appends a classification record to the JSON history file.
func SaveRecord(record *models.ScanRecord) error {
	mu.Lock()
	defer mu.Unlock()

	records, err := loadRecordsInternal()
	if err != nil {
		return err
	}

	if record.ID == 0 {
		record.ID = time.Now().UnixNano()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	records = append(records, *record)

	filePath := historyFilePath()
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "" {
		if err := utils.CreateFolder(dir); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling history: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing history file: %w", err)
	}

	return nil
}
