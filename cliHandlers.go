package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"scan-recognition/db"
	"scan-recognition/history"
	"scan-recognition/imaging"
	"scan-recognition/models"
	"scan-recognition/scan"
	"scan-recognition/utils"

	"github.com/mdobak/go-xerrors"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

func runClassify(path string, saveResult bool, asJSON bool) {
	logger := utils.GetLogger()
	ctx := context.Background()

	img, err := imaging.LoadFile(path)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load image", slog.Any("error", xerrors.New(err)))
		os.Exit(1)
	}

	start := time.Now()
	result := scan.Classify(img)
	latency := float64(time.Since(start).Microseconds()) / 1000.0

	logger.Info("classification complete",
		slog.String("path", path),
		slog.String("scanType", result.ScanType),
		slog.Float64("confidence", result.Confidence),
		slog.String("resolution", result.Features.Resolution),
		slog.Float64("latency_ms", latency),
	)

	if asJSON {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logger.ErrorContext(ctx, "failed to encode result", slog.Any("error", xerrors.New(err)))
			os.Exit(1)
		}
		fmt.Println(string(encoded))
	} else {
		printResult(path, result)
	}

	if saveResult {
		if err := persistResult(path, result, latency); err != nil {
			logger.ErrorContext(ctx, "failed to persist result", slog.Any("error", xerrors.New(err)))
			os.Exit(1)
		}
	}
}

func runBatch(dir string, saveResults bool) {
	logger := utils.GetLogger()
	ctx := context.Background()

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read directory", slog.Any("error", xerrors.New(err)))
		os.Exit(1)
	}

	counts := make(map[string]int)
	processed := 0
	for _, entry := range entries {
		if entry.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		img, err := imaging.LoadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable image",
				slog.String("path", path),
				slog.Any("error", xerrors.New(err)))
			continue
		}

		start := time.Now()
		result := scan.Classify(img)
		latency := float64(time.Since(start).Microseconds()) / 1000.0

		fmt.Printf("%-40s %-12s %6.1f%%  %s\n",
			entry.Name(), result.ScanType, result.Confidence, result.Features.Resolution)
		counts[result.ScanType]++
		processed++

		if saveResults {
			if err := persistResult(path, result, latency); err != nil {
				logger.Warn("failed to persist result",
					slog.String("path", path),
					slog.Any("error", xerrors.New(err)))
			}
		}
	}

	fmt.Printf("\nProcessed %d image(s)\n", processed)
	for _, scanType := range scan.ScanTypes() {
		if counts[scanType] > 0 {
			fmt.Printf("  %-12s %d\n", scanType, counts[scanType])
		}
	}
}

func runHistory(limit int) {
	logger := utils.GetLogger()
	ctx := context.Background()

	records, err := loadHistory(limit)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load history", slog.Any("error", xerrors.New(err)))
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No classifications recorded yet")
		return
	}

	for _, record := range records {
		fmt.Printf("%s  %-12s %6.1f%%  %-10s %s\n",
			record.Timestamp.Format(time.RFC3339),
			record.ScanType,
			record.Confidence,
			record.Resolution,
			record.SourcePath,
		)
	}
}

func printResult(path string, result scan.ClassificationResult) {
	fmt.Printf("\nScan Type:  %s (%.1f%%)\n", result.ScanType, result.Confidence)
	fmt.Printf("Image:      %s (%s)\n", path, result.Features.Resolution)
	fmt.Printf("Details:    %s\n\n", result.Description)

	fmt.Println("All scores:")
	for _, score := range result.AllScores {
		fmt.Printf("  %-12s %6.1f%%\n", score.Category, score.Confidence)
	}

	fmt.Printf("\nFeatures: mean=%.1f contrast=%.1f entropy=%.2f edges=%.4f\n",
		result.Features.MeanIntensity,
		result.Features.Contrast,
		result.Features.Entropy,
		result.Features.EdgeDensity,
	)
}

// persistResult writes one outcome to SQLite when SCAN_DB is configured,
// falling back to the JSON history file otherwise.
func persistResult(path string, result scan.ClassificationResult, latencyMs float64) error {
	allScores, err := json.Marshal(result.AllScores)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	features, err := json.Marshal(result.Features)
	if err != nil {
		return fmt.Errorf("failed to marshal features: %w", err)
	}

	record := &models.ScanRecord{
		Timestamp:   time.Now(),
		SourcePath:  path,
		ScanType:    result.ScanType,
		Confidence:  result.Confidence,
		Description: result.Description,
		Resolution:  result.Features.Resolution,
		LatencyMs:   latencyMs,
		AllScores:   allScores,
		Features:    features,
	}

	dbPath := utils.GetEnv("SCAN_DB", "")
	if dbPath == "" {
		return history.SaveRecord(record)
	}

	client, err := db.NewSQLiteClient(dbPath)
	if err != nil {
		return err
	}
	defer client.Close()
	return client.StoreScanRecord(record)
}

func loadHistory(limit int) ([]models.ScanRecord, error) {
	dbPath := utils.GetEnv("SCAN_DB", "")
	if dbPath == "" {
		records, err := history.LoadRecords()
		if err != nil {
			return nil, err
		}
		if limit > 0 && len(records) > limit {
			records = records[len(records)-limit:]
		}
		return records, nil
	}

	client, err := db.NewSQLiteClient(dbPath)
	if err != nil {
		return nil, err
	}
	defer client.Close()
	return client.GetRecentScans(limit)
}
