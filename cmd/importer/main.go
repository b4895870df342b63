package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/models"
	"restaurant-finder-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	f, err := os.Open(*file)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d session locations\n", len(records))

	// Load config
	cfg, err := config.Load("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.DBSource == "" {
		fmt.Println("Error: DB_SOURCE is required")
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to DB
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := repository.NewPostgresLocationStore(pool)

	// Ensure table exists
	if err := store.EnsureSchema(ctx); err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	if err := store.UpsertBatch(ctx, records); err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	if err := verifyImport(ctx, store, records); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d session locations\n", len(records))
}

// parseCSV reads session_key,latitude,longitude rows after a header line. When a key
// appears more than once the last row wins, keeping the position of its first appearance.
func parseCSV(r io.Reader) ([]repository.SessionLocation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []repository.SessionLocation
	index := make(map[string]int)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		line++

		key := strings.TrimSpace(record[0])
		if key == "" {
			return nil, fmt.Errorf("line %d: empty session key", line)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, record[1])
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, record[2])
		}

		loc := models.Location{Latitude: lat, Longitude: lon}
		if err := loc.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if i, ok := index[key]; ok {
			records[i].Location = loc
			continue
		}
		index[key] = len(records)
		records = append(records, repository.SessionLocation{Key: key, Location: loc})
	}

	return records, nil
}

func verifyImport(ctx context.Context, store *repository.PostgresLocationStore, records []repository.SessionLocation) error {
	count, err := store.Count(ctx)
	if err != nil {
		return err
	}

	if count < len(records) {
		return fmt.Errorf("record count mismatch: expected at least %d, got %d", len(records), count)
	}

	if len(records) == 0 {
		return nil
	}

	// Check a sample row
	sample := records[len(records)-1]
	loc, err := store.GetLocation(ctx, sample.Key)
	if err != nil {
		return fmt.Errorf("failed to read back %s: %w", sample.Key, err)
	}
	if loc != sample.Location {
		return fmt.Errorf("sample mismatch for %s: expected %+v, got %+v", sample.Key, sample.Location, loc)
	}

	fmt.Printf("Sample location: %s %+v\n", sample.Key, loc)
	return nil
}
