// Package storage keeps integration runs on disk: one directory per run
// holding metadata.json, the interference matrix and its error as text
// literals, with a BLAKE2b checksum over both. An optional SQLite catalog
// indexes the runs.
package storage

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/dalitz/internal/mcint"
	"github.com/san-kum/dalitz/internal/normint"
	"golang.org/x/crypto/blake2b"
)

const (
	metadataFile = "metadata.json"
	matrixFile   = "matrix.txt"
	errorFile    = "error.txt"
)

type Store struct {
	baseDir string
	catalog *Catalog
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// SetCatalog makes Save index every run in c.
func (s *Store) SetCatalog(c *Catalog) {
	s.catalog = c
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Channel     string       `json:"channel"`
	Resonances  []string     `json:"resonances"`
	Symmetrize  bool         `json:"symmetrize"`
	Timestamp   time.Time    `json:"timestamp"`
	Seed        uint64       `json:"seed"`
	Samples     int          `json:"samples"`
	Bounds      mcint.Bounds `json:"bounds"`
	Elapsed     float64      `json:"elapsed_seconds"`
	Hermiticity float64      `json:"hermiticity"`
	Checksum    string       `json:"checksum"`
}

// Save writes a run and returns its id. ID and Timestamp are filled in when
// empty; Checksum and Hermiticity are always computed.
func (s *Store) Save(meta RunMetadata, value, errs *normint.Matrix) (string, error) {
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	if _, err := uuid.Parse(meta.ID); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidRunID, meta.ID)
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now().UTC()
	}

	var valueBuf, errBuf bytes.Buffer
	if err := normint.FormatLiteral(&valueBuf, value); err != nil {
		return "", err
	}
	if err := normint.FormatLiteral(&errBuf, errs); err != nil {
		return "", err
	}
	meta.Checksum = checksum(valueBuf.Bytes(), errBuf.Bytes())
	meta.Hermiticity = value.HermitianDeviation()

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(runDir, matrixFile), valueBuf.Bytes(), 0644); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(runDir, errorFile), errBuf.Bytes(), 0644); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if s.catalog != nil {
		if err := s.catalog.Insert(meta); err != nil {
			return "", fmt.Errorf("index run %s: %w", meta.ID, err)
		}
	}

	return meta.ID, nil
}

// List returns the metadata of every run, newest first. Directories without
// readable metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), metadataFile))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadMatrix returns the stored matrix and its error after verifying the
// checksum recorded in the metadata.
func (s *Store) LoadMatrix(runID string) (*normint.Matrix, *normint.Matrix, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	dir, _ := s.runDir(runID)

	valueData, err := os.ReadFile(filepath.Join(dir, matrixFile))
	if err != nil {
		return nil, nil, err
	}
	errData, err := os.ReadFile(filepath.Join(dir, errorFile))
	if err != nil {
		return nil, nil, err
	}

	if sum := checksum(valueData, errData); sum != meta.Checksum {
		return nil, nil, fmt.Errorf("%w: run %s has %s, recorded %s", ErrChecksumMismatch, runID, sum, meta.Checksum)
	}

	value, err := normint.ParseLiteral(bytes.NewReader(valueData))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", matrixFile, err)
	}
	errs, err := normint.ParseLiteral(bytes.NewReader(errData))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", errorFile, err)
	}
	return value, errs, nil
}

// Delete removes a run directory and, when a catalog is set, its index row.
func (s *Store) Delete(runID string) error {
	dir, err := s.runDir(runID)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	if s.catalog != nil {
		if err := s.catalog.Delete(context.Background(), runID); err != nil && !errors.Is(err, ErrRunNotFound) {
			return err
		}
	}
	return nil
}

// MatrixPath returns the path of the stored matrix literal.
func (s *Store) MatrixPath(runID string) (string, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, matrixFile), nil
}

func (s *Store) runDir(runID string) (string, error) {
	if _, err := uuid.Parse(runID); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidRunID, runID)
	}
	return filepath.Join(s.baseDir, runID), nil
}

// checksum is the hex BLAKE2b-256 of the matrix literal followed by the
// error literal.
func checksum(value, errs []byte) string {
	h, _ := blake2b.New256(nil)
	h.Write(value)
	h.Write(errs)
	return hex.EncodeToString(h.Sum(nil))
}
