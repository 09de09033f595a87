package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dawglabs/dawglog/core"
)

// FileSink writes formatted log records to a file with optional
// size-based rotation
type FileSink struct {
	filename    string
	file        *os.File
	maxSize     int64
	maxBackups  int
	currentSize int64
}

// FileConfig holds configuration for the file sink
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// MaxSize is the maximum size in bytes before rotation (0 = no rotation)
	MaxSize int64
	// MaxBackups is the maximum number of old log files to retain (0 = keep all)
	MaxBackups int
}

// NewFileSink creates a new file sink, creating parent directories as needed
func NewFileSink(cfg FileConfig) (*FileSink, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}

	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	return &FileSink{
		filename:    cfg.Filename,
		file:        file,
		maxSize:     cfg.MaxSize,
		maxBackups:  cfg.MaxBackups,
		currentSize: info.Size(),
	}, nil
}

// Write appends the formatted bytes, rotating first if the file has
// grown past MaxSize
func (s *FileSink) Write(_ *core.Record, formatted []byte) error {
	if err := s.rotateIfNeeded(); err != nil {
		return err
	}

	n, err := s.file.Write(formatted)
	if err == nil {
		s.currentSize += int64(n)
	}
	return err
}

// Close syncs and closes the underlying file
func (s *FileSink) Close() error {
	if err := s.file.Sync(); err != nil {
		return err
	}
	return s.file.Close()
}

// rotateIfNeeded checks and performs rotation if needed
func (s *FileSink) rotateIfNeeded() error {
	if s.maxSize <= 0 || s.currentSize < s.maxSize {
		return nil
	}
	return s.rotate()
}

// rotate performs the actual file rotation
func (s *FileSink) rotate() error {
	if err := s.file.Sync(); err != nil {
		return err
	}
	if err := s.file.Close(); err != nil {
		return err
	}

	// Rename current file with timestamp
	timestamp := time.Now().Format("2006-01-02T15-04-05.000000000")
	rotatedName := fmt.Sprintf("%s.%s", s.filename, timestamp)

	if err := os.Rename(s.filename, rotatedName); err != nil {
		// If rename fails, try to reopen the original file
		file, openErr := os.OpenFile(s.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		s.file = file
		return err
	}

	if s.maxBackups > 0 {
		s.cleanupOldBackups()
	}

	file, err := os.OpenFile(s.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	s.file = file
	s.currentSize = 0
	return nil
}

// cleanupOldBackups removes old backup files based on MaxBackups
func (s *FileSink) cleanupOldBackups() {
	dir := filepath.Dir(s.filename)
	base := filepath.Base(s.filename)

	pattern := filepath.Join(dir, base+".*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return
	}

	var backups []string
	for _, match := range matches {
		if strings.HasPrefix(filepath.Base(match), base+".") {
			backups = append(backups, match)
		}
	}

	// Sort by modification time (oldest first)
	sort.Slice(backups, func(i, j int) bool {
		infoI, errI := os.Stat(backups[i])
		infoJ, errJ := os.Stat(backups[j])
		if errI != nil || errJ != nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	if len(backups) > s.maxBackups {
		toRemove := backups[:len(backups)-s.maxBackups]
		for _, file := range toRemove {
			if err := os.Remove(file); err != nil {
				return
			}
		}
	}
}
