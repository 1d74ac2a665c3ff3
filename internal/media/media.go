// Package media persists intake photos on local disk under the media root,
// mirroring the layout the order records reference:
//
//	proofs/{telegramID}_{orderID}.jpg        proof of purchase
//	checks/{telegramID}_{orderID}_check.jpg  receipt
package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) SaveProof(telegramID int64, orderID int, photo io.Reader) (string, error) {
	path := fmt.Sprintf("proofs/%d_%d.jpg", telegramID, orderID)
	return path, s.write(path, photo)
}

func (s *Store) SaveReceipt(telegramID int64, orderID int, photo io.Reader) (string, error) {
	path := fmt.Sprintf("checks/%d_%d_check.jpg", telegramID, orderID)
	return path, s.write(path, photo)
}

// write commits the photo to disk. A failed write leaves no partial file, so
// the caller can safely refuse the state transition.
func (s *Store) write(rel string, photo io.Reader) error {
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("can't create media dir: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("can't create media file: %w", err)
	}

	if _, err := io.Copy(f, photo); err != nil {
		f.Close()
		if rmErr := os.Remove(full); rmErr != nil {
			zap.L().Error("can't remove partial media file", zap.String("path", full), zap.Error(rmErr))
		}
		return fmt.Errorf("can't write media file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("can't close media file: %w", err)
	}
	return nil
}
