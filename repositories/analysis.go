package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"doc-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IAnalysisRepository interface {
	Store(doc Document) error
	Fetch(checksum string) (Document, bool, error)
}

// Document is a persisted analysis record keyed by the checksum of the
// extracted text, so the same payload is never analyzed twice.
type Document struct {
	ID       uuid.UUID       `json:"id"`
	Checksum string          `json:"checksum"`
	At       time.Time       `json:"at"`
	Record   domain.Analysis `json:"record"`
}

type AnalysisRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewAnalysisRepository(db *badger.DB, log *slog.Logger) *AnalysisRepository {
	return &AnalysisRepository{db: db, log: log}
}

func key(checksum string) []byte {
	return []byte(fmt.Sprintf("analysis:%s", checksum))
}

func (r AnalysisRepository) Store(doc Document) error {
	bytes, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(doc.Checksum), bytes)
	})
}

func (r AnalysisRepository) Fetch(checksum string) (Document, bool, error) {
	var doc Document
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(checksum))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &doc)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Document{}, false, nil
	}
	if err != nil {
		return Document{}, false, err
	}
	return doc, true, nil
}
