package repositories

import (
	"log/slog"
	"testing"
	"time"

	"doc-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *AnalysisRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewAnalysisRepository(db, logs.GetLoggerFromLevel(slog.LevelError))
}

func TestAnalysisRepository_StoreAndFetch(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	doc := Document{
		ID:       uuid.New(),
		Checksum: "deadbeef",
		At:       time.Now().UTC().Truncate(time.Millisecond),
		Record: domain.Analysis{
			WordCount: 42,
			Sentences: []string{"Acme Corp grew fast."},
			Keywords:  []string{"Acme", "growth"},
			Sentiment: domain.Sentiment{Score: 3},
			Language:  "English",
			MimeType:  "text/plain",
		},
	}
	req.NoError(repo.Store(doc))

	fetched, found, err := repo.Fetch("deadbeef")
	req.NoError(err)
	req.True(found)
	req.Equal(doc.ID, fetched.ID)
	req.Equal(doc.Record, fetched.Record)
	req.True(doc.At.Equal(fetched.At))
}

func TestAnalysisRepository_FetchMissing(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	_, found, err := repo.Fetch("no-such-checksum")
	req.NoError(err)
	req.False(found)
}

func TestAnalysisRepository_StoreOverwrites(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	first := Document{ID: uuid.New(), Checksum: "same", Record: domain.Analysis{WordCount: 1}}
	second := Document{ID: uuid.New(), Checksum: "same", Record: domain.Analysis{WordCount: 2}}
	req.NoError(repo.Store(first))
	req.NoError(repo.Store(second))

	fetched, found, err := repo.Fetch("same")
	req.NoError(err)
	req.True(found)
	req.Equal(2, fetched.Record.WordCount)
}
