package pdgfilter

import (
	"testing"

	sqlx "github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openCatalog(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a new database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, CreateCatalog(db))
	return db
}

func TestRecordRun(t *testing.T) {
	db := openCatalog(t)

	summaries := []RunSummary{
		{FileIn: "run001.root", FileOut: "run001_2112.root", ParticleID: 2112, Events: 5, Particles: 10, Matched: 4, HistoCopy: true},
		{FileIn: "run001.root", FileOut: "test.root", ParticleID: 22, Events: 5, Particles: 10, Matched: 3},
		{FileIn: "run002.root", FileOut: "test.root", ParticleID: 22, Events: 1, Particles: 1, Matched: 1},
	}
	for _, summary := range summaries {
		require.NoError(t, RecordRun(db, summary))
	}

	runs, err := GetRuns(db, "run001.root")
	require.NoError(t, err)
	require.Equal(t, []RunEntry{
		{FileIn: "run001.root", FileOut: "test.root", ParticleID: 22, Events: 5, Particles: 10, Matched: 3, HistoCopy: false},
		{FileIn: "run001.root", FileOut: "run001_2112.root", ParticleID: 2112, Events: 5, Particles: 10, Matched: 4, HistoCopy: true},
	}, runs)

	runs, err = GetRuns(db, "run003.root")
	require.NoError(t, err)
	require.Empty(t, runs)
}

func TestCreateCatalogTwice(t *testing.T) {
	db := openCatalog(t)
	require.NoError(t, CreateCatalog(db))
}
