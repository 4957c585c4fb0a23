package pdgfilter

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx"
)

func ConnectToDatabase(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

const createRunsTable = `CREATE TABLE IF NOT EXISTS FilterRuns (
	FileIn     VARCHAR(512) NOT NULL,
	FileOut    VARCHAR(512) NOT NULL,
	ParticleID INTEGER NOT NULL,
	Events     INTEGER NOT NULL,
	Particles  INTEGER NOT NULL,
	Matched    INTEGER NOT NULL,
	HistoCopy  BOOLEAN NOT NULL
)`

// RunEntry is one row of the FilterRuns table.
type RunEntry struct {
	FileIn     string `db:"FileIn"`
	FileOut    string `db:"FileOut"`
	ParticleID int32  `db:"ParticleID"`
	Events     int    `db:"Events"`
	Particles  int    `db:"Particles"`
	Matched    int    `db:"Matched"`
	HistoCopy  bool   `db:"HistoCopy"`
}

func CreateCatalog(db *sqlx.DB) error {
	if _, err := db.Exec(createRunsTable); err != nil {
		return fmt.Errorf("error creating FilterRuns table: %w", err)
	}
	return nil
}

// RecordRun stores the summary of a successful run.
func RecordRun(db *sqlx.DB, summary RunSummary) error {
	entry := RunEntry{
		FileIn:     summary.FileIn,
		FileOut:    summary.FileOut,
		ParticleID: summary.ParticleID,
		Events:     summary.Events,
		Particles:  summary.Particles,
		Matched:    summary.Matched,
		HistoCopy:  summary.HistoCopy,
	}
	query := `INSERT INTO FilterRuns (FileIn, FileOut, ParticleID, Events, Particles, Matched, HistoCopy)
		VALUES (:FileIn, :FileOut, :ParticleID, :Events, :Particles, :Matched, :HistoCopy)`
	if configuration.Verbosity > 2 {
		logger.Info(fmt.Sprintf("Query: %s", query), "database")
	}
	if _, err := db.NamedExec(query, entry); err != nil {
		return fmt.Errorf("error inserting run into database: %w", err)
	}
	return nil
}

// GetRuns lists the recorded runs on fileIn.
func GetRuns(db *sqlx.DB, fileIn string) ([]RunEntry, error) {
	query := db.Rebind(`SELECT FileIn, FileOut, ParticleID, Events, Particles, Matched, HistoCopy
		FROM FilterRuns WHERE FileIn = ? ORDER BY ParticleID`)
	var runs []RunEntry
	if err := db.Select(&runs, query, fileIn); err != nil {
		return nil, fmt.Errorf("error querying database: %w", err)
	}
	return runs, nil
}
