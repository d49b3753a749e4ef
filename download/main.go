package main

import (
	"database/sql"
	"fmt"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/marisvali/bloxorz/world"
	"os"
	"time"
)

func main() {
	DownloadRecordings()
}

func DownloadRecordings() {
	db := ConnectToDbSql()
	rows, err := db.Query("SELECT " +
		"start_moment, " +
		"COALESCE(end_moment, start_moment), " +
		"user, " +
		"release_version, " +
		"COALESCE(simulation_version, -1), " +
		"COALESCE(input_version, -1), " +
		"id, " +
		"playthrough " +
		"FROM playthroughs " +
		"WHERE playthrough IS NOT NULL")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.endMoment, &row.user,
			&row.releaseVersion, &row.simulationVersion, &row.inputVersion,
			&row.id, &row.data)
		Check(err)
		dbRows = append(dbRows, row)
	}

	for i := range dbRows {
		dir := dbRows[i].user
		_ = os.Mkdir(dir, os.ModeDir|0755)
		filename := PlaythroughFilename(dir, dbRows[i])
		WriteFile(filename, dbRows[i].data)
		if err := VerifyPlaythrough(dbRows[i]); err != nil {
			fmt.Printf("%s: %v\n", filename, err)
		}
	}
}

// VerifyPlaythrough checks that a downloaded playthrough can be replayed by
// this build. Older playthroughs are kept even if they can't.
func VerifyPlaythrough(row dbRow) error {
	p, err := world.DeserializePlaythrough(row.data)
	if err != nil {
		return err
	}
	if p.Id != row.id {
		return fmt.Errorf("playthrough id %s does not match row id %s", p.Id,
			row.id)
	}
	_, err = world.NewWorldFromPlaythrough(p)
	return err
}

// PlaythroughFilename names a downloaded playthrough after the moment it
// started and the versions it needs, e.g. 20261019-143005.bloxorz-1-1. The
// versions tell which build of the game can play it back. A version is -1 if
// the field was NULL in the database.
func PlaythroughFilename(dir string, row dbRow) string {
	m := row.startMoment
	return fmt.Sprintf("%s/%d%02d%02d-%02d%02d%02d.bloxorz-%d-%d", dir,
		m.Year(), m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second(),
		row.simulationVersion, row.inputVersion)
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("BLOXORZ_DBUSER"),
		Passwd:               os.Getenv("BLOXORZ_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("BLOXORZ_DBADDR"),
		DBName:               os.Getenv("BLOXORZ_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	err = db.Ping()
	Check(err)
	return db
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}

type dbRow struct {
	startMoment       time.Time
	endMoment         time.Time
	user              string
	releaseVersion    int64
	simulationVersion int64
	inputVersion      int64
	id                uuid.UUID
	data              []byte
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
