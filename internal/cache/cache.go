// Package cache keeps the most recent fetch of every filter in a
// local sqlite database, so reports can be rebuilt offline.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lderezinski/wkreport/internal/api"
)

// ErrMiss is returned by Load when the cache has no entry for the
// requested filter.
var ErrMiss = errors.New("no cached issues for filter")

const schema = `
create table if not exists fetches (
	filter_id text primary key,
	filter_name text not null,
	fetched_at text not null
);
create table if not exists issues (
	filter_id text not null,
	position integer not null,
	issue_key text not null,
	summary text not null,
	status text not null,
	parent text not null,
	resolved text not null,
	url text not null,
	primary key (filter_id, position)
);
`

type Cache struct {
	db *sql.DB
}

func getCacheLocation() string {
	loc, ok := os.LookupEnv("WKREPORT_CACHE")
	if ok {
		return loc
	}
	return ".wkreport/cache.db"
}

// Open opens the cache database, creating it and its schema on first
// use.
func Open() (*Cache, error) {
	path := getCacheLocation()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o777); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Save replaces the cached issues for a filter with a fresh fetch.
// All rows are written in one transaction so a crash cannot leave a
// half-replaced fetch behind.
func (c *Cache) Save(filterID, filterName string, issues []api.Issue, fetchedAt time.Time) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		insert into fetches values (?, ?, ?)
		on conflict (filter_id)
		do update set
			filter_name = excluded.filter_name,
			fetched_at = excluded.fetched_at;
	`, filterID, filterName, fetchedAt.UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	if _, err := tx.Exec(`delete from issues where filter_id = ?;`, filterID); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`insert into issues values (?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, issue := range issues {
		_, err := stmt.Exec(
			filterID, i,
			issue.Key, issue.Summary, issue.Status,
			issue.Parent, issue.Resolved, issue.URL,
		)
		if err != nil {
			return fmt.Errorf("%s on %s", err, issue.Key)
		}
	}

	return tx.Commit()
}

// Load returns the cached issues for a filter in their original
// order, along with when they were fetched. A filter the cache has
// never seen yields ErrMiss.
func (c *Cache) Load(filterID string) ([]api.Issue, time.Time, error) {
	var fetchedAtRaw string
	err := c.db.QueryRow(
		`select fetched_at from fetches where filter_id = ?`, filterID,
	).Scan(&fetchedAtRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrMiss
	}
	if err != nil {
		return nil, time.Time{}, err
	}

	fetchedAt, err := time.Parse(time.RFC3339, fetchedAtRaw)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parse fetched_at: %w", err)
	}

	rows, err := c.db.Query(`
		select issue_key, summary, status, parent, resolved, url
		from issues where filter_id = ? order by position
	`, filterID)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer rows.Close()

	issues := []api.Issue{}
	for rows.Next() {
		var issue api.Issue
		err := rows.Scan(
			&issue.Key, &issue.Summary, &issue.Status,
			&issue.Parent, &issue.Resolved, &issue.URL,
		)
		if err != nil {
			return nil, time.Time{}, err
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, err
	}

	return issues, fetchedAt, nil
}

// FindFilter resolves a filter identifier against cached fetches:
// first as an exact ID, then as a case-insensitive name.
func (c *Cache) FindFilter(identifier string) (string, bool) {
	var id string
	err := c.db.QueryRow(
		`select filter_id from fetches where filter_id = ?`, identifier,
	).Scan(&id)
	if err == nil {
		return id, true
	}

	err = c.db.QueryRow(
		`select filter_id from fetches where lower(filter_name) = lower(?)`, identifier,
	).Scan(&id)
	if err == nil {
		return id, true
	}

	return "", false
}
