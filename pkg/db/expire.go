// Package db pkg/db/expire.go removes records older than the configured
// retention ages. Each method returns the number of rows deleted so the
// expire job can report a summary.
package db

import (
	"fmt"
	"time"
)

func (db *DB) expireOlderThan(query string, age time.Duration) (int64, error) {
	result, err := db.Exec(query, time.Now().UTC().Add(-age))
	if err != nil {
		return 0, fmt.Errorf("%w expired rows: %w", ErrFailedToDelete, err)
	}

	return result.RowsAffected()
}

// ExpireDevices removes devices that have not been successfully
// discovered within the retention age, along with their ports.
func (db *DB) ExpireDevices(age time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-age)

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFailedToBeginTx, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`
		DELETE FROM device_port WHERE ip IN (
			SELECT ip FROM device
			WHERE COALESCE(last_discover, creation) < ?
		)`, cutoff); err != nil {
		return 0, fmt.Errorf("%w expired device ports: %w", ErrFailedToDelete, err)
	}

	result, err := tx.Exec(
		"DELETE FROM device WHERE COALESCE(last_discover, creation) < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w expired devices: %w", ErrFailedToDelete, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return affected, tx.Commit()
}

// ExpireNodes removes MAC sightings not refreshed within the age.
func (db *DB) ExpireNodes(age time.Duration) (int64, error) {
	return db.expireOlderThan("DELETE FROM node WHERE time_last < ?", age)
}

// ExpireNodeIPs removes MAC-to-IP bindings not refreshed within the age.
func (db *DB) ExpireNodeIPs(age time.Duration) (int64, error) {
	return db.expireOlderThan("DELETE FROM node_ip WHERE time_last < ?", age)
}

// ExpireJobs removes finished queue entries older than the age. Queued
// and running jobs are never expired.
func (db *DB) ExpireJobs(age time.Duration) (int64, error) {
	return db.expireOlderThan(
		"DELETE FROM admin WHERE status IN ('done', 'error') AND finished < ?", age)
}

// ExpireUserLogs removes audit entries older than the age.
func (db *DB) ExpireUserLogs(age time.Duration) (int64, error) {
	return db.expireOlderThan("DELETE FROM user_log WHERE creation < ?", age)
}
