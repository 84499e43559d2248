// Package db pkg/db/jobs.go implements the admin job queue. Claiming a
// job is a compare-and-swap on its status inside a transaction, so two
// workers polling at once can never both own the same job.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/netminder/netminder/pkg/models"
)

const jobColumns = `job, action, device, port, subaction, status,
	username, userip, log, debug, entered, started, finished`

func scanJob(row rowScanner) (*models.Job, error) {
	var job models.Job

	var started, finished sql.NullTime

	err := row.Scan(
		&job.ID, &job.Action, &job.Device, &job.Port, &job.Subaction,
		&job.Status, &job.Username, &job.UserIP, &job.Log, &job.Debug,
		&job.Entered, &started, &finished,
	)
	if err != nil {
		return nil, err
	}

	if started.Valid {
		job.Started = &started.Time
	}

	if finished.Valid {
		job.Finished = &finished.Time
	}

	return &job, nil
}

// EnqueueJob inserts a new queued job and returns its id.
func (db *DB) EnqueueJob(job *models.Job) (int64, error) {
	if _, err := models.ParseAction(string(job.Action)); err != nil {
		return 0, fmt.Errorf("%w job: %w", ErrFailedToInsert, err)
	}

	if job.Action.RequiresDevice() && job.Device == "" {
		return 0, fmt.Errorf("%w job: action %q requires a device", ErrFailedToInsert, job.Action)
	}

	result, err := db.Exec(`
		INSERT INTO admin (action, device, port, subaction, username, userip, debug)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		job.Action, job.Device, job.Port, job.Subaction,
		job.Username, job.UserIP, job.Debug,
	)
	if err != nil {
		return 0, fmt.Errorf("%w job: %w", ErrFailedToInsert, err)
	}

	return result.LastInsertId()
}

// DequeueJob claims the oldest queued job, marking it running, and
// returns it. Returns (nil, nil) when the queue is empty. The claim is a
// status compare-and-swap so that concurrent callers each get distinct
// jobs.
func (db *DB) DequeueJob() (*models.Job, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToBeginTx, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var id int64

	err = tx.QueryRow(
		"SELECT job FROM admin WHERE status = 'queued' ORDER BY job LIMIT 1",
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w queued job: %w", ErrFailedToQuery, err)
	}

	result, err := tx.Exec(
		"UPDATE admin SET status = ?, started = ? WHERE job = ? AND status = 'queued'",
		models.StatusRunning, time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("%w job %d claim: %w", ErrFailedToUpdate, id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w job %d claim: %w", ErrFailedToUpdate, id, err)
	}

	// Another worker won the race; treat this poll as empty.
	if affected == 0 {
		return nil, nil
	}

	job, err := scanJob(tx.QueryRow("SELECT "+jobColumns+" FROM admin WHERE job = ?", id))
	if err != nil {
		return nil, fmt.Errorf("%w job %d: %w", ErrFailedToScan, id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w job %d claim: %w", ErrFailedToUpdate, id, err)
	}

	return job, nil
}

// CompleteJob records the outcome of a running job.
func (db *DB) CompleteJob(id int64, status models.JobStatus, logText string) error {
	result, err := db.Exec(
		"UPDATE admin SET status = ?, finished = ?, log = ? WHERE job = ?",
		status, time.Now().UTC(), logText, id,
	)
	if err != nil {
		return fmt.Errorf("%w job %d: %w", ErrFailedToUpdate, id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w job %d: %w", ErrFailedToUpdate, id, err)
	}

	if affected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// GetJob returns one job by id.
func (db *DB) GetJob(id int64) (*models.Job, error) {
	job, err := scanJob(db.QueryRow("SELECT "+jobColumns+" FROM admin WHERE job = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJobNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("%w job %d: %w", ErrFailedToScan, id, err)
	}

	return job, nil
}

// ListJobs returns the most recent jobs, newest first.
func (db *DB) ListJobs(limit int) ([]models.Job, error) {
	rows, err := db.Query("SELECT "+jobColumns+" FROM admin ORDER BY job DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("%w jobs: %w", ErrFailedToQuery, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var jobs []models.Job

	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("%w job row: %w", ErrFailedToScan, err)
		}

		jobs = append(jobs, *job)
	}

	return jobs, rows.Err()
}

// HasPendingJob reports whether a job with the given action is already
// queued or running. The scheduler uses it to avoid stacking duplicate
// sweeps behind a slow queue.
func (db *DB) HasPendingJob(action models.JobAction) (bool, error) {
	var count int

	err := db.QueryRow(
		"SELECT COUNT(*) FROM admin WHERE action = ? AND status IN ('queued', 'running')",
		action,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("%w pending jobs: %w", ErrFailedToQuery, err)
	}

	return count > 0, nil
}

// RecoverAbandonedJobs marks jobs left running by a previous process as
// errored. Called once at startup, before any worker polls.
func (db *DB) RecoverAbandonedJobs(logText string) (int64, error) {
	result, err := db.Exec(
		"UPDATE admin SET status = ?, finished = ?, log = ? WHERE status = ?",
		models.StatusError, time.Now().UTC(), logText, models.StatusRunning,
	)
	if err != nil {
		return 0, fmt.Errorf("%w abandoned jobs: %w", ErrFailedToUpdate, err)
	}

	return result.RowsAffected()
}
