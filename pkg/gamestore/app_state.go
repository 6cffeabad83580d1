package gamestore

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"
)

const onboardingKey = "onboarding_complete"
const schemaVersionKey = "schema_version"

// currentSchemaVersion is recorded after every version check
const currentSchemaVersion = "1.0.2"

// wipeBelowVersion is the snapshot-schema threshold; games stored by an older
// release do not decode and are dropped
var wipeBelowVersion = version{major: 1, minor: 0, patch: 2}

// Onboarded reports whether onboarding has been completed
func (s *Store) Onboarded(ctx context.Context) (bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = $1`, onboardingKey).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return value == "true", nil
}

// SetOnboarded records the onboarding flag
// Clearing the flag removes the record, matching the absent-means-false read
func (s *Store) SetOnboarded(ctx context.Context, onboarded bool) error {
	if !onboarded {
		_, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = $1`, onboardingKey)
		return err
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO app_state (key, value) VALUES ($1, 'true')
ON CONFLICT (key) DO UPDATE SET value = excluded.value`, onboardingKey)
	return err
}

// CheckSchemaVersion wipes stored games when the recorded snapshot-schema
// version predates the supported threshold, then records the current version
// Runs once at startup
func (s *Store) CheckSchemaVersion(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var stored string
	err = tx.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = $1`, schemaVersionKey).Scan(&stored)
	if err != nil && err != sql.ErrNoRows {
		rollback(tx)
		return err
	}

	storedVersion, ok := parseVersion(stored)
	if !ok || storedVersion.lessThan(wipeBelowVersion) {
		if _, err := tx.ExecContext(ctx, `DELETE FROM games`); err != nil {
			rollback(tx)
			return err
		}

		logrus.WithFields(logrus.Fields{
			"stored":  stored,
			"current": currentSchemaVersion,
		}).Info("stored games cleared due to schema version change")
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO app_state (key, value) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = excluded.value`, schemaVersionKey, currentSchemaVersion); err != nil {
		rollback(tx)
		return err
	}

	return tx.Commit()
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		logrus.WithError(err).Error("could not rollback transaction")
	}
}
