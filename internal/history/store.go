package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lumamaternal/care-engine/internal/checkin"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS checkins (
	checkin_id  TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL,
	mood        INTEGER NOT NULL,
	energy      INTEGER NOT NULL,
	body        INTEGER NOT NULL,
	bond        INTEGER NOT NULL,
	week        INTEGER NOT NULL,
	moment      TEXT NOT NULL,
	zone        INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS micromoment_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	event_id    TEXT NOT NULL,
	user_id     TEXT NOT NULL,
	type        TEXT NOT NULL,
	action      TEXT NOT NULL,
	context     TEXT,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS milestone_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	event_id    TEXT NOT NULL,
	user_id     TEXT NOT NULL,
	type        TEXT NOT NULL,
	action      TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS seen_fragments (
	user_id     TEXT NOT NULL,
	catalog     TEXT NOT NULL,
	fragment_id TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	PRIMARY KEY (user_id, catalog, fragment_id)
);

CREATE TABLE IF NOT EXISTS decision_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id     TEXT NOT NULL,
	checkin_id  TEXT,
	component   TEXT NOT NULL,
	decision    TEXT NOT NULL,
	reason      TEXT,
	created_at  TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct

// Store persists per-user care history in SQLite: check-ins, the two event
// logs, seen-fragment lists, and the decision provenance log.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStoreWithDB wraps an already-open database. The caller owns the
// connection and the schema.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region checkins

// RecordCheckin inserts a check-in, assigning an ID and timestamp when the
// caller left them empty, and returns the stored record.
func (s *Store) RecordCheckin(rec CheckinRecord) (CheckinRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO checkins (checkin_id, user_id, mood, energy, body, bond, week, moment, zone, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID,
		rec.Dimensions.Mood, rec.Dimensions.Energy, rec.Dimensions.Body, rec.Dimensions.Bond,
		rec.Week, string(rec.Moment), rec.Zone,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return CheckinRecord{}, fmt.Errorf("insert checkin: %w", err)
	}
	return rec, nil
}

// CheckinOn returns the user's check-in for the given calendar day, if any.
func (s *Store) CheckinOn(userID string, day time.Time) (CheckinRecord, bool, error) {
	rows, err := s.db.Query(
		`SELECT checkin_id, user_id, mood, energy, body, bond, week, moment, zone, created_at
		 FROM checkins WHERE user_id = ? ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return CheckinRecord{}, false, fmt.Errorf("query checkins: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanCheckin(rows)
		if err != nil {
			return CheckinRecord{}, false, err
		}
		if checkin.SameDay(rec.CreatedAt, day) {
			return rec, true, nil
		}
	}
	return CheckinRecord{}, false, rows.Err()
}

// RecentCheckins returns the most recent check-ins, newest first.
func (s *Store) RecentCheckins(userID string, limit int) ([]CheckinRecord, error) {
	rows, err := s.db.Query(
		`SELECT checkin_id, user_id, mood, energy, body, bond, week, moment, zone, created_at
		 FROM checkins WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}
	defer rows.Close()

	var records []CheckinRecord
	for rows.Next() {
		rec, err := scanCheckin(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// PresenceDays counts distinct calendar days with at least one check-in.
func (s *Store) PresenceDays(userID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(DISTINCT date(created_at)) FROM checkins WHERE user_id = ?`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count presence days: %w", err)
	}
	return count, nil
}

func scanCheckin(rows *sql.Rows) (CheckinRecord, error) {
	var rec CheckinRecord
	var moment, createdStr string
	err := rows.Scan(
		&rec.ID, &rec.UserID,
		&rec.Dimensions.Mood, &rec.Dimensions.Energy, &rec.Dimensions.Body, &rec.Dimensions.Bond,
		&rec.Week, &moment, &rec.Zone, &createdStr,
	)
	if err != nil {
		return CheckinRecord{}, fmt.Errorf("scan checkin: %w", err)
	}
	rec.Moment = checkin.Moment(moment)
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

// #endregion checkins

// #region micromoments

// AppendMicromoment appends one event to the user's micromoment log.
func (s *Store) AppendMicromoment(userID string, ev checkin.MicromomentEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO micromoment_events (event_id, user_id, type, action, context, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ev.ID, userID, ev.Type, string(ev.Action), nullIfEmpty(ev.Context),
		ev.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append micromoment: %w", err)
	}
	return nil
}

// RecentMicromoments returns the user's events since the cutoff, in
// insertion order.
func (s *Store) RecentMicromoments(userID string, since time.Time) ([]checkin.MicromomentEvent, error) {
	rows, err := s.db.Query(
		`SELECT event_id, type, action, context, created_at
		 FROM micromoment_events WHERE user_id = ? AND created_at >= ? ORDER BY id`,
		userID, since.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("list micromoments: %w", err)
	}
	defer rows.Close()

	var events []checkin.MicromomentEvent
	for rows.Next() {
		var ev checkin.MicromomentEvent
		var action, createdStr string
		var context sql.NullString
		if err := rows.Scan(&ev.ID, &ev.Type, &action, &context, &createdStr); err != nil {
			return nil, fmt.Errorf("scan micromoment: %w", err)
		}
		ev.Action = checkin.EventAction(action)
		if context.Valid {
			ev.Context = context.String
		}
		ev.Timestamp, _ = time.Parse(time.RFC3339Nano, createdStr)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// #endregion micromoments

// #region milestones

// AppendMilestone appends one event to the user's milestone log.
func (s *Store) AppendMilestone(userID string, ev checkin.MilestoneEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO milestone_events (event_id, user_id, type, action, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		ev.ID, userID, ev.Type, string(ev.Action), ev.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append milestone: %w", err)
	}
	return nil
}

// Milestones returns the user's full milestone log in insertion order.
func (s *Store) Milestones(userID string) ([]checkin.MilestoneEvent, error) {
	rows, err := s.db.Query(
		`SELECT event_id, type, action, created_at
		 FROM milestone_events WHERE user_id = ? ORDER BY id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	defer rows.Close()

	var events []checkin.MilestoneEvent
	for rows.Next() {
		var ev checkin.MilestoneEvent
		var action, createdStr string
		if err := rows.Scan(&ev.ID, &ev.Type, &action, &createdStr); err != nil {
			return nil, fmt.Errorf("scan milestone: %w", err)
		}
		ev.Action = checkin.EventAction(action)
		ev.Timestamp, _ = time.Parse(time.RFC3339Nano, createdStr)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// #endregion milestones

// #region seen-fragments

// MarkSeen records fragment IDs as seen for one catalog. Re-marking an
// already-seen ID is a no-op.
func (s *Store) MarkSeen(userID string, catalog SeenCatalog, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, id := range ids {
		_, err := tx.Exec(
			`INSERT OR IGNORE INTO seen_fragments (user_id, catalog, fragment_id, created_at)
			 VALUES (?, ?, ?, ?)`,
			userID, string(catalog), id, now,
		)
		if err != nil {
			return fmt.Errorf("mark seen %s: %w", id, err)
		}
	}
	return tx.Commit()
}

// SeenIDs returns the user's seen list for one catalog in insertion order.
func (s *Store) SeenIDs(userID string, catalog SeenCatalog) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT fragment_id FROM seen_fragments
		 WHERE user_id = ? AND catalog = ? ORDER BY rowid`,
		userID, string(catalog),
	)
	if err != nil {
		return nil, fmt.Errorf("list seen: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan seen: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ClearSeen empties the user's seen list for one catalog. The composer's
// reset signal is the only expected caller.
func (s *Store) ClearSeen(userID string, catalog SeenCatalog) error {
	_, err := s.db.Exec(
		`DELETE FROM seen_fragments WHERE user_id = ? AND catalog = ?`,
		userID, string(catalog),
	)
	if err != nil {
		return fmt.Errorf("clear seen: %w", err)
	}
	return nil
}

// #endregion seen-fragments

// #region decision-log

// LogDecision writes one provenance entry to the decision log.
func (s *Store) LogDecision(entry DecisionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO decision_log (user_id, checkin_id, component, decision, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.UserID, nullIfEmpty(entry.CheckinID), entry.Component,
		entry.Decision, nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// Decisions returns the most recent provenance entries, newest first.
func (s *Store) Decisions(userID string, limit int) ([]DecisionEntry, error) {
	rows, err := s.db.Query(
		`SELECT user_id, checkin_id, component, decision, reason, created_at
		 FROM decision_log WHERE user_id = ? ORDER BY id DESC LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var entries []DecisionEntry
	for rows.Next() {
		var e DecisionEntry
		var checkinID, reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.UserID, &checkinID, &e.Component, &e.Decision, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		if checkinID.Valid {
			e.CheckinID = checkinID.String
		}
		if reason.Valid {
			e.Reason = reason.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion decision-log

// #region helpers

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
