// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines catalog, session, and bodyweight entry tables plus indexes.
package storage

// initSchema creates or updates the database schema. Every statement is
// idempotent, so re-running the full set on each open is safe.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		muscle_group TEXT NOT NULL,
		default_increment REAL NOT NULL DEFAULT 2.5
	);

	CREATE TABLE IF NOT EXISTS routines (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS routine_exercises (
		routine_id TEXT NOT NULL REFERENCES routines(id) ON DELETE CASCADE,
		exercise_id TEXT NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		UNIQUE(routine_id, exercise_id)
	);

	CREATE TABLE IF NOT EXISTS workout_sessions (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		routine_code TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(date, routine_code)
	);

	CREATE TABLE IF NOT EXISTS workout_entries (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES workout_sessions(id) ON DELETE CASCADE,
		exercise_id TEXT NOT NULL REFERENCES exercises(id),
		set_index INTEGER NOT NULL,
		weight REAL,
		reps INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(session_id, exercise_id, set_index)
	);

	CREATE TABLE IF NOT EXISTS bodyweight_workout_entries (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		exercise_type TEXT NOT NULL,
		set_index INTEGER NOT NULL,
		duration_seconds INTEGER,
		reps INTEGER,
		floors INTEGER,
		distance_km REAL,
		time_seconds INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(date, exercise_type, set_index)
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_date ON workout_sessions(date);
	CREATE INDEX IF NOT EXISTS idx_entries_session ON workout_entries(session_id);
	CREATE INDEX IF NOT EXISTS idx_entries_exercise ON workout_entries(exercise_id);
	CREATE INDEX IF NOT EXISTS idx_bw_entries_date ON bodyweight_workout_entries(date);
	CREATE INDEX IF NOT EXISTS idx_bw_entries_type_date ON bodyweight_workout_entries(exercise_type, date DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
