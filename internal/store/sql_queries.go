package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Placeholders are numbered in order of appearance: pgx binds them by number
// and go-sqlite3 binds them by position.
const (
	createUser = `INSERT INTO users (email, pass_hash, salt, active, created)
		VALUES ($1, $2, $3, TRUE, $4)
		RETURNING user_id;`

	findActiveUserByEmail = `SELECT u.user_id, u.email, u.pass_hash, u.salt, wu.workspace_id
		FROM users u
		LEFT JOIN workspace_users wu ON wu.user_id = u.user_id
		WHERE u.email = $1 AND u.active
		ORDER BY wu.workspace_id;`

	createSession = `INSERT INTO sessions (session_key, user_id, expires, user_agent, active, created, last_used)
		VALUES ($1, $2, $3, $4, TRUE, $5, $6);`

	findUsableSession = `SELECT s.session_key, s.user_id, s.expires, s.user_agent, s.created, s.last_used
		FROM sessions s
		JOIN users u ON u.user_id = s.user_id
		WHERE s.session_key = $1 AND s.expires > $2 AND s.active AND u.active;`

	touchSession = `UPDATE sessions
		SET last_used = $1
		WHERE session_key = $2 AND active;`

	deactivateSession = `UPDATE sessions
		SET active = FALSE
		WHERE user_id = $1 AND session_key = $2 AND active;`

	createWorkspace = `INSERT INTO workspaces (name, personal)
		VALUES ($1, $2)
		RETURNING workspace_id;`

	addWorkspaceMember = `INSERT INTO workspace_users (workspace_id, user_id, role)
		VALUES ($1, $2, $3);`

	getMemberRole = `SELECT wu.role
		FROM workspace_users wu
		JOIN users u ON u.user_id = wu.user_id
		WHERE wu.workspace_id = $1 AND wu.user_id = $2 AND u.active;`

	countWorkspaceAdmins = `SELECT COUNT(*)
		FROM workspace_users wu
		JOIN users u ON u.user_id = wu.user_id
		WHERE wu.workspace_id = $1 AND wu.role = $2 AND u.active;`

	deleteWorkspaceMember = `DELETE FROM workspace_users
		WHERE workspace_id = $1 AND user_id = $2;`

	listWorkspaceMembers = `SELECT u.user_id, u.email, wu.role
		FROM workspace_users wu
		JOIN users u ON u.user_id = wu.user_id
		WHERE wu.workspace_id = $1 AND u.active
		ORDER BY u.user_id;`

	listUserWorkspaces = `SELECT w.workspace_id, w.name, w.personal
		FROM workspaces w
		JOIN workspace_users wu ON wu.workspace_id = w.workspace_id
		WHERE wu.user_id = $1
		ORDER BY w.workspace_id;`

	createExperiment = `INSERT INTO experiments (workspace_id, name, description, active, endpoint, api_key_hash, api_key_salt)
		VALUES ($1, $2, $3, TRUE, $4, $5, $6)
		RETURNING experiment_id;`

	addOutcome = `INSERT INTO outcomes (experiment_id, value, weight, description)
		VALUES ($1, $2, $3, $4)
		RETURNING outcome_id;`

	getExperimentWorkspace = `SELECT workspace_id
		FROM experiments
		WHERE experiment_id = $1;`

	getExperimentWithChildren = `SELECT e.experiment_id, e.workspace_id, e.name, e.description, e.active, e.endpoint,
			o.outcome_id, o.value, o.weight, o.description,
			r.result_id, r.subject_id, r.outcome_id, r.active
		FROM experiments e
		LEFT JOIN outcomes o ON o.experiment_id = e.experiment_id
		LEFT JOIN results r ON r.experiment_id = e.experiment_id
		WHERE e.experiment_id = $1
		ORDER BY o.outcome_id, r.result_id;`
)

// psql builds dynamic statements with "$n" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListActiveSessionsQuery selects the usable sessions of a user,
// most recently used first.
func buildListActiveSessionsQuery(userID, now int64) (string, []any, error) {
	return psql.
		Select("s.session_key", "s.user_id", "s.expires", "s.user_agent", "s.created", "s.last_used").
		From("sessions s").
		Join("users u ON u.user_id = s.user_id").
		Where(sq.Eq{"s.user_id": userID}).
		Where(sq.Gt{"s.expires": now}).
		Where("s.active AND u.active").
		OrderBy("s.last_used DESC", "s.created DESC").
		ToSql()
}

// buildListExperimentsQuery selects one page of a workspace's experiments.
func buildListExperimentsQuery(workspaceID int64, limit, offset uint64) (string, []any, error) {
	return psql.
		Select("experiment_id", "workspace_id", "name", "description", "active", "endpoint").
		From("experiments").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("experiment_id").
		Limit(limit).
		Offset(offset).
		ToSql()
}
