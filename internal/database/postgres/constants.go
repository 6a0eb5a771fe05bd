package postgres

// poolStatsID is the key of the single pool_stats row
const poolStatsID = 1

// Error Messages
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit transaction"
	ErrMsgFailedToGetPoolStats     = "failed to get pool stats"
	ErrMsgFailedToAdjustStaked     = "failed to adjust staked total"
	ErrMsgFailedToLoadSnapshots    = "failed to load snapshots"
	ErrMsgFailedToSaveSnapshot     = "failed to save snapshot"
	ErrMsgFailedToDeleteSnapshots  = "failed to delete snapshots"
	ErrMsgFailedToListSessions     = "failed to list sessions"
	ErrMsgFailedToMigrate          = "failed to migrate postgres schema"
)

// SQL statements
const (
	queryPoolStats = `
		SELECT total_kai_earned, total_kai_staked, total_potions, active_users, daily_volume
		FROM pool_stats WHERE id = $1`

	queryAdjustStaked = `
		UPDATE pool_stats
		SET total_kai_staked = GREATEST(0, total_kai_staked + $2), updated_at = NOW()
		WHERE id = $1
		RETURNING total_kai_earned, total_kai_staked, total_potions, active_users, daily_volume`

	queryLoadSnapshots = `SELECT key, doc FROM session_snapshots WHERE session_id = $1`

	queryUpsertSnapshot = `
		INSERT INTO session_snapshots (session_id, key, doc, updated_at)
		VALUES ($1, $2, $3::jsonb, NOW())
		ON CONFLICT (session_id, key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at`

	queryDeleteSnapshots = `DELETE FROM session_snapshots WHERE session_id = $1`

	queryListSessions = `SELECT DISTINCT session_id FROM session_snapshots ORDER BY session_id`
)
