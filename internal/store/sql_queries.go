package store

import (
	"time"

	"github.com/MarkAnthonyM/BlockPlot/models"
	sq "github.com/Masterminds/squirrel"
)

const userColumns = `user_id, auth_subject, api_key, key_present, block_count, created_at, last_login_at, blocks_last_synced_at`

const (
	findUserBySubject = `SELECT ` + userColumns + `
    FROM users
    WHERE auth_subject = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	createUser = `INSERT INTO users (auth_subject, key_present, block_count, created_at, last_login_at, blocks_last_synced_at)
    VALUES ($1, FALSE, 0, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	updateLastLogin = `UPDATE users SET last_login_at = $1 WHERE user_id = $2;`

	updateBlocksLastSynced = `UPDATE users SET blocks_last_synced_at = $1 WHERE user_id = $2;`

	setAPIKey = `UPDATE users SET api_key = $1, key_present = TRUE WHERE user_id = $2;`

	reserveSkillblockSlot = `UPDATE users SET block_count = block_count + 1
    WHERE user_id = $1 AND block_count < $2
    RETURNING block_count;`

	insertSkillblock = `INSERT INTO skillblocks (user_id, category, is_offline_category, name, description)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING block_id;`
)

const onDailyRecordConflict = "ON CONFLICT (block_id, day) DO UPDATE SET seconds_spent = EXCLUDED.seconds_spent"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildListSkillblocksQuery(userID int64) (string, []any, error) {
	return psql.
		Select("block_id", "user_id", "category", "is_offline_category", "name", "description").
		From("skillblocks").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("block_id").
		ToSql()
}

func buildDailyRecordsDescQuery(blockID int64) (string, []any, error) {
	return psql.
		Select("day", "seconds_spent").
		From("date_times").
		Where(sq.Eq{"block_id": blockID}).
		OrderBy("day DESC").
		ToSql()
}

func buildUpsertDailyRecordQuery(blockID int64, day time.Time, seconds int) (string, []any, error) {
	return psql.
		Update("date_times").
		Set("seconds_spent", seconds).
		Where(sq.Eq{"block_id": blockID}).
		Where(sq.Eq{"day": day}).
		ToSql()
}

// buildInsertDailyRecordsQuery builds a single multi-row INSERT. A row that
// already exists for (block_id, day) is overwritten rather than duplicated.
func buildInsertDailyRecordsQuery(blockID int64, records []models.DayTotal) (string, []any, error) {
	builder := psql.
		Insert("date_times").
		Columns("block_id", "day", "seconds_spent")

	for _, r := range records {
		builder = builder.Values(blockID, models.TruncateToDay(r.Day), r.Seconds)
	}

	return builder.Suffix(onDailyRecordConflict).ToSql()
}
