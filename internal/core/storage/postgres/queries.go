package postgres

// SQL queries for record storage operations

const (
	// queryUpsertRecord writes a record in one statement. A second write under the
	// same (kind, key) overwrites the first.
	queryUpsertRecord = `
		INSERT INTO records (
			kind, key, guild_id, channel_id,
			occurred_at, fields, content, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (kind, key) DO UPDATE SET
			guild_id = EXCLUDED.guild_id,
			channel_id = EXCLUDED.channel_id,
			occurred_at = EXCLUDED.occurred_at,
			fields = EXCLUDED.fields,
			content = EXCLUDED.content,
			updated_at = NOW()
	`

	queryGetRecord = `
		SELECT kind, key, guild_id, channel_id, occurred_at, fields, content
		FROM records
		WHERE kind = $1 AND key = $2
	`

	// queryOldestTimestamp ignores records without a timestamp (reactions).
	queryOldestTimestamp = `
		SELECT occurred_at
		FROM records
		WHERE kind = $1 AND occurred_at IS NOT NULL
		ORDER BY occurred_at ASC
		LIMIT 1
	`

	queryChannelMessages = `
		SELECT kind, key, guild_id, channel_id, occurred_at, fields, content
		FROM records
		WHERE kind = 'message' AND channel_id = $1
		ORDER BY occurred_at ASC, key ASC
	`

	// queryDeleteBatchFmt is completed with a WHERE clause from buildFilter and the
	// placeholder of the batch limit.
	queryDeleteBatchFmt = `
		DELETE FROM records
		WHERE (kind, key) IN (
			SELECT kind, key FROM records
			WHERE %s
			LIMIT $%d
		)
	`

	queryTableExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'records'
		)
	`
)
