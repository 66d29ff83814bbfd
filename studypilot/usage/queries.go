package usage

const (
	queryCountSince = `
		SELECT COUNT(*)
		FROM usage_records
		WHERE user_id = $1 AND created_at >= $2
	`

	queryRecord = `
		INSERT INTO usage_records (user_id, tool, subject)
		VALUES ($1, $2, $3)
	`
)
