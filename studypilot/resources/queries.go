package resources

const (
	queryCreate = `
		INSERT INTO resources (id, user_id, type, title, subject, content)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, type, title, subject, content, created_at
	`

	queryList = `
		SELECT id, user_id, type, title, subject, content, created_at
		FROM resources
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	queryGet = `
		SELECT id, user_id, type, title, subject, content, created_at
		FROM resources
		WHERE id = $1 AND user_id = $2
	`
)
