package users

const (
	userColumns = `id, email, name, password_hash, provider, provider_id, tier, referral_code, email_verified, created_at, updated_at`

	queryCreateWithPassword = `
		INSERT INTO users (email, name, password_hash, referral_code, verification_token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns + `
	`

	queryFindOrCreateByProvider = `
		INSERT INTO users (provider, provider_id, email, name, referral_code, email_verified)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (provider, provider_id)
		DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			updated_at = NOW()
		RETURNING ` + userColumns + `
	`

	queryFindByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	queryFindByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	queryVerifyEmail = `
		UPDATE users
		SET email_verified = true, verification_token = NULL, updated_at = NOW()
		WHERE verification_token = $1
		RETURNING id
	`

	querySetResetToken = `
		UPDATE users
		SET reset_token = $1, reset_token_expires_at = $2, updated_at = NOW()
		WHERE email = $3
		RETURNING id
	`

	queryResetPassword = `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_token_expires_at = NULL, updated_at = NOW()
		WHERE reset_token = $2 AND reset_token_expires_at > NOW()
		RETURNING id
	`
)
