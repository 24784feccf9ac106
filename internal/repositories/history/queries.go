package history

const recordExtractionQuery = `
	INSERT INTO extraction_history (
		user_id,
		video_id,
		links_found,
		links_kept
	)
	VALUES ($1, $2, $3, $4)
`

const recentExtractionsQuery = `
	SELECT
		id,
		video_id,
		links_found,
		links_kept,
		created_at
	FROM extraction_history
	WHERE user_id = $1
	ORDER BY created_at DESC, id DESC
	LIMIT $2
`
