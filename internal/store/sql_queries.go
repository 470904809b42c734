package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Single-row statements. Both backends understand $N placeholders and the
// RETURNING clause (SQLite since 3.35), so one set of statements serves
// PostgreSQL and SQLite alike.
const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, username, email, password_hash;`

	findUserByUsername = `SELECT id, username, email, password_hash
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, email, password_hash
    FROM users
    WHERE id = $1;`

	createThread = `INSERT INTO threads (title, link, author_id, created_at)
    VALUES ($1, $2, $3, $4)
    RETURNING id, title, link, author_id, created_at;`

	getThreadByID = `SELECT id, title, link, author_id, created_at
    FROM threads
    WHERE id = $1;`

	createComment = `INSERT INTO comments (content, thread_id, author_id, parent_comment_id, created_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, content, thread_id, author_id, parent_comment_id, created_at;`

	getCommentByID = `SELECT id, content, thread_id, author_id, parent_comment_id, created_at
    FROM comments
    WHERE id = $1;`
)

// builder is the squirrel statement builder shared by the join queries.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListThreadsWithAuthorsQuery builds the thread-listing join: every
// thread together with its author row, newest thread first. The listing is
// unbounded; there is no pagination.
func buildListThreadsWithAuthorsQuery() (string, []any, error) {
	return builder.
		Select(
			"t.id", "t.title", "t.link", "t.author_id", "t.created_at",
			"u.id", "u.username", "u.email",
		).
		From("threads AS t").
		Join("users AS u ON u.id = t.author_id").
		OrderBy("t.created_at DESC", "t.id DESC").
		ToSql()
}

// buildListCommentsForThreadQuery builds the comment join for a single
// thread: every comment together with its author row, in posting order.
func buildListCommentsForThreadQuery(threadID int64) (string, []any, error) {
	return builder.
		Select(
			"c.id", "c.content", "c.thread_id", "c.author_id", "c.parent_comment_id", "c.created_at",
			"u.id", "u.username", "u.email",
		).
		From("comments AS c").
		Join("users AS u ON u.id = c.author_id").
		Where(sq.Eq{"c.thread_id": threadID}).
		OrderBy("c.created_at ASC", "c.id ASC").
		ToSql()
}
