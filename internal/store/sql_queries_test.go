// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildListThreadsWithAuthorsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListThreadsWithAuthorsQuery()
	require.NoError(t, err)

	// the listing is unconditional, so no args are expected
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from threads as t")
	require.Contains(t, q, "join users as u on u.id = t.author_id")

	// newest first, ID as tiebreaker for same-timestamp threads
	require.Contains(t, q, "order by t.created_at desc, t.id desc")

	// columns presence (subset / key columns)
	require.Contains(t, q, "t.title")
	require.Contains(t, q, "t.link")
	require.Contains(t, q, "t.created_at")
	require.Contains(t, q, "u.username")
}

func Test_buildListCommentsForThreadQuery_SQLContainsParts(t *testing.T) {
	threadID := int64(42)

	query, args, err := buildListCommentsForThreadQuery(threadID)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, threadID, args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from comments as c")
	require.Contains(t, q, "join users as u on u.id = c.author_id")
	require.Contains(t, q, "c.thread_id")

	// posting order: oldest first, ID as tiebreaker
	require.Contains(t, q, "order by c.created_at asc, c.id asc")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// columns presence (subset / key columns)
	require.Contains(t, q, "c.content")
	require.Contains(t, q, "c.parent_comment_id")
	require.Contains(t, q, "u.username")
}
