package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoftDeleteSetsAllColumnsTogether(t *testing.T) {
	post := Post{ID: uuid.New(), Title: "t", Content: "c"}
	adminID := uuid.New()
	at := time.Now()

	columns := post.SoftDelete(adminID, ReasonSpam, at)

	assert.True(t, post.IsDeleted)
	require.NotNil(t, post.DeletedByID)
	assert.Equal(t, adminID, *post.DeletedByID)
	require.NotNil(t, post.DeletedAt)
	assert.Equal(t, at, *post.DeletedAt)
	require.NotNil(t, post.DeletionReason)
	assert.Equal(t, ReasonSpam, *post.DeletionReason)

	assert.Len(t, columns, 4, "the four moderation columns are one transition")
	assert.Equal(t, true, columns["is_deleted"])
}

func TestRestoreClearsAllColumnsTogether(t *testing.T) {
	post := Post{ID: uuid.New(), Title: "t", Content: "c"}
	post.SoftDelete(uuid.New(), ReasonAbuse, time.Now())

	columns := post.Restore()

	assert.False(t, post.IsDeleted)
	assert.Nil(t, post.DeletedByID)
	assert.Nil(t, post.DeletedAt)
	assert.Nil(t, post.DeletionReason)

	assert.Len(t, columns, 4)
	for column, value := range columns {
		if column == "is_deleted" {
			assert.Equal(t, false, value)
		} else {
			assert.Nil(t, value)
		}
	}
}

func TestPublishIsIdempotent(t *testing.T) {
	post := Post{ID: uuid.New()}

	first := time.Now()
	post.Publish(first)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, first, *post.PublishedAt)

	post.Publish(first.Add(time.Hour))
	assert.Equal(t, first, *post.PublishedAt, "repeated publish keeps the first timestamp")

	post.Unpublish()
	assert.False(t, post.Published)
	assert.Nil(t, post.PublishedAt)

	second := first.Add(2 * time.Hour)
	post.Publish(second)
	assert.Equal(t, second, *post.PublishedAt, "a new publish cycle gets a new timestamp")
}

func TestEnumValidators(t *testing.T) {
	for _, reason := range DeletionReasons {
		assert.True(t, IsValidDeletionReason(string(reason)))
	}
	assert.False(t, IsValidDeletionReason("boredom"))

	assert.True(t, IsValidUserStatus("suspended"))
	assert.False(t, IsValidUserStatus("frozen"))

	assert.True(t, IsValidRole("admin"))
	assert.False(t, IsValidRole("superuser"))

	assert.True(t, IsValidCategory("Programming"))
	assert.False(t, IsValidCategory("Gossip"))
}
