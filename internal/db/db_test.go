package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// History is optional; every method must be a no-op on a nil receiver so a
// service without DATABASE_URL never branches around persistence.
func TestNilDBIsSafe(t *testing.T) {
	var database *DB
	ctx := context.Background()

	id, err := database.CreateGeneration(ctx, "Jane Doe", "default.docx", "pdf", false)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)

	assert.NoError(t, database.CompleteGeneration(ctx, id, "object.pdf", time.Now()))
	assert.NoError(t, database.FailGeneration(ctx, id, "reason"))

	database.Close()
}

func TestNilGenerationIDIsSafe(t *testing.T) {
	var database *DB
	ctx := context.Background()

	// A failed CreateGeneration leaves callers holding uuid.Nil; the update
	// methods must tolerate it even with a live pool.
	assert.NoError(t, database.CompleteGeneration(ctx, uuid.Nil, "object.pdf", time.Now()))
	assert.NoError(t, database.FailGeneration(ctx, uuid.Nil, "reason"))
}
