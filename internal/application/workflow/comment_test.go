package workflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proyectos-api/internal/domain"
)

func TestAddComment(t *testing.T) {
	f := newFixture(t, false)
	p := f.createProject(t, "P-C1")
	ctx := context.Background()

	c, err := f.comments.Add(ctx, hr, p.ID, "  revisar planos  ")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "revisar planos", c.CommentText)
	assert.Equal(t, hr.UserID, c.UserID)

	_, err = f.comments.Add(ctx, hr, "no-existe", "hola")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.comments.Add(ctx, hr, p.ID, "")
	assert.NoError(t, err)
}

func TestAddComment_EnBlancoNoCreaNada(t *testing.T) {
	f := newFixture(t, false)
	p := f.createProject(t, "P-C2")
	ctx := context.Background()

	for _, text := range []string{"", "   ", "\n\t"} {
		c, err := f.comments.Add(ctx, sales, p.ID, text)
		require.NoError(t, err)
		assert.Nil(t, c)
	}
	list, err := f.store.Comments().ListByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
