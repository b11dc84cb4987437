package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/datapad/internal/domain"
	"github.com/mmcdole/datapad/internal/service"
	"github.com/mmcdole/datapad/internal/view"
)

func TestFetchRosterCmdAddressesInstance(t *testing.T) {
	svc := service.NewCharacterService(&fakeRepo{}, nil, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())

	msg := FetchRosterCmd(ctx, cancel, svc, view.ID(42))()
	res, ok := msg.(RosterLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, view.ID(42), res.ViewID)
	assert.NoError(t, res.Err)
	assert.Len(t, res.Records, len(people))

	// Released after completion
	assert.Error(t, ctx.Err())
}

func TestLookupCharacterCmdNotFound(t *testing.T) {
	svc := service.NewCharacterService(&fakeRepo{}, nil, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())

	res := LookupCharacterCmd(ctx, cancel, svc, view.ID(7), "Nonexistent")().(CharacterLoadedMsg)
	assert.Equal(t, view.ID(7), res.ViewID)
	assert.Equal(t, "Nonexistent", res.Name)
	assert.ErrorIs(t, res.Err, domain.ErrNotFound)
}
