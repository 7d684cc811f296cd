package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ontypehq/timbre/internal/engine"
)

func TestModelForDesignIgnoresSize(t *testing.T) {
	t.Parallel()

	for _, size := range []engine.ModelSize{"", engine.SizeSmall, engine.SizeLarge, "13B"} {
		id, err := engine.ModelFor(engine.ModeDesign, size)
		require.NoError(t, err)
		require.Equal(t, engine.ModelDesign, id)
	}
}

func TestModelForCustomAndClone(t *testing.T) {
	t.Parallel()

	id, err := engine.ModelFor(engine.ModeCustom, engine.SizeSmall)
	require.NoError(t, err)
	require.Equal(t, engine.ModelCustomSmall, id)

	id, err = engine.ModelFor(engine.ModeCustom, engine.SizeLarge)
	require.NoError(t, err)
	require.Equal(t, engine.ModelCustomLarge, id)

	id, err = engine.ModelFor(engine.ModeClone, engine.SizeSmall)
	require.NoError(t, err)
	require.Equal(t, engine.ModelBaseSmall, id)

	id, err = engine.ModelFor(engine.ModeClone, engine.SizeLarge)
	require.NoError(t, err)
	require.Equal(t, engine.ModelBaseLarge, id)
}

func TestModelForDefaultsToLarge(t *testing.T) {
	t.Parallel()

	id, err := engine.ModelFor(engine.ModeClone, "")
	require.NoError(t, err)
	require.Equal(t, engine.ModelBaseLarge, id)
}

func TestModelForRejectsBadSize(t *testing.T) {
	t.Parallel()

	for _, mode := range []engine.Mode{engine.ModeCustom, engine.ModeClone} {
		_, err := engine.ModelFor(mode, "3B")
		require.ErrorIs(t, err, engine.ErrInvalidModelSize)
	}
}

func TestModelForRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	_, err := engine.ModelFor("karaoke", engine.SizeLarge)
	require.ErrorIs(t, err, engine.ErrUnknownMode)
}
