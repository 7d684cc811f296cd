package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ontypehq/timbre/internal/engine"
)

func TestLookupSpeakerIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, s := range engine.Speakers {
		for _, name := range []string{s.Name, strings.ToUpper(s.Name), strings.ToLower(s.Name)} {
			got, err := engine.LookupSpeaker(name)
			require.NoError(t, err)
			require.Equal(t, s, got)
		}
	}
}

func TestLookupSpeakerRejectsPartialMatches(t *testing.T) {
	t.Parallel()

	_, err := engine.LookupSpeaker("Aide")
	require.Error(t, err)
}

func TestLookupSpeakerUnknownCarriesCatalog(t *testing.T) {
	t.Parallel()

	_, err := engine.LookupSpeaker("Atlas")
	require.Error(t, err)

	var unknown *engine.UnknownSpeakerError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "Atlas", unknown.Name)
	require.Equal(t, engine.SpeakerNames(), unknown.Valid)
	require.Contains(t, unknown.Error(), "Aiden")
}
