package settings_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/degustaf/hypothesis/entropy"
	"github.com/degustaf/hypothesis/settings"
)

func TestDefaults(t *testing.T) {
	s := settings.New()

	assert.Equal(t, settings.DefaultMaxIterations, s.MaxIterations)
	assert.Equal(t, settings.DefaultMaxMutations, s.MaxMutations)
	assert.Equal(t, settings.DefaultMaxShrinks, s.MaxShrinks)
	assert.Equal(t, entropy.DefaultMaxSize, s.BufferSize)
	assert.Zero(t, s.Seed)
	require.NoError(t, s.Validate())

	// Seed 0 resolves to the default stream.
	assert.Equal(t, entropy.NewRand(entropy.DefaultSeed).Int63(), s.Rand().Int63())
	assert.NotNil(t, s.Logger())
}

func TestOptions_LastWins(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	s := settings.New(
		settings.WithMaxIterations(10),
		settings.WithMaxIterations(20),
		settings.WithMaxMutations(0),
		settings.WithMaxShrinks(0),
		settings.WithBufferSize(64),
		settings.WithRand(r),
	)

	assert.Equal(t, 20, s.MaxIterations)
	assert.Equal(t, 0, s.MaxMutations)
	assert.Equal(t, 0, s.MaxShrinks)
	assert.Equal(t, 64, s.BufferSize)
	assert.Same(t, r, s.Rand())

	// WithSeed after WithRand drops the explicit RNG.
	reseeded := s.With(settings.WithSeed(9))
	assert.NotSame(t, r, reseeded.Rand())
	assert.Equal(t, entropy.NewRand(9).Int63(), reseeded.Rand().Int63())
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { settings.WithMaxIterations(0) })
	require.Panics(t, func() { settings.WithMaxMutations(-1) })
	require.Panics(t, func() { settings.WithMaxShrinks(-1) })
	require.Panics(t, func() { settings.WithBufferSize(0) })
	require.Panics(t, func() { settings.WithRand(nil) })
	require.Panics(t, func() { settings.WithLogger(nil) })
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	s := settings.New(settings.WithLogger(l))
	s.Logger().Info("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		s    settings.Settings
	}{
		{"iterations", settings.Settings{MaxIterations: 0, BufferSize: 1}},
		{"mutations", settings.Settings{MaxIterations: 1, MaxMutations: -1, BufferSize: 1}},
		{"shrinks", settings.Settings{MaxIterations: 1, MaxShrinks: -1, BufferSize: 1}},
		{"buffer", settings.Settings{MaxIterations: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.s.Validate(), settings.ErrBadSettings)
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("HYPOTHESIS_MAX_ITERATIONS", "42")
	t.Setenv("HYPOTHESIS_SEED", "-7")

	s, err := settings.FromEnv(settings.New(settings.WithMaxShrinks(3)))
	require.NoError(t, err)
	assert.Equal(t, 42, s.MaxIterations)
	assert.Equal(t, int64(-7), s.Seed)
	assert.Equal(t, 3, s.MaxShrinks, "unset variables keep the base value")
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Setenv("HYPOTHESIS_BUFFER_SIZE", "0")
	_, err := settings.FromEnv(settings.Default())
	require.ErrorIs(t, err, settings.ErrBadSettings)

	t.Setenv("HYPOTHESIS_BUFFER_SIZE", "lots")
	_, err = settings.FromEnv(settings.Default())
	require.Error(t, err)
}

const profilesYAML = `
profiles:
  ci:
    max_iterations: 5000
    max_shrinks: 0
  dev:
    max_iterations: 100
    seed: 42
`

func TestLoadProfiles(t *testing.T) {
	p, err := settings.LoadProfiles(strings.NewReader(profilesYAML))
	require.NoError(t, err)
	require.Equal(t, []string{"ci", "dev"}, p.Names())

	ci, err := p.Get("ci")
	require.NoError(t, err)
	assert.Equal(t, 5000, ci.MaxIterations)
	assert.Equal(t, 0, ci.MaxShrinks)
	assert.Equal(t, settings.DefaultMaxMutations, ci.MaxMutations, "unlisted knobs keep defaults")

	dev, err := p.Get("dev")
	require.NoError(t, err)
	s := settings.New(settings.WithProfile(dev))
	assert.Equal(t, 100, s.MaxIterations)
	assert.Equal(t, int64(42), s.Seed)

	_, err = p.Get("prod")
	require.ErrorIs(t, err, settings.ErrUnknownProfile)
}

func TestLoadProfiles_Errors(t *testing.T) {
	empty, err := settings.LoadProfiles(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = settings.LoadProfiles(strings.NewReader("profiles:\n  bad:\n    max_iterations: 0\n"))
	require.ErrorIs(t, err, settings.ErrBadSettings)

	_, err = settings.LoadProfiles(strings.NewReader("profiles: [1, 2"))
	require.Error(t, err)
}
