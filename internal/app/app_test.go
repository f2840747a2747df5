package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/classifier"
	"github.com/ranjitdasofficial/kiit-connect-circle/pkg/config"
)

var now = classifier.FixedClock(time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC))

func defaults(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "")
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return cfg
}

func TestNewService_BuiltInSeed(t *testing.T) {
	svc, err := NewService(context.Background(), defaults(t), now, zap.NewNop())
	require.NoError(t, err)

	profiles, err := svc.Store().Profiles(context.Background())
	require.NoError(t, err)
	assert.Len(t, profiles, 6)
	assert.Equal(t, "me", svc.CurrentUser())
}

func TestNewService_SeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
communities:
  - id: "1"
    name: Chess Club
    description: Weekly games.
    members: 12
`), 0o600))

	cfg := defaults(t)
	cfg.Catalog.SeedPath = path
	svc, err := NewService(context.Background(), cfg, now, zap.NewNop())
	require.NoError(t, err)

	r, err := svc.Communities(context.Background(), "chess")
	require.NoError(t, err)
	assert.Len(t, r.Items, 1)
}

func TestNewService_Errors(t *testing.T) {
	cfg := defaults(t)
	cfg.Catalog.SeedPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := NewService(context.Background(), cfg, now, zap.NewNop())
	assert.Error(t, err)

	cfg = defaults(t)
	cfg.Catalog.Timezone = "Nowhere/City"
	_, err = NewService(context.Background(), cfg, nil, zap.NewNop())
	assert.Error(t, err)
}
