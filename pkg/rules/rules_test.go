package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables(t *testing.T) {
	tables := Default()

	assert.Len(t, tables.SignInRewards, 7)
	assert.Len(t, tables.PetLevels, 7)
	assert.Len(t, tables.GameDifficulties, 5)
	assert.Equal(t, "Weekly Streak", tables.SignInRewards[6].CouponType)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	tables, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), tables)
}

func TestLoadOverridesOnlyGivenSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
sign_in_rewards:
  - day: 1
    points: 100
    experience: 50
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tables, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, tables.SignInRewards, 1)
	assert.Equal(t, int64(100), tables.SignInRewards[0].Points)
	// untouched sections keep their defaults
	assert.Equal(t, Default().PetLevels, tables.PetLevels)
	assert.Equal(t, Default().GameDifficulties, tables.GameDifficulties)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNextLevelExp(t *testing.T) {
	tables := Default()

	assert.Equal(t, int64(100), tables.NextLevelExp(1))
	assert.Equal(t, int64(500), tables.NextLevelExp(3))
	// past the table the last requirement applies
	assert.Equal(t, int64(8000), tables.NextLevelExp(99))
}

func TestRewardForDayCycles(t *testing.T) {
	tables := Default()

	assert.Equal(t, int64(10), tables.RewardForDay(1).Points)
	assert.Equal(t, int64(50), tables.RewardForDay(7).Points)
	// day 8 wraps back to day 1
	assert.Equal(t, tables.RewardForDay(1), tables.RewardForDay(8))
	assert.Zero(t, tables.RewardForDay(0).Points)
}

func TestDifficulty(t *testing.T) {
	tables := Default()

	gd, ok := tables.Difficulty(3)
	require.True(t, ok)
	assert.Equal(t, 8, gd.MonsterCount)
	assert.Equal(t, 1.5, gd.SpeedMultiplier)

	_, ok = tables.Difficulty(42)
	assert.False(t, ok)
}
