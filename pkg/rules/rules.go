package rules

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Tables holds the game rule data that used to live as in-process constants.
// Operators override them through a YAML file; missing sections keep their
// defaults.
type (
	SignInReward struct {
		Day        int    `yaml:"day"`
		Points     int64  `yaml:"points"`
		Experience int64  `yaml:"experience"`
		CouponType string `yaml:"coupon_type,omitempty"`
	}

	PetLevel struct {
		Level       int   `yaml:"level"`
		RequiredExp int64 `yaml:"required_exp"`
	}

	GameDifficulty struct {
		Level           int     `yaml:"level"`
		MonsterCount    int     `yaml:"monster_count"`
		SpeedMultiplier float64 `yaml:"speed_multiplier"`
	}

	Tables struct {
		SignInRewards    []SignInReward   `yaml:"sign_in_rewards"`
		PetLevels        []PetLevel       `yaml:"pet_levels"`
		GameDifficulties []GameDifficulty `yaml:"game_difficulties"`
	}
)

func Default() *Tables {
	return &Tables{
		SignInRewards: []SignInReward{
			{Day: 1, Points: 10, Experience: 5},
			{Day: 2, Points: 10, Experience: 5},
			{Day: 3, Points: 20, Experience: 10},
			{Day: 4, Points: 20, Experience: 10},
			{Day: 5, Points: 30, Experience: 15},
			{Day: 6, Points: 30, Experience: 15},
			{Day: 7, Points: 50, Experience: 30, CouponType: "Weekly Streak"},
		},
		PetLevels: []PetLevel{
			{Level: 1, RequiredExp: 100},
			{Level: 2, RequiredExp: 250},
			{Level: 3, RequiredExp: 500},
			{Level: 4, RequiredExp: 1000},
			{Level: 5, RequiredExp: 2000},
			{Level: 6, RequiredExp: 4000},
			{Level: 7, RequiredExp: 8000},
		},
		GameDifficulties: []GameDifficulty{
			{Level: 1, MonsterCount: 3, SpeedMultiplier: 1.0},
			{Level: 2, MonsterCount: 5, SpeedMultiplier: 1.2},
			{Level: 3, MonsterCount: 8, SpeedMultiplier: 1.5},
			{Level: 4, MonsterCount: 12, SpeedMultiplier: 1.8},
			{Level: 5, MonsterCount: 16, SpeedMultiplier: 2.2},
		},
	}
}

// Load merges the YAML file at path over the defaults. A missing file is not
// an error; the defaults apply as-is.
func Load(path string) (*Tables, error) {
	tables := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return tables, nil
		}
		return nil, err
	}

	var override Tables
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, err
	}

	if len(override.SignInRewards) > 0 {
		tables.SignInRewards = override.SignInRewards
	}
	if len(override.PetLevels) > 0 {
		tables.PetLevels = override.PetLevels
	}
	if len(override.GameDifficulties) > 0 {
		tables.GameDifficulties = override.GameDifficulties
	}
	return tables, nil
}

// NextLevelExp reports the experience required to leave the given level.
// Levels past the table return the last entry's requirement.
func (t *Tables) NextLevelExp(level int) int64 {
	for _, pl := range t.PetLevels {
		if pl.Level == level {
			return pl.RequiredExp
		}
	}
	if len(t.PetLevels) == 0 {
		return 0
	}
	return t.PetLevels[len(t.PetLevels)-1].RequiredExp
}

func (t *Tables) Difficulty(level int) (GameDifficulty, bool) {
	for _, gd := range t.GameDifficulties {
		if gd.Level == level {
			return gd, true
		}
	}
	return GameDifficulty{}, false
}

// RewardForDay returns the reward for the given day in a sign-in streak,
// cycling through the table for streaks longer than the table.
func (t *Tables) RewardForDay(day int) SignInReward {
	if len(t.SignInRewards) == 0 || day < 1 {
		return SignInReward{}
	}
	idx := (day - 1) % len(t.SignInRewards)
	return t.SignInRewards[idx]
}
