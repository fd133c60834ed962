package progression

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5))
	assert.Equal(t, 0, Clamp(0))
	assert.Equal(t, 50, Clamp(50))
	assert.Equal(t, 100, Clamp(100))
	assert.Equal(t, 100, Clamp(250))
}

func TestApplyDeltaStaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	fields := []string{
		FieldHappiness, FieldCuriosity, FieldObedience,
		FieldEnergy, FieldAngry, FieldSad,
	}

	s := DefaultStats()
	for i := 0; i < 5000; i++ {
		field := fields[rng.Intn(len(fields))]
		delta := rng.Intn(1000) - 500
		s = ApplyDelta(s, field, delta)

		for name, v := range map[string]int{
			"happiness": s.Happiness, "curiosity": s.Curiosity,
			"obedience": s.Obedience, "energy": s.Energy,
			"angry": s.Angry, "sad": s.Sad,
		} {
			require.GreaterOrEqual(t, v, StatMin, "field %s", name)
			require.LessOrEqual(t, v, StatMax, "field %s", name)
		}
	}
}

func TestApplyDeltaUnknownFieldIsNoop(t *testing.T) {
	s := DefaultStats()
	assert.Equal(t, s, ApplyDelta(s, "charisma", 10))
}

func TestAddXPRollover(t *testing.T) {
	s := DefaultStats()
	s.XP = 97

	s, gained := AddXP(s, 5)
	assert.Equal(t, 1, gained)
	assert.Equal(t, 2, s.XP)
	assert.Equal(t, 2, s.Level)
}

func TestAddXPMultiLevelJump(t *testing.T) {
	s := DefaultStats()
	s.Level = 3
	s.XP = 40

	// 40 + 275 = 315 -> 3 levels gained, 15 remainder
	s, gained := AddXP(s, 275)
	assert.Equal(t, 3, gained)
	assert.Equal(t, 6, s.Level)
	assert.Equal(t, 15, s.XP)
}

func TestAddXPQuotientRemainderProperty(t *testing.T) {
	// amount = k*xpToNext + r must always yield level += k, xp = r
	// when starting from xp = 0.
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		k := rng.Intn(20)
		r := rng.Intn(XPPerLevel)

		s := DefaultStats()
		startLevel := 1 + rng.Intn(50)
		s.Level = startLevel

		s, gained := AddXP(s, k*XPPerLevel+r)
		require.Equal(t, k, gained)
		require.Equal(t, startLevel+k, s.Level)
		require.Equal(t, r, s.XP)
		require.Less(t, s.XP, s.XPToNextLevel)
	}
}

func TestAddXPNegativeIgnored(t *testing.T) {
	s := DefaultStats()
	s.XP = 10

	out, gained := AddXP(s, -50)
	assert.Equal(t, 0, gained)
	assert.Equal(t, s, out)
}

func TestNormalizeRepairsOutOfRangeSnapshot(t *testing.T) {
	s := Stats{
		Happiness:     180,
		Curiosity:     -20,
		Obedience:     55,
		Energy:        101,
		Angry:         -1,
		Sad:           300,
		Level:         0,
		XP:            250,
		XPToNextLevel: 0,
	}

	out := Normalize(s)
	assert.Equal(t, 100, out.Happiness)
	assert.Equal(t, 0, out.Curiosity)
	assert.Equal(t, 100, out.Energy)
	assert.Equal(t, 0, out.Angry)
	assert.Equal(t, 100, out.Sad)
	assert.Equal(t, XPPerLevel, out.XPToNextLevel)
	// level 0 raised to 1, then 250 xp rolls into 2 more levels
	assert.Equal(t, 3, out.Level)
	assert.Equal(t, 50, out.XP)
}
