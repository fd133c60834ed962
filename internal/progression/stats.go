// Package progression owns the pet's numeric state: bounded stats,
// experience accrual, and the per-interaction transition function. All
// functions here are pure; callers persist and notify.
package progression

// Stat bounds and the leveling policy constant.
const (
	StatMin = 0
	StatMax = 100

	// XPPerLevel is the experience needed to advance one level.
	XPPerLevel = 100
)

// Stats is the pet's bounded attribute snapshot plus progression
// counters. Every attribute stays in [StatMin, StatMax]; XP stays in
// [0, XPToNextLevel) and Level is at least 1.
type Stats struct {
	Happiness int `json:"happiness"`
	Curiosity int `json:"curiosity"`
	Obedience int `json:"obedience"`
	Energy    int `json:"energy"`
	Angry     int `json:"angry"`
	Sad       int `json:"sad"`

	Level         int `json:"level"`
	XP            int `json:"xp"`
	XPToNextLevel int `json:"xpToNextLevel"`
}

// DefaultStats returns the stats of a freshly selected companion.
func DefaultStats() Stats {
	return Stats{
		Happiness:     70,
		Curiosity:     65,
		Obedience:     55,
		Energy:        80,
		Angry:         0,
		Sad:           0,
		Level:         1,
		XP:            0,
		XPToNextLevel: XPPerLevel,
	}
}

// Clamp pins v into the valid stat range.
func Clamp(v int) int {
	if v < StatMin {
		return StatMin
	}
	if v > StatMax {
		return StatMax
	}
	return v
}

// Field names accepted by ApplyDelta.
const (
	FieldHappiness = "happiness"
	FieldCuriosity = "curiosity"
	FieldObedience = "obedience"
	FieldEnergy    = "energy"
	FieldAngry     = "angry"
	FieldSad       = "sad"
)

// ApplyDelta adds delta to the named attribute, clamping the result.
// Unknown field names leave the snapshot unchanged.
func ApplyDelta(s Stats, field string, delta int) Stats {
	switch field {
	case FieldHappiness:
		s.Happiness = Clamp(s.Happiness + delta)
	case FieldCuriosity:
		s.Curiosity = Clamp(s.Curiosity + delta)
	case FieldObedience:
		s.Obedience = Clamp(s.Obedience + delta)
	case FieldEnergy:
		s.Energy = Clamp(s.Energy + delta)
	case FieldAngry:
		s.Angry = Clamp(s.Angry + delta)
	case FieldSad:
		s.Sad = Clamp(s.Sad + delta)
	}
	return s
}

// AddXP accrues amount experience points, rolling the XP counter over
// into level gains. A single call can cross several levels: the level
// advances by total/XPToNextLevel and the remainder carries over as the
// new XP. Negative amounts are ignored.
func AddXP(s Stats, amount int) (Stats, int) {
	if amount < 0 {
		return s, 0
	}
	if s.XPToNextLevel <= 0 {
		s.XPToNextLevel = XPPerLevel
	}

	total := s.XP + amount
	gained := total / s.XPToNextLevel
	s.XP = total % s.XPToNextLevel
	s.Level += gained
	return s, gained
}

// Normalize re-clamps every attribute and re-rolls any out-of-range XP.
// Applied defensively to externally supplied snapshots so no invariant
// escapes the package.
func Normalize(s Stats) Stats {
	s.Happiness = Clamp(s.Happiness)
	s.Curiosity = Clamp(s.Curiosity)
	s.Obedience = Clamp(s.Obedience)
	s.Energy = Clamp(s.Energy)
	s.Angry = Clamp(s.Angry)
	s.Sad = Clamp(s.Sad)

	if s.XPToNextLevel <= 0 {
		s.XPToNextLevel = XPPerLevel
	}
	if s.Level < 1 {
		s.Level = 1
	}
	if s.XP < 0 {
		s.XP = 0
	}
	if s.XP >= s.XPToNextLevel {
		s.Level += s.XP / s.XPToNextLevel
		s.XP = s.XP % s.XPToNextLevel
	}
	return s
}
