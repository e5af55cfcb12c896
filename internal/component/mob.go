package component

// Rarity is a mob quality tier.
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityUnusual
	RarityRare
	RarityEpic
	RarityLegendary
	RarityMythic
	RarityExotic
	RarityUltimate
)

var rarityNames = [...]string{"common", "unusual", "rare", "epic", "legendary", "mythic", "exotic", "ultimate"}

func (r Rarity) String() string {
	if int(r) < len(rarityNames) {
		return rarityNames[r]
	}
	return "unknown"
}

// ParseRarity maps a rarity name to its tier.
func ParseRarity(s string) (Rarity, bool) {
	for i, n := range rarityNames {
		if n == s {
			return Rarity(i), true
		}
	}
	return RarityCommon, false
}

// Mob holds static per-instance metadata.
type Mob struct {
	Species string
	Rarity  Rarity
}

// Vitals tracks health for anything that can die without being despawned,
// e.g. a player waiting to respawn.
type Vitals struct {
	Health    float32
	MaxHealth float32
}

func (v *Vitals) Dead() bool { return v.Health <= 0 }
