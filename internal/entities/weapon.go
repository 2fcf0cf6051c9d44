package entities

// Rarity grades catalog weapons. Loot drops never include Common weapons.
type Rarity string

// Rarity values
const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// Weapon is an immutable catalog entry
type Weapon struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Damage     int     `json:"damage" yaml:"damage"`
	CritChance float64 `json:"crit_chance" yaml:"crit_chance"`
	Special    string  `json:"special,omitempty" yaml:"special,omitempty"`
	Rarity     Rarity  `json:"rarity" yaml:"rarity"`
}
