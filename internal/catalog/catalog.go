// Package catalog holds the static game data: weapons, bosses with their phase and
// weakness tables, dungeon stages and achievement definitions.
package catalog

import (
	_ "embed"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
)

//go:embed data/default.yaml
var defaultData []byte

// BossEntry is a boss definition together with the pattern that exploits its weakness
type BossEntry struct {
	entities.Boss `yaml:",inline"`
	Weakness      entities.Pattern `yaml:"weakness"`
}

// Catalog is read-only after Load. It is safe for concurrent use.
type Catalog struct {
	StarterWeaponID string                 `yaml:"starter_weapon"`
	Weapons         []entities.Weapon      `yaml:"weapons"`
	Bosses          []BossEntry            `yaml:"bosses"`
	Stages          []entities.Stage       `yaml:"stages"`
	Achievements    []entities.Achievement `yaml:"achievements"`

	weapons map[string]entities.Weapon
	bosses  map[string]BossEntry
}

// Default parses the embedded catalog
func Default() (*Catalog, error) {
	return Parse(defaultData)
}

// LoadFile parses a catalog from a yaml file on disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}

	return Parse(data)
}

// Parse decodes and validates catalog yaml
func Parse(data []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}

	if err := c.index(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Catalog) index() error {
	vb := errors.NewValidationBuilder()

	c.weapons = make(map[string]entities.Weapon, len(c.Weapons))
	for i, w := range c.Weapons {
		if w.ID == "" {
			vb.Fieldf("weapons", "entry %d has no id", i)
			continue
		}
		if _, dup := c.weapons[w.ID]; dup {
			vb.Fieldf("weapons", "duplicate id %s", w.ID)
		}
		if w.CritChance < 0 || w.CritChance > 1 {
			vb.Fieldf("weapons", "%s crit_chance must be within [0,1]", w.ID)
		}
		switch w.Rarity {
		case entities.RarityCommon, entities.RarityRare, entities.RarityEpic, entities.RarityLegendary:
		default:
			vb.Fieldf("weapons", "%s has unknown rarity %q", w.ID, w.Rarity)
		}
		c.weapons[w.ID] = w
	}

	errors.ValidateRequired("starter_weapon", c.StarterWeaponID, vb)
	if c.StarterWeaponID != "" {
		if _, ok := c.weapons[c.StarterWeaponID]; !ok {
			vb.Fieldf("starter_weapon", "unknown weapon %s", c.StarterWeaponID)
		}
	}

	c.bosses = make(map[string]BossEntry, len(c.Bosses))
	for i := range c.Bosses {
		b := &c.Bosses[i]
		if b.ID == "" {
			vb.Fieldf("bosses", "entry %d has no id", i)
			continue
		}
		if _, dup := c.bosses[b.ID]; dup {
			vb.Fieldf("bosses", "duplicate id %s", b.ID)
		}
		if b.MaxHP <= 0 {
			vb.Fieldf("bosses", "%s max_hp must be positive", b.ID)
		}
		switch b.Retaliation {
		case "":
			b.Retaliation = entities.RetaliationRatio
		case entities.RetaliationRatio, entities.RetaliationPhase:
		default:
			vb.Fieldf("bosses", "%s has unknown retaliation %q", b.ID, b.Retaliation)
		}
		if b.Weakness != "" && !knownPattern(b.Weakness) {
			vb.Fieldf("bosses", "%s has unknown weakness %q", b.ID, b.Weakness)
		}
		for _, p := range b.Phases {
			if p.Threshold <= 0 || p.Threshold > 100 {
				vb.Fieldf("bosses", "%s phase threshold %v must be within (0,100]", b.ID, p.Threshold)
			}
			if p.Mitigation < 0 || p.Mitigation >= 1 {
				vb.Fieldf("bosses", "%s phase mitigation %v must be within [0,1)", b.ID, p.Mitigation)
			}
		}
		sort.SliceStable(b.Phases, func(x, y int) bool {
			return b.Phases[x].Threshold > b.Phases[y].Threshold
		})
		c.bosses[b.ID] = *b
	}

	seenStages := make(map[string]bool, len(c.Stages))
	for i, s := range c.Stages {
		if s.ID == "" {
			vb.Fieldf("stages", "entry %d has no id", i)
			continue
		}
		if seenStages[s.ID] {
			vb.Fieldf("stages", "duplicate id %s", s.ID)
		}
		seenStages[s.ID] = true
		if len(s.Variants) == 0 {
			vb.Fieldf("stages", "%s has no language variants", s.ID)
		}
	}

	for i, a := range c.Achievements {
		if a.ID == "" || a.Stat == "" {
			vb.Fieldf("achievements", "entry %d needs id and stat", i)
		}
	}

	return vb.Build()
}

func knownPattern(p entities.Pattern) bool {
	for _, known := range []entities.Pattern{
		entities.PatternRecursion, entities.PatternBaseCase, entities.PatternLoopBreak,
		entities.PatternListComp, entities.PatternTryExcept, entities.PatternWhileLoop,
	} {
		if p == known {
			return true
		}
	}
	return false
}

// Weapon looks up a weapon by id
func (c *Catalog) Weapon(id string) (entities.Weapon, bool) {
	w, ok := c.weapons[id]
	return w, ok
}

// StarterWeapon returns the weapon every new save is equipped with
func (c *Catalog) StarterWeapon() entities.Weapon {
	return c.weapons[c.StarterWeaponID]
}

// LootPool returns every non-Common weapon in catalog order
func (c *Catalog) LootPool() []entities.Weapon {
	var out []entities.Weapon
	for _, w := range c.Weapons {
		if w.Rarity != entities.RarityCommon {
			out = append(out, w)
		}
	}
	return out
}

// NewBoss instantiates a fresh boss at full health
func (c *Catalog) NewBoss(id string) (entities.Boss, error) {
	entry, ok := c.bosses[id]
	if !ok {
		return entities.Boss{}, errors.NotFoundf("boss %s not found", id)
	}

	b := entry.Boss
	b.HP = b.MaxHP
	b.Phases = append([]entities.Phase(nil), entry.Phases...)
	return b, nil
}

// Weaknesses returns the boss id to exploiting pattern table
func (c *Catalog) Weaknesses() map[string]entities.Pattern {
	out := make(map[string]entities.Pattern, len(c.bosses))
	for id, b := range c.bosses {
		if b.Weakness != "" {
			out[id] = b.Weakness
		}
	}
	return out
}

// Stage looks up a stage by id
func (c *Catalog) Stage(id string) (entities.Stage, bool) {
	for _, s := range c.Stages {
		if s.ID == id {
			return s, true
		}
	}
	return entities.Stage{}, false
}

// DefaultPlayer returns the state of a brand new save
func (c *Catalog) DefaultPlayer() entities.Player {
	starter := c.StarterWeapon()
	return entities.Player{
		Level:          1,
		ClassType:      entities.ClassApprentice,
		HP:             100,
		MaxHP:          100,
		XP:             0,
		MaxXP:          100,
		Inventory:      []entities.Weapon{starter},
		EquippedWeapon: &starter,
		AdvancedSkills: map[entities.AdvancedSkill]bool{},
		Stats:          map[string]int{},
		Achievements:   []string{},
	}
}
