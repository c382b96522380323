// Package rpg implements the Dark Ages turn-based role-playing game:
// characters, items, quests, a location graph, combat, and JSON saves.
package rpg

// Class is a playable character class.
type Class int

const (
	Warrior Class = iota
	Mage
	Rogue
	Cleric
	Paladin
	Ranger
)

var classNames = [...]string{"Warrior", "Mage", "Rogue", "Cleric", "Paladin", "Ranger"}

func (c Class) String() string { return classNames[c] }

func ClassCount() int { return len(classNames) }

// Faction is a political group the character holds reputation with.
type Faction string

const (
	RoyalCourt   Faction = "royal_court"
	Rebels       Faction = "rebels"
	Merchants    Faction = "merchants"
	Scholars     Faction = "scholars"
	ThievesGuild Faction = "thieves_guild"
	KnightsOrder Faction = "knights_order"
)

var AllFactions = []Faction{RoyalCourt, Rebels, Merchants, Scholars, ThievesGuild, KnightsOrder}

var factionTitles = map[Faction]string{
	RoyalCourt:   "Royal Court",
	Rebels:       "Rebels",
	Merchants:    "Merchants",
	Scholars:     "Scholars",
	ThievesGuild: "Thieves Guild",
	KnightsOrder: "Knights Order",
}

func (f Faction) Title() string { return factionTitles[f] }

// Religion is a faith the character can devote to.
type Religion string

const (
	OrderOfLight   Religion = "order_of_light"
	ShadowCult     Religion = "shadow_cult"
	NatureSpirits  Religion = "nature_spirits"
	WarGods        Religion = "war_gods"
	MerchantsGuild Religion = "merchants_guild"
)

var AllReligions = []Religion{OrderOfLight, ShadowCult, NatureSpirits, WarGods, MerchantsGuild}

// Stats are the six core attributes.
type Stats struct {
	Strength     int `json:"strength"`
	Intelligence int `json:"intelligence"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

var baseStats = Stats{10, 10, 10, 10, 10, 10}

// classBonuses returns the stat spread each class starts with.
func classBonuses(c Class) Stats {
	s := baseStats
	switch c {
	case Warrior:
		s.Strength += 5
		s.Constitution += 3
	case Mage:
		s.Intelligence += 5
		s.Wisdom += 3
	case Rogue:
		s.Dexterity += 5
		s.Charisma += 3
	case Cleric:
		s.Wisdom += 5
		s.Constitution += 3
	case Paladin:
		s.Strength += 3
		s.Wisdom += 3
		s.Charisma += 2
	case Ranger:
		s.Dexterity += 3
		s.Wisdom += 3
		s.Constitution += 2
	}
	return s
}

// Character is the player state that persists in saves.
type Character struct {
	Name      string `json:"name"`
	Class     Class  `json:"class"`
	Level     int    `json:"level"`
	XP        int    `json:"experience"`
	XPNeeded  int    `json:"experience_needed"`
	Stats     Stats  `json:"stats"`
	MaxHealth int    `json:"max_health"`
	Health    int    `json:"current_health"`
	MaxMana   int    `json:"max_mana"`
	Mana      int    `json:"current_mana"`
	Gold      int    `json:"gold"`

	SkillPoints     int `json:"skill_points"`
	AttributePoints int `json:"attribute_points"`

	Reputation map[Faction]int  `json:"reputation"`
	Faith      map[Religion]int `json:"faith"`

	Weapon    string `json:"equipped_weapon,omitempty"`
	Armor     string `json:"equipped_armor,omitempty"`
	Shield    string `json:"equipped_shield,omitempty"`
	Accessory string `json:"equipped_accessory,omitempty"`

	Location string `json:"current_location"`
}

// NewCharacter creates a level 1 character of the given class with
// neutral standing everywhere.
func NewCharacter(name string, class Class) *Character {
	c := &Character{
		Name:       name,
		Class:      class,
		Level:      1,
		XPNeeded:   100,
		Stats:      classBonuses(class),
		Gold:       100,
		Reputation: map[Faction]int{},
		Faith:      map[Religion]int{},
		Location:   "royal_city",
	}
	for _, f := range AllFactions {
		c.Reputation[f] = 0
	}
	for _, r := range AllReligions {
		c.Faith[r] = 0
	}
	c.Recalculate()
	c.Health = c.MaxHealth
	c.Mana = c.MaxMana
	return c
}

// Recalculate refreshes derived health and mana from stats and level,
// clamping current values to the new maximums.
func (c *Character) Recalculate() {
	c.MaxHealth = 50 + c.Stats.Constitution*10 + c.Level*20
	c.MaxMana = 25 + c.Stats.Intelligence*5 + c.Level*10
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
	if c.Mana > c.MaxMana {
		c.Mana = c.MaxMana
	}
}

// GainXP adds experience and applies any level-ups earned.
func (c *Character) GainXP(amount int) {
	c.XP += amount
	for c.XP >= c.XPNeeded {
		c.levelUp()
	}
}

func (c *Character) levelUp() {
	c.XP -= c.XPNeeded
	c.Level++
	c.XPNeeded = int(float64(c.XPNeeded) * 1.2)
	c.SkillPoints += 2
	c.AttributePoints++
	c.Recalculate()
	c.Health = c.MaxHealth
	c.Mana = c.MaxMana
}

// ModifyReputation shifts faction standing, clamped to [-100, 100].
func (c *Character) ModifyReputation(f Faction, amount int) {
	c.Reputation[f] = clampRep(c.Reputation[f] + amount)
}

// ModifyFaith shifts devotion, clamped to [-100, 100].
func (c *Character) ModifyFaith(r Religion, amount int) {
	c.Faith[r] = clampRep(c.Faith[r] + amount)
}

// Heal restores health up to the maximum.
func (c *Character) Heal(amount int) {
	c.Health += amount
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
}

// RestoreMana restores mana up to the maximum.
func (c *Character) RestoreMana(amount int) {
	c.Mana += amount
	if c.Mana > c.MaxMana {
		c.Mana = c.MaxMana
	}
}

func clampRep(v int) int {
	if v < -100 {
		return -100
	}
	if v > 100 {
		return 100
	}
	return v
}
