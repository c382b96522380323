package rpg

// ItemType classifies how an item is used.
type ItemType int

const (
	Weapon ItemType = iota
	Armor
	Shield
	Accessory
	Consumable
	QuestItem
	Material
)

var itemTypeNames = [...]string{"Weapon", "Armor", "Shield", "Accessory", "Consumable", "Quest Item", "Material"}

func (t ItemType) String() string { return itemTypeNames[t] }

type Item struct {
	Name        string
	Type        ItemType
	Value       int
	Description string
	Attack      int
	Defense     int
	StatBonus   Stats
	Effect      string // consumable effect id
}

// Items is the static item catalog, keyed by id.
var Items = map[string]Item{
	"iron_sword":   {Name: "Iron Sword", Type: Weapon, Value: 50, Description: "A sturdy iron blade", Attack: 10},
	"steel_sword":  {Name: "Steel Sword", Type: Weapon, Value: 150, Description: "A sharp steel sword", Attack: 20},
	"magic_staff":  {Name: "Magic Staff", Type: Weapon, Value: 100, Description: "A staff crackling with energy", Attack: 5, StatBonus: Stats{Intelligence: 5}},
	"silver_dagger": {Name: "Silver Dagger", Type: Weapon, Value: 75, Description: "A quick silver blade", Attack: 8, StatBonus: Stats{Dexterity: 3}},

	"leather_armor": {Name: "Leather Armor", Type: Armor, Value: 40, Description: "Basic leather protection", Defense: 5},
	"chain_mail":    {Name: "Chain Mail", Type: Armor, Value: 120, Description: "Flexible metal armor", Defense: 12},
	"plate_armor":   {Name: "Plate Armor", Type: Armor, Value: 300, Description: "Heavy plate protection", Defense: 20, StatBonus: Stats{Constitution: 3}},
	"mage_robes":    {Name: "Mage Robes", Type: Armor, Value: 80, Description: "Robes of magical power", Defense: 3, StatBonus: Stats{Intelligence: 8}},

	"wooden_shield": {Name: "Wooden Shield", Type: Shield, Value: 25, Description: "Basic wooden protection", Defense: 3},
	"iron_shield":   {Name: "Iron Shield", Type: Shield, Value: 60, Description: "Sturdy iron shield", Defense: 8},

	"power_ring":    {Name: "Ring of Power", Type: Accessory, Value: 200, Description: "Increases all abilities", StatBonus: Stats{Strength: 2, Intelligence: 2, Dexterity: 2}},
	"health_amulet": {Name: "Amulet of Vitality", Type: Accessory, Value: 150, Description: "Increases maximum health", StatBonus: Stats{Constitution: 5}},

	"health_potion":   {Name: "Health Potion", Type: Consumable, Value: 20, Description: "Restores 50 health", Effect: "heal_50"},
	"mana_potion":     {Name: "Mana Potion", Type: Consumable, Value: 30, Description: "Restores 30 mana", Effect: "mana_30"},
	"strength_elixir": {Name: "Strength Elixir", Type: Consumable, Value: 100, Description: "Temporarily increases strength", Effect: "temp_str_5"},

	"royal_seal":   {Name: "Royal Seal", Type: QuestItem, Description: "The king's official seal"},
	"ancient_tome": {Name: "Ancient Tome", Type: QuestItem, Description: "A book of forgotten knowledge"},

	"iron_ore":      {Name: "Iron Ore", Type: Material, Value: 10, Description: "Raw iron for crafting"},
	"silver_nugget": {Name: "Silver Nugget", Type: Material, Value: 25, Description: "Pure silver"},
	"magic_crystal": {Name: "Magic Crystal", Type: Material, Value: 50, Description: "A crystal infused with magic"},
}
