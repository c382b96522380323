package rpg

import "fmt"

const dayLength = 600 // game seconds per day

// Game holds one playthrough: the character, inventory, quest state and
// the world clock.
type Game struct {
	Character *Character
	Inventory map[string]int
	Active    map[string]*Quest
	Completed map[string]*Quest
	Clock     float64
	Day       int
	Log       []string
}

// NewGame starts a fresh playthrough with the starting kit equipped.
func NewGame(name string, class Class) *Game {
	g := &Game{
		Character: NewCharacter(name, class),
		Inventory: map[string]int{
			"health_potion": 3,
			"iron_sword":    1,
			"leather_armor": 1,
		},
		Active:    map[string]*Quest{},
		Completed: map[string]*Quest{},
		Day:       1,
	}
	g.Character.Weapon = "iron_sword"
	g.Character.Armor = "leather_armor"
	g.Character.Recalculate()
	return g
}

// Tick advances the world clock and rolls the day over.
func (g *Game) Tick(dt float64) {
	g.Clock += dt
	if g.Clock > dayLength {
		g.Day++
		g.Clock = 0
	}
}

func (g *Game) logf(format string, args ...any) {
	g.Log = append(g.Log, fmt.Sprintf(format, args...))
	if len(g.Log) > 40 {
		g.Log = g.Log[len(g.Log)-40:]
	}
}

// StartQuest activates a catalog quest if it is not already running or
// finished.
func (g *Game) StartQuest(id string) bool {
	if _, running := g.Active[id]; running {
		return false
	}
	if _, done := g.Completed[id]; done {
		return false
	}
	q := NewQuest(id)
	if q == nil {
		return false
	}
	g.Active[id] = q
	g.logf("Quest started: %s", q.Title)
	return true
}

// CompleteObjective ticks one objective; finishing the last one
// completes the quest and pays its rewards.
func (g *Game) CompleteObjective(id string, index int) {
	q, ok := g.Active[id]
	if !ok || index < 0 || index >= len(q.Done) {
		return
	}
	q.Done[index] = true
	if q.AllDone() {
		g.completeQuest(id)
	}
}

func (g *Game) completeQuest(id string) {
	q := g.Active[id]
	q.Completed = true

	g.Character.Gold += q.RewardGold
	g.Character.GainXP(q.RewardXP)
	for _, item := range q.RewardItems {
		g.Inventory[item]++
	}
	for f, rep := range q.FactionRewards {
		g.Character.ModifyReputation(f, rep)
	}

	g.Completed[id] = q
	delete(g.Active, id)
	g.logf("Quest completed: %s (+%dg, +%d xp)", q.Title, q.RewardGold, q.RewardXP)
}

// UseItem applies a consumable's effect and decrements it.
func (g *Game) UseItem(id string) bool {
	if g.Inventory[id] <= 0 {
		return false
	}
	item, ok := Items[id]
	if !ok || item.Type != Consumable {
		return false
	}
	switch item.Effect {
	case "heal_50":
		g.Character.Heal(50)
	case "mana_30":
		g.Character.RestoreMana(30)
	default:
		// temporary buffs not modeled
		return false
	}
	g.Inventory[id]--
	if g.Inventory[id] == 0 {
		delete(g.Inventory, id)
	}
	g.logf("Used %s", item.Name)
	return true
}

// EquipItem moves an owned item into its equipment slot.
func (g *Game) EquipItem(id string) bool {
	if g.Inventory[id] <= 0 {
		return false
	}
	item, ok := Items[id]
	if !ok {
		return false
	}
	c := g.Character
	switch item.Type {
	case Weapon:
		c.Weapon = id
	case Armor:
		c.Armor = id
	case Shield:
		c.Shield = id
	case Accessory:
		c.Accessory = id
	default:
		return false
	}
	c.Recalculate()
	g.logf("Equipped %s", item.Name)
	return true
}

// TotalAttack is strength plus the equipped weapon bonus.
func (g *Game) TotalAttack() int {
	atk := g.Character.Stats.Strength
	if w, ok := Items[g.Character.Weapon]; ok {
		atk += w.Attack
	}
	return atk
}

// TotalDefense is half constitution plus armor and shield bonuses.
func (g *Game) TotalDefense() int {
	def := g.Character.Stats.Constitution / 2
	if a, ok := Items[g.Character.Armor]; ok {
		def += a.Defense
	}
	if s, ok := Items[g.Character.Shield]; ok {
		def += s.Defense
	}
	return def
}

// Travel moves the character along a location connection.
func (g *Game) Travel(dst string) error {
	if !Connected(g.Character.Location, dst) {
		return fmt.Errorf("no route from %s to %s", g.Character.Location, dst)
	}
	g.Character.Location = dst
	g.logf("Traveled to %s", Locations[dst].Name)
	return nil
}

// Buy purchases a shop item if the character can afford it.
func (g *Game) Buy(id string) error {
	item, ok := Items[id]
	if !ok {
		return fmt.Errorf("unknown item %s", id)
	}
	if g.Character.Gold < item.Value {
		return fmt.Errorf("not enough gold for %s", item.Name)
	}
	g.Character.Gold -= item.Value
	g.Inventory[id]++
	g.logf("Bought %s for %dg", item.Name, item.Value)
	return nil
}

// Sell trades an owned item back at half value.
func (g *Game) Sell(id string) error {
	if g.Inventory[id] <= 0 {
		return fmt.Errorf("no %s to sell", id)
	}
	item := Items[id]
	price := item.Value / 2
	g.Character.Gold += price
	g.Inventory[id]--
	if g.Inventory[id] == 0 {
		delete(g.Inventory, id)
	}
	g.logf("Sold %s for %dg", item.Name, price)
	return nil
}
