package rpg

import (
	"fmt"
	"math/rand"
)

type Enemy struct {
	Name    string
	Health  int
	Attack  int
	Defense int
	XP      int
	Gold    int
}

var Enemies = map[string]Enemy{
	"shadow_wolf":      {Name: "Shadow Wolf", Health: 60, Attack: 14, Defense: 4, XP: 40, Gold: 15},
	"dark_mage":        {Name: "Dark Mage", Health: 80, Attack: 18, Defense: 6, XP: 70, Gold: 40},
	"mountain_troll":   {Name: "Mountain Troll", Health: 140, Attack: 22, Defense: 10, XP: 110, Gold: 60},
	"bone_knight":      {Name: "Bone Knight", Health: 110, Attack: 20, Defense: 12, XP: 95, Gold: 50},
	"cave_bat":         {Name: "Cave Bat", Health: 30, Attack: 8, Defense: 2, XP: 18, Gold: 5},
	"pirate_cutthroat": {Name: "Pirate Cutthroat", Health: 90, Attack: 16, Defense: 7, XP: 75, Gold: 55},
}

// CombatOutcome is the terminal state of an encounter.
type CombatOutcome int

const (
	Ongoing CombatOutcome = iota
	Victory
	Defeat
	Fled
)

// Combat runs one turn-based encounter against a single enemy.
type Combat struct {
	Enemy       Enemy
	EnemyHealth int
	Turn        int
	Outcome     CombatOutcome
	Log         []string
	rng         *rand.Rand
}

func NewCombat(enemyID string, rng *rand.Rand) *Combat {
	e := Enemies[enemyID]
	return &Combat{
		Enemy:       e,
		EnemyHealth: e.Health,
		rng:         rng,
	}
}

func (c *Combat) logf(s string) {
	c.Log = append(c.Log, s)
	if len(c.Log) > 8 {
		c.Log = c.Log[len(c.Log)-8:]
	}
}

// damage is max(1, attack - defense) with a ±20% roll.
func (c *Combat) damage(attack, defense int) int {
	base := attack - defense
	if base < 1 {
		base = 1
	}
	v := float64(base) * (0.8 + c.rng.Float64()*0.4)
	d := int(v)
	if d < 1 {
		d = 1
	}
	return d
}

// PlayerAttack resolves the player's strike and, if the enemy
// survives, the counterattack.
func (c *Combat) PlayerAttack(g *Game) {
	if c.Outcome != Ongoing {
		return
	}
	c.Turn++

	dmg := c.damage(g.TotalAttack(), c.Enemy.Defense)
	c.EnemyHealth -= dmg
	c.logf(formatHit(g.Character.Name, c.Enemy.Name, dmg))
	if c.EnemyHealth <= 0 {
		c.Outcome = Victory
		g.Character.Gold += c.Enemy.Gold
		g.Character.GainXP(c.Enemy.XP)
		g.logf("Defeated %s (+%dg, +%d xp)", c.Enemy.Name, c.Enemy.Gold, c.Enemy.XP)
		return
	}

	c.enemyTurn(g)
}

// Defend halves the incoming hit for one enemy turn.
func (c *Combat) Defend(g *Game) {
	if c.Outcome != Ongoing {
		return
	}
	c.Turn++
	dmg := c.damage(c.Enemy.Attack, g.TotalDefense()*2)
	c.applyEnemyHit(g, dmg)
}

// Flee attempts escape; the chance scales with dexterity. A failed
// attempt forfeits the turn.
func (c *Combat) Flee(g *Game) bool {
	if c.Outcome != Ongoing {
		return false
	}
	c.Turn++
	chance := 0.3 + float64(g.Character.Stats.Dexterity)*0.025
	if chance > 0.9 {
		chance = 0.9
	}
	if c.rng.Float64() < chance {
		c.Outcome = Fled
		c.logf(g.Character.Name + " escaped!")
		return true
	}
	c.logf("Escape failed!")
	c.enemyTurn(g)
	return false
}

func (c *Combat) enemyTurn(g *Game) {
	dmg := c.damage(c.Enemy.Attack, g.TotalDefense())
	c.applyEnemyHit(g, dmg)
}

func (c *Combat) applyEnemyHit(g *Game, dmg int) {
	g.Character.Health -= dmg
	c.logf(formatHit(c.Enemy.Name, g.Character.Name, dmg))
	if g.Character.Health <= 0 {
		g.Character.Health = 0
		c.Outcome = Defeat
	}
}

func formatHit(attacker, target string, dmg int) string {
	return fmt.Sprintf("%s hits %s for %d", attacker, target, dmg)
}
