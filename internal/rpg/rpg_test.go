package rpg

import (
	"math/rand"
	"testing"

	"github.com/san-kum/artcade/internal/store"
)

func TestDerivedStatsFormula(t *testing.T) {
	cases := []struct {
		class      Class
		wantHealth int
		wantMana   int
	}{
		// health = 50 + CON*10 + level*20, mana = 25 + INT*5 + level*10
		{Warrior, 50 + 13*10 + 20, 25 + 10*5 + 10},
		{Mage, 50 + 10*10 + 20, 25 + 15*5 + 10},
		{Ranger, 50 + 12*10 + 20, 25 + 10*5 + 10},
	}
	for _, tc := range cases {
		c := NewCharacter("t", tc.class)
		if c.MaxHealth != tc.wantHealth {
			t.Errorf("%s: health %d, want %d", tc.class, c.MaxHealth, tc.wantHealth)
		}
		if c.MaxMana != tc.wantMana {
			t.Errorf("%s: mana %d, want %d", tc.class, c.MaxMana, tc.wantMana)
		}
	}
}

func TestLevelUpCurveAndRestore(t *testing.T) {
	c := NewCharacter("t", Warrior)
	c.Health = 1
	c.GainXP(100)
	if c.Level != 2 {
		t.Fatalf("level %d, want 2", c.Level)
	}
	if c.XPNeeded != 120 {
		t.Errorf("next threshold %d, want 120", c.XPNeeded)
	}
	if c.Health != c.MaxHealth || c.Mana != c.MaxMana {
		t.Error("level up should fully restore health and mana")
	}
	if c.SkillPoints != 2 || c.AttributePoints != 1 {
		t.Errorf("points: %d skill, %d attribute", c.SkillPoints, c.AttributePoints)
	}

	// chained level ups from one grant
	c2 := NewCharacter("t", Warrior)
	c2.GainXP(100 + 120 + 10)
	if c2.Level != 3 {
		t.Errorf("level %d after chained xp, want 3", c2.Level)
	}
	if c2.XP != 10 {
		t.Errorf("leftover xp %d, want 10", c2.XP)
	}
}

func TestReputationClamps(t *testing.T) {
	c := NewCharacter("t", Rogue)
	c.ModifyReputation(Rebels, 150)
	if c.Reputation[Rebels] != 100 {
		t.Errorf("reputation %d, want clamp at 100", c.Reputation[Rebels])
	}
	c.ModifyReputation(Rebels, -500)
	if c.Reputation[Rebels] != -100 {
		t.Errorf("reputation %d, want clamp at -100", c.Reputation[Rebels])
	}
	c.ModifyFaith(ShadowCult, -101)
	if c.Faith[ShadowCult] != -100 {
		t.Errorf("faith %d, want -100", c.Faith[ShadowCult])
	}
}

func TestAttackAndDefenseTotals(t *testing.T) {
	g := NewGame("t", Warrior)
	// warrior: STR 15, CON 13, iron sword +10, leather +5
	if got := g.TotalAttack(); got != 25 {
		t.Errorf("attack %d, want 25", got)
	}
	if got := g.TotalDefense(); got != 13/2+5 {
		t.Errorf("defense %d, want %d", got, 13/2+5)
	}
	g.Inventory["iron_shield"] = 1
	g.EquipItem("iron_shield")
	if got := g.TotalDefense(); got != 13/2+5+8 {
		t.Errorf("defense with shield %d, want %d", got, 13/2+5+8)
	}
}

func TestQuestCompletionPaysRewards(t *testing.T) {
	g := NewGame("t", Mage)
	if !g.StartQuest("royal_mission") {
		t.Fatal("could not start quest")
	}
	if g.StartQuest("royal_mission") {
		t.Error("starting an active quest twice should fail")
	}
	goldBefore := g.Character.Gold

	g.CompleteObjective("royal_mission", 0)
	if _, done := g.Completed["royal_mission"]; done {
		t.Fatal("quest completed with objectives remaining")
	}
	g.CompleteObjective("royal_mission", 1)

	if _, done := g.Completed["royal_mission"]; !done {
		t.Fatal("quest should auto-complete when all objectives are done")
	}
	if g.Character.Gold != goldBefore+500 {
		t.Errorf("gold %d, want %d", g.Character.Gold, goldBefore+500)
	}
	if g.Inventory["power_ring"] != 1 {
		t.Error("reward item not granted")
	}
	if g.Character.Reputation[RoyalCourt] != 20 {
		t.Errorf("royal court rep %d, want 20", g.Character.Reputation[RoyalCourt])
	}
	if g.StartQuest("royal_mission") {
		t.Error("completed quest should not restart")
	}
}

func TestConsumablesRespectCaps(t *testing.T) {
	g := NewGame("t", Cleric)
	g.Character.Health = g.Character.MaxHealth - 10
	if !g.UseItem("health_potion") {
		t.Fatal("could not drink potion")
	}
	if g.Character.Health != g.Character.MaxHealth {
		t.Errorf("health %d, want capped at %d", g.Character.Health, g.Character.MaxHealth)
	}
	if g.Inventory["health_potion"] != 2 {
		t.Errorf("potions left %d, want 2", g.Inventory["health_potion"])
	}
}

func TestCombatDamageFloorAndVictory(t *testing.T) {
	g := NewGame("t", Warrior)
	rng := rand.New(rand.NewSource(42))
	c := NewCombat("cave_bat", rng)

	// a wall of defense still takes at least 1 per hit
	d := c.damage(1, 1000)
	if d < 1 {
		t.Errorf("damage %d below floor", d)
	}

	for c.Outcome == Ongoing {
		c.PlayerAttack(g)
		if c.Turn > 100 {
			t.Fatal("combat against a cave bat should not last 100 turns")
		}
	}
	if c.Outcome != Victory {
		t.Fatalf("outcome %v, want victory", c.Outcome)
	}
	if g.Character.XP == 0 && g.Character.Level == 1 {
		t.Error("victory paid no experience")
	}
}

func TestTravelRequiresConnection(t *testing.T) {
	g := NewGame("t", Ranger)
	if err := g.Travel("dwarven_mines"); err == nil {
		t.Error("travel across the map in one hop should fail")
	}
	if err := g.Travel("dark_forest"); err != nil {
		t.Errorf("adjacent travel failed: %v", err)
	}
	if g.Character.Location != "dark_forest" {
		t.Errorf("location %s", g.Character.Location)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	st := store.New(t.TempDir())
	g := NewGame("Rosa", Paladin)
	g.StartQuest("lost_tome")
	g.CompleteObjective("lost_tome", 0)
	g.Character.GainXP(150)
	g.Day = 3

	if err := g.Save(st, 1); err != nil {
		t.Fatalf("save: %v", err)
	}
	g2, err := Load(st, 1)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if g2.Character.Name != "Rosa" || g2.Character.Class != Paladin {
		t.Errorf("character mismatch: %+v", g2.Character)
	}
	if g2.Character.Level != g.Character.Level || g2.Character.XP != g.Character.XP {
		t.Error("progression not preserved")
	}
	if g2.Day != 3 {
		t.Errorf("day %d, want 3", g2.Day)
	}
	q := g2.Active["lost_tome"]
	if q == nil || !q.Done[0] || q.Done[1] {
		t.Errorf("quest state not preserved: %+v", q)
	}
	if g2.Inventory["health_potion"] != 3 {
		t.Errorf("inventory not preserved: %+v", g2.Inventory)
	}
}

func TestLoadMissingSlotFails(t *testing.T) {
	st := store.New(t.TempDir())
	if _, err := Load(st, 2); err == nil {
		t.Fatal("expected error loading empty slot")
	}
}

func TestWorldGraphIsBidirectional(t *testing.T) {
	for id, loc := range Locations {
		for _, c := range loc.Connections {
			if _, ok := Locations[c]; !ok {
				t.Errorf("%s connects to unknown location %s", id, c)
				continue
			}
			if !Connected(c, id) {
				t.Errorf("connection %s -> %s is one-way", id, c)
			}
		}
	}
}

func TestShopPurchaseNeedsGold(t *testing.T) {
	g := NewGame("t", Rogue)
	g.Character.Gold = 10
	if err := g.Buy("steel_sword"); err == nil {
		t.Error("purchase should fail without gold")
	}
	g.Character.Gold = 200
	if err := g.Buy("steel_sword"); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if g.Character.Gold != 50 {
		t.Errorf("gold %d, want 50", g.Character.Gold)
	}
	if g.Inventory["steel_sword"] != 1 {
		t.Error("item not added")
	}
}
