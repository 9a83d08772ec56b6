package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/decker502/graveyard/pkg/types"
)

func TestDataActorsMatchesFixture(t *testing.T) {
	table, err := LoadActorTable(filepath.Join("..", "..", "data", "actors.yaml"))
	if err != nil {
		t.Fatalf("LoadActorTable failed: %v", err)
	}

	want := FixtureActorTable()
	if !reflect.DeepEqual(want, table) {
		t.Errorf("data/actors.yaml differs from FixtureActorTable()\nwant %+v\ngot  %+v", want, table)
	}
}

func TestFixtureActorTableIsValid(t *testing.T) {
	if err := validateActorTable(FixtureActorTable()); err != nil {
		t.Fatalf("fixture should be valid: %v", err)
	}
}

func TestLoadActorTableFromFile(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadActorTable(filepath.Join(tempDir, "missing.yaml"))
		if err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("YAML 格式错误", func(t *testing.T) {
		path := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(path, []byte("players: [unclosed"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		_, err := LoadActorTable(path)
		if err == nil {
			t.Error("Expected parse error")
		}
	})
}

func TestValidateActorTableMissingKind(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ActorTable)
		want   string
	}{
		{"缺少玩家", func(a *ActorTable) { delete(a.Players, types.PlayerDefault) }, "player"},
		{"缺少骷髅", func(a *ActorTable) { delete(a.Hostiles, types.HostileSkeleton) }, "skeleton"},
		{"缺少导弹", func(a *ActorTable) { delete(a.Projectiles, types.ProjectileMissile) }, "missile"},
		{"缺少道具", func(a *ActorTable) { delete(a.Pickups, types.PickupFireRate) }, "fireRate"},
		{"缺少粒子", func(a *ActorTable) { delete(a.Particles, types.ParticleSmoke) }, "smoke"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := FixtureActorTable()
			tt.mutate(table)
			err := validateActorTable(table)
			if !errors.Is(err, ErrMissingKind) {
				t.Fatalf("Expected ErrMissingKind, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error to mention %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateActorTableValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ActorTable)
	}{
		{"玩家血量为0", func(a *ActorTable) {
			p := a.Players[types.PlayerDefault]
			p.HitPoints = 0
			a.Players[types.PlayerDefault] = p
		}},
		{"玩家子弹类型未知", func(a *ActorTable) {
			p := a.Players[types.PlayerDefault]
			p.Projectile = "laser"
			a.Players[types.PlayerDefault] = p
		}},
		{"僵尸攻击间隔为0", func(a *ActorTable) {
			z := a.Hostiles[types.HostileZombie]
			z.AttackInterval = 0
			a.Hostiles[types.HostileZombie] = z
		}},
		{"僵尸伤害为负", func(a *ActorTable) {
			z := a.Hostiles[types.HostileZombie]
			z.Damage = -1
			a.Hostiles[types.HostileZombie] = z
		}},
		{"子弹速度为0", func(a *ActorTable) {
			p := a.Projectiles[types.ProjectileAlliedBullet]
			p.Speed = 0
			a.Projectiles[types.ProjectileAlliedBullet] = p
		}},
		{"治疗量为0", func(a *ActorTable) {
			p := a.Pickups[types.PickupHealthRefill]
			p.Amount = 0
			a.Pickups[types.PickupHealthRefill] = p
		}},
		{"未知道具效果", func(a *ActorTable) {
			p := a.Pickups[types.PickupFireSpread]
			p.Effect = "teleport"
			a.Pickups[types.PickupFireSpread] = p
		}},
		{"粒子寿命为0", func(a *ActorTable) {
			p := a.Particles[types.ParticleBlood]
			p.Lifetime = 0
			a.Particles[types.ParticleBlood] = p
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := FixtureActorTable()
			tt.mutate(table)
			if err := validateActorTable(table); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestActorTableAccessors(t *testing.T) {
	table := FixtureActorTable()

	if got := table.Hostile(types.HostileZombie).Damage; got != 1 {
		t.Errorf("zombie damage: expected 1, got %d", got)
	}
	if got := table.Projectile(types.ProjectileAlliedBullet).Damage; got != 50 {
		t.Errorf("allied bullet damage: expected 50, got %d", got)
	}
	if got := table.HostileWeights(); !reflect.DeepEqual(got, []int{9, 1}) {
		t.Errorf("hostile weights: expected [9 1], got %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for kind missing from table")
		}
	}()
	table.Pickup("unknown")
}

func TestActorTableTextureIDs(t *testing.T) {
	ids := FixtureActorTable().TextureIDs()
	if len(ids) != 19 {
		t.Errorf("expected 19 texture ids, got %d: %v", len(ids), ids)
	}
	if !sort.StringsAreSorted(ids) {
		t.Errorf("expected sorted ids, got %v", ids)
	}
	found := false
	for _, id := range ids {
		if id == "IMAGE_ENTITIES" {
			found = true
		}
	}
	if !found {
		t.Error("IMAGE_ENTITIES should be referenced by projectiles and pickups")
	}
}
