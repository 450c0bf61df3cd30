// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Library объединяет все загруженные определения. Симуляция получает её
// явно, а не через состояние пакета.
type Library struct {
	Enemies   map[string]EnemyDefinition
	Zones     map[string]ZoneDefinition
	Abilities map[string]AbilityDefinition
}

// LoadLibrary читает enemies.json, zones.json и abilities.json из dir.
// Отсутствующие файлы оставляют встроенные наборы на месте.
func LoadLibrary(dir string) (*Library, error) {
	lib := DefaultLibrary()

	if err := loadInto(filepath.Join(dir, "enemies.json"), func(data []byte) error {
		var list []EnemyDefinition
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		lib.Enemies = make(map[string]EnemyDefinition, len(list))
		for _, def := range list {
			lib.Enemies[def.ID] = def
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load enemy definitions: %w", err)
	}

	if err := loadInto(filepath.Join(dir, "zones.json"), func(data []byte) error {
		var list []ZoneDefinition
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		lib.Zones = make(map[string]ZoneDefinition, len(list))
		for _, def := range list {
			lib.Zones[def.ID] = def
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load zone definitions: %w", err)
	}

	if err := loadInto(filepath.Join(dir, "abilities.json"), func(data []byte) error {
		var list []AbilityDefinition
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		lib.Abilities = make(map[string]AbilityDefinition, len(list))
		for _, def := range list {
			lib.Abilities[def.ID] = def
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to load ability definitions: %w", err)
	}

	return lib, nil
}

func loadInto(path string, parse func([]byte) error) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := parse(data); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

// DefaultLibrary возвращает встроенный набор определений. Игра запускается
// с ним, если рядом нет JSON-файлов; тесты тоже опираются на него.
func DefaultLibrary() *Library {
	return &Library{
		Enemies: map[string]EnemyDefinition{
			"ENEMY_THUG": {
				ID: "ENEMY_THUG", Name: "Thug", Tier: 0,
				Health: 30, Damage: 5, Speed: 50,
				Reward: Reward{Gold: 8, XP: 12},
			},
			"ENEMY_RONIN": {
				ID: "ENEMY_RONIN", Name: "Ronin", Tier: 1,
				Health: 55, Damage: 9, Speed: 65,
				Reward: Reward{Gold: 15, XP: 24},
			},
			"ENEMY_ONI": {
				ID: "ENEMY_ONI", Name: "Oni", Tier: 2,
				Health: 140, Damage: 16, Speed: 40,
				Reward: Reward{Gold: 40, XP: 70},
			},
		},
		Zones: map[string]ZoneDefinition{
			"ZONE_FOREST": {
				ID: "ZONE_FOREST", Name: "Bamboo Forest",
				Levels: 10, BaseRequiredKills: 10, KillsPerLevel: 5,
				EnemyMultiplierBase: 1.0, EnemyMultiplierStep: 0.25,
				XPMultiplier: 1.0,
				SpawnTable: []SpawnEntry{
					{EnemyID: "ENEMY_THUG", Weight: 70},
					{EnemyID: "ENEMY_RONIN", Weight: 25},
					{EnemyID: "ENEMY_ONI", Weight: 5},
				},
			},
			"ZONE_VILLAGE": {
				ID: "ZONE_VILLAGE", Name: "Burning Village",
				Levels: 10, BaseRequiredKills: 20, KillsPerLevel: 10,
				EnemyMultiplierBase: 2.0, EnemyMultiplierStep: 0.5,
				XPMultiplier: 1.6,
				SpawnTable: []SpawnEntry{
					{EnemyID: "ENEMY_THUG", Weight: 30},
					{EnemyID: "ENEMY_RONIN", Weight: 55},
					{EnemyID: "ENEMY_ONI", Weight: 15},
				},
			},
		},
		Abilities: map[string]AbilityDefinition{
			"ABILITY_SHURIKEN": {
				ID: "ABILITY_SHURIKEN", Name: "Shuriken", Icon: "shuriken",
				Damage: 12, Cooldown: 0.8, EnergyCost: 0,
				FlightDuration: 0.35, Offensive: true, AutoCast: true,
			},
			"ABILITY_FIREBALL": {
				ID: "ABILITY_FIREBALL", Name: "Fireball", Icon: "fireball",
				Damage: 40, Cooldown: 5.0, EnergyCost: 25,
				FlightDuration: 0.5, Offensive: true,
			},
			"ABILITY_HEAL": {
				ID: "ABILITY_HEAL", Name: "Healing Scroll", Icon: "scroll",
				Cooldown: 12.0, EnergyCost: 40, Heal: 35,
			},
		},
	}
}
