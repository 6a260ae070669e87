package sim

// PowerUpType defines the collectible power-ups
type PowerUpType int

const (
	PowerUpCoffee PowerUpType = iota
	PowerUpMegaBook
	PowerUpSilenceAura
	PowerUpTimeFreeze
	PowerUpShield
	PowerUpMultiShot
	PowerUpMagnet
	PowerUpTypeCount
)

// PowerUpConfig holds configuration for each power-up type
type PowerUpConfig struct {
	Type   PowerUpType
	Name   string
	Effect Effect
	Color  RGB
}

// GetPowerUpConfig returns configuration for a power-up type
func GetPowerUpConfig(t PowerUpType) PowerUpConfig {
	switch t {
	case PowerUpCoffee:
		return PowerUpConfig{Type: t, Name: "coffee", Effect: EffectSpeedBoost, Color: RGB{139, 69, 19}}
	case PowerUpMegaBook:
		return PowerUpConfig{Type: t, Name: "mega_book", Effect: EffectMegaBook, Color: RGB{255, 165, 0}}
	case PowerUpSilenceAura:
		return PowerUpConfig{Type: t, Name: "silence_aura", Effect: EffectSilenceAura, Color: RGB{180, 220, 255}}
	case PowerUpTimeFreeze:
		return PowerUpConfig{Type: t, Name: "time_freeze", Effect: EffectTimeFreeze, Color: RGB{120, 200, 255}}
	case PowerUpShield:
		return PowerUpConfig{Type: t, Name: "shield", Effect: EffectShield, Color: RGB{255, 215, 0}}
	case PowerUpMultiShot:
		return PowerUpConfig{Type: t, Name: "multi_shot", Effect: EffectMultiShot, Color: RGB{255, 80, 80}}
	case PowerUpMagnet:
		return PowerUpConfig{Type: t, Name: "magnet", Effect: EffectMagnet, Color: RGB{200, 0, 200}}
	default:
		return GetPowerUpConfig(PowerUpCoffee)
	}
}

// String returns the power-up name
func (t PowerUpType) String() string {
	return GetPowerUpConfig(t).Name
}

// ParsePowerUpType maps a power-up name to its type. The alternate
// "freeze_time" spelling resolves to the single time-freeze power-up.
func ParsePowerUpType(name string) (PowerUpType, bool) {
	if name == "freeze_time" {
		return PowerUpTimeFreeze, true
	}
	for t := PowerUpType(0); t < PowerUpTypeCount; t++ {
		if GetPowerUpConfig(t).Name == name {
			return t, true
		}
	}
	return 0, false
}

// AllPowerUps returns every power-up type
func AllPowerUps() []PowerUpType {
	all := make([]PowerUpType, 0, PowerUpTypeCount)
	for t := PowerUpType(0); t < PowerUpTypeCount; t++ {
		all = append(all, t)
	}
	return all
}
