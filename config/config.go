package config

import (
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/miguel-rebelo-hq/UnoAI/consts"
	"github.com/ratel-online/core/log"
	"github.com/spf13/cast"
)

const (
	EnvPlayerName  = "UNO_PLAYER_NAME"
	EnvSeed        = "UNO_SEED"
	EnvTargetScore = "UNO_TARGET_SCORE"
	EnvBotDelay    = "UNO_BOT_DELAY"
	EnvAutoplay    = "UNO_AUTOPLAY"
)

// Config holds the runtime settings of a terminal session. A zero Seed means
// the clock seeds the game.
type Config struct {
	PlayerName  string
	Seed        int64
	TargetScore int
	BotDelay    time.Duration
	Autoplay    bool
}

func Default() Config {
	return Config{
		PlayerName:  consts.DefaultHumanName,
		TargetScore: consts.TargetScore,
		BotDelay:    consts.DefaultBotDelay,
	}
}

// Load reads the settings from the environment, .env included.
func Load() Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup. Unparsable values are logged and
// replaced by their defaults.
func FromLookup(lookup func(string) (string, bool)) Config {
	conf := Default()
	if value, ok := lookup(EnvPlayerName); ok && value != "" {
		conf.PlayerName = value
	}
	if value, ok := lookup(EnvSeed); ok && value != "" {
		seed, err := cast.ToInt64E(value)
		if err != nil {
			log.Errorf("[config] invalid %s %q: %v\n", EnvSeed, value, err)
		} else {
			conf.Seed = seed
		}
	}
	if value, ok := lookup(EnvTargetScore); ok && value != "" {
		target, err := cast.ToIntE(value)
		if err != nil || target <= 0 {
			log.Errorf("[config] invalid %s %q\n", EnvTargetScore, value)
		} else {
			conf.TargetScore = target
		}
	}
	if value, ok := lookup(EnvBotDelay); ok && value != "" {
		delay, err := cast.ToDurationE(value)
		if err != nil || delay < 0 {
			log.Errorf("[config] invalid %s %q\n", EnvBotDelay, value)
		} else {
			conf.BotDelay = delay
		}
	}
	if value, ok := lookup(EnvAutoplay); ok && value != "" {
		autoplay, err := cast.ToBoolE(value)
		if err != nil {
			log.Errorf("[config] invalid %s %q: %v\n", EnvAutoplay, value, err)
		} else {
			conf.Autoplay = autoplay
		}
	}
	return conf
}
