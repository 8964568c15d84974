// Package config loads coach settings from ~/.coach/config.toml and COACH_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	KeyVoiceEngine  = "voice.engine"
	KeyVoiceCommand = "voice.command"
	KeyVoiceLocale  = "voice.locale"
	KeyVoiceRate    = "voice.rate"
	KeyVoicePitch   = "voice.pitch"
	KeySoundsDir    = "sounds.dir"
	KeySoundsPlayer = "sounds.player"
	KeySoundsBell   = "sounds.bell"
	KeyWorkoutsPath = "workouts.path"

	EnvPrefix  = "COACH"
	configDir  = ".coach"
	configFile = "config.toml"

	minRate  = 0.1
	maxRate  = 4.0
	minPitch = 0.1
	maxPitch = 2.0
)

var ErrInvalidConfig = errors.New("invalid configuration")

type VoiceEngine string

const (
	// VoiceEngineAuto uses a speech command when one is installed and falls
	// back to console narration.
	VoiceEngineAuto    VoiceEngine = "auto"
	VoiceEngineConsole VoiceEngine = "console"
	VoiceEngineExec    VoiceEngine = "exec"
)

func (e VoiceEngine) Valid() bool {
	switch e {
	case VoiceEngineAuto, VoiceEngineConsole, VoiceEngineExec:
		return true
	default:
		return false
	}
}

type Voice struct {
	Engine  VoiceEngine
	Command string
	Locale  language.Tag
	Rate    float64
	Pitch   float64
}

type Sounds struct {
	Dir    string
	Player string
	Bell   bool
}

type Settings struct {
	Voice        Voice
	Sounds       Sounds
	WorkoutsPath string
	ConfigFile   string
}

// DefaultPath is ~/.coach/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir, configFile), nil
}

// New returns a viper instance with defaults, env overrides and the config
// file applied. A missing config file is not an error.
func New(configPath string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = defaultPath
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyVoiceEngine, string(VoiceEngineAuto))
	v.SetDefault(KeyVoiceCommand, "")
	v.SetDefault(KeyVoiceLocale, "en-US")
	v.SetDefault(KeyVoiceRate, 0.9)
	v.SetDefault(KeyVoicePitch, 1.0)
	v.SetDefault(KeySoundsDir, "")
	v.SetDefault(KeySoundsPlayer, "")
	v.SetDefault(KeySoundsBell, false)
	v.SetDefault(KeyWorkoutsPath, "")
}

func Load(v *viper.Viper) (Settings, error) {
	if v == nil {
		v = viper.New()
		setDefaults(v)
	}

	engine := VoiceEngine(strings.ToLower(strings.TrimSpace(v.GetString(KeyVoiceEngine))))
	if !engine.Valid() {
		return Settings{}, fmt.Errorf("%w: %s must be auto, console or exec, got %q", ErrInvalidConfig, KeyVoiceEngine, engine)
	}

	locale, err := language.Parse(v.GetString(KeyVoiceLocale))
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyVoiceLocale, err)
	}

	rate := v.GetFloat64(KeyVoiceRate)
	if rate < minRate || rate > maxRate {
		return Settings{}, fmt.Errorf("%w: %s must be between %.1f and %.1f, got %v", ErrInvalidConfig, KeyVoiceRate, minRate, maxRate, rate)
	}

	pitch := v.GetFloat64(KeyVoicePitch)
	if pitch < minPitch || pitch > maxPitch {
		return Settings{}, fmt.Errorf("%w: %s must be between %.1f and %.1f, got %v", ErrInvalidConfig, KeyVoicePitch, minPitch, maxPitch, pitch)
	}

	soundsDir, err := expandHome(v.GetString(KeySoundsDir))
	if err != nil {
		return Settings{}, err
	}
	workoutsPath, err := expandHome(v.GetString(KeyWorkoutsPath))
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Voice: Voice{
			Engine:  engine,
			Command: strings.TrimSpace(v.GetString(KeyVoiceCommand)),
			Locale:  locale,
			Rate:    rate,
			Pitch:   pitch,
		},
		Sounds: Sounds{
			Dir:    soundsDir,
			Player: strings.TrimSpace(v.GetString(KeySoundsPlayer)),
			Bell:   v.GetBool(KeySoundsBell),
		},
		WorkoutsPath: workoutsPath,
		ConfigFile:   v.ConfigFileUsed(),
	}, nil
}

func expandHome(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
