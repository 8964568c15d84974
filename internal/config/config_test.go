package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	v, err := New("")
	require.NoError(t, err)

	settings, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, VoiceEngineAuto, settings.Voice.Engine)
	assert.Equal(t, language.AmericanEnglish, settings.Voice.Locale)
	assert.InDelta(t, 0.9, settings.Voice.Rate, 1e-9)
	assert.InDelta(t, 1.0, settings.Voice.Pitch, 1e-9)
	assert.Empty(t, settings.Voice.Command)
	assert.Empty(t, settings.WorkoutsPath)
	assert.False(t, settings.Sounds.Bell)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configPath := filepath.Join(home, ".coach", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o700))
	require.NoError(t, os.WriteFile(configPath, []byte(`
[voice]
engine = "exec"
command = "spd-say"
locale = "ko-KR"
rate = 1.2

[sounds]
dir = "~/sounds"
bell = true

[workouts]
path = "~/presets.toml"
`), 0o600))

	v, err := New("")
	require.NoError(t, err)

	settings, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, VoiceEngineExec, settings.Voice.Engine)
	assert.Equal(t, "spd-say", settings.Voice.Command)
	assert.Equal(t, language.MustParse("ko-KR"), settings.Voice.Locale)
	assert.InDelta(t, 1.2, settings.Voice.Rate, 1e-9)
	assert.Equal(t, filepath.Join(home, "sounds"), settings.Sounds.Dir)
	assert.True(t, settings.Sounds.Bell)
	assert.Equal(t, filepath.Join(home, "presets.toml"), settings.WorkoutsPath)
	assert.Equal(t, configPath, settings.ConfigFile)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("COACH_VOICE_ENGINE", "console")
	t.Setenv("COACH_VOICE_PITCH", "1.5")

	v, err := New(filepath.Join(home, "missing.toml"))
	require.NoError(t, err)

	settings, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, VoiceEngineConsole, settings.Voice.Engine)
	assert.InDelta(t, 1.5, settings.Voice.Pitch, 1e-9)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
		want  string
	}{
		{name: "engine", key: KeyVoiceEngine, value: "robot", want: KeyVoiceEngine},
		{name: "locale", key: KeyVoiceLocale, value: "not a locale!", want: KeyVoiceLocale},
		{name: "rate", key: KeyVoiceRate, value: 9.0, want: KeyVoiceRate},
		{name: "pitch", key: KeyVoicePitch, value: 0.0, want: KeyVoicePitch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			setDefaults(v)
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestNewRejectsMalformedConfig(t *testing.T) {
	home := t.TempDir()
	configPath := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[voice\nengine = "), 0o600))

	_, err := New(configPath)
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config")
}
