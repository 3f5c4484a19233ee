package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pomoboard/internal/core/model"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes      *int  `yaml:"focus_minutes"`
	ShortBreakMinutes *int  `yaml:"short_break_minutes"`
	LongBreakMinutes  *int  `yaml:"long_break_minutes"`
	CyclesPerRound    *int  `yaml:"cycles_per_round"`
	DoNotDisturb      *bool `yaml:"do_not_disturb"`
	MuteNotifications *bool `yaml:"mute_notifications"`
}

// SettingsPath returns the preferences file inside configDir.
func SettingsPath(configDir string) string {
	return filepath.Join(configDir, settingsFileName)
}

// LoadSettings reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func LoadSettings(configDir string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(SettingsPath(configDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(configDir string, settings model.Settings) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		FocusMinutes:      &settings.FocusMinutes,
		ShortBreakMinutes: &settings.ShortBreakMinutes,
		LongBreakMinutes:  &settings.LongBreakMinutes,
		CyclesPerRound:    &settings.CyclesPerRound,
		DoNotDisturb:      &settings.DoNotDisturb,
		MuteNotifications: &settings.MuteNotifications,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(SettingsPath(configDir), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if inRange(fileData.FocusMinutes, 1) {
		settings.FocusMinutes = *fileData.FocusMinutes
	}
	if inRange(fileData.ShortBreakMinutes, 0) {
		settings.ShortBreakMinutes = *fileData.ShortBreakMinutes
	}
	if inRange(fileData.LongBreakMinutes, 0) {
		settings.LongBreakMinutes = *fileData.LongBreakMinutes
	}
	if inRange(fileData.CyclesPerRound, 0) {
		settings.CyclesPerRound = *fileData.CyclesPerRound
	}

	if fileData.DoNotDisturb != nil {
		settings.DoNotDisturb = *fileData.DoNotDisturb
	}
	if fileData.MuteNotifications != nil {
		settings.MuteNotifications = *fileData.MuteNotifications
	}
}

func inRange(value *int, floor int) bool {
	return value != nil && *value >= floor && *value <= model.MaxSettingValue
}
