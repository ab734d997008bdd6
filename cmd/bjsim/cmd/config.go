package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"monoblackjack/x/blackjack/types"
)

const rulesSection = "rules"

// newViper layers the rules settings: built-in defaults, then the config
// file, then BJSIM_RULES_* environment variables.
func newViper(home, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for k, val := range types.DefaultRules().Settings() {
		v.SetDefault(rulesSection+"."+k, val)
	}

	if configFile == "" {
		candidate := filepath.Join(home, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}
	return v, nil
}

// rulesSettings resolves every known key through viper's precedence, keeps
// any extra keys from the [rules] section so RulesFromSettings can reject
// them, and applies --set overrides last.
func rulesSettings(v *viper.Viper, overrides map[string]string) map[string]string {
	m := make(map[string]string)
	for _, k := range types.SettingsKeys() {
		m[k] = v.GetString(rulesSection + "." + k)
	}
	for k := range v.GetStringMap(rulesSection) {
		if _, ok := m[k]; !ok {
			m[k] = v.GetString(rulesSection + "." + k)
		}
	}
	for k, val := range overrides {
		m[strings.ToLower(strings.TrimSpace(k))] = val
	}
	return m
}

func loadRules(v *viper.Viper, overrides map[string]string) (types.Rules, error) {
	return types.RulesFromSettings(rulesSettings(v, overrides))
}
