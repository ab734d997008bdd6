package cmd

import (
	"os"
	"path/filepath"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"monoblackjack/x/blackjack/analytics"
	"monoblackjack/x/blackjack/types"
)

// DefaultHome is where the config file and analytics database live unless
// --home or BJSIM_HOME says otherwise.
var DefaultHome = defaultHome()

func defaultHome() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "." + BinaryName
	}
	return filepath.Join(dir, "."+BinaryName)
}

// cliContext is shared by every subcommand and filled in by the root
// PersistentPreRunE.
type cliContext struct {
	home       string
	configFile string
	logLevel   string
	overrides  map[string]string

	viper  *viper.Viper
	logger log.Logger
}

func (c *cliContext) rules() (types.Rules, error) {
	return loadRules(c.viper, c.overrides)
}

func (c *cliContext) openStore() (*analytics.Store, error) {
	dir := filepath.Join(c.home, DataDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return analytics.OpenStore(dir)
}

// NewRootCmd creates the bjsim root command. It is called once in main.
func NewRootCmd() *cobra.Command {
	c := &cliContext{}

	rootCmd := &cobra.Command{
		Use:           BinaryName,
		Short:         AppName + " blackjack table simulator",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("home") {
				if h := os.Getenv(EnvPrefix + "_HOME"); h != "" {
					c.home = h
				}
			}

			logCfg, err := ParseLogConfig()
			if err != nil {
				return err
			}
			if c.logLevel != "" {
				logCfg.Level = c.logLevel
			}
			logger, err := NewLogger(cmd.ErrOrStderr(), logCfg)
			if err != nil {
				return err
			}
			c.logger = logger

			v, err := newViper(c.home, c.configFile)
			if err != nil {
				return err
			}
			c.viper = v
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&c.home, "home", DefaultHome, "directory for config and analytics data")
	pf.StringVar(&c.configFile, "config", "", "rules config file (default <home>/"+ConfigFileName+")")
	pf.StringVar(&c.logLevel, "log-level", "", "log level (overrides "+EnvPrefix+"_LOG_LEVEL)")
	pf.StringToStringVar(&c.overrides, "set", nil, "override a rules setting, e.g. --set deck_count=2")

	rootCmd.AddCommand(
		rulesCmd(c),
		playCmd(c),
		simulateCmd(c),
		statsCmd(c),
	)
	return rootCmd
}
