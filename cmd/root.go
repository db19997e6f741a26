package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

var logger = newLogger(os.Stderr)

//newLogger logs at info level until Start raises it for --trace
func newLogger(w io.Writer) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Output = w
	return log.NewWithConfig(cfg)
}

// rootCmd represents the base command, it runs the ROM given as its only argument
var rootCmd = &cobra.Command{
	Use:           "chyp8 path/ROM",
	Short:         "Chip-8 emulator using Go",
	Long:          "A Chip-8 emulator written from scratch that mimics the functionalities of a Chip-8, an interpretted language originally written for the COSMIC-VIP/ Telmac 8 bit systems.",
	Args:          cobra.ExactArgs(1),
	RunE:          Start,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chyp8.yaml)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err.Error())
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".chyp8" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".chyp8")
	}

	viper.SetEnvPrefix("chyp8")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Info("Using config file", log.String("file", viper.ConfigFileUsed()))
	} else if cfgFile != "" {
		logger.Fatal(err.Error())
	}
}
