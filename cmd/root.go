package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/mini-sh/minish/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("No config found, using defaults: run init to write one.")
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minish",
	Short: "Miniature interactive command interpreter",
	Long: `A miniature interactive command interpreter supporting stream
redirection, a single two-stage pipeline and background execution.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
