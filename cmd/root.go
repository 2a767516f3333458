package cmd

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/lndgalante/windows-subtis-cli/pkg/config"
	"github.com/lndgalante/windows-subtis-cli/pkg/installer"
)

var (
	// Global flags
	configFile string
	verbose    bool
	quiet      bool

	// Install flags
	flagURL      string
	flagOwner    string
	flagRepo     string
	flagDir      string
	flagChecksum string
	flagSkipPath bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "subtis-install [VERSION]",
	Short: "Install the subtis CLI from GitHub releases",
	Long: `subtis-install downloads a subtis release archive from GitHub, optionally
verifies its SHA-256 checksum, extracts subtis.exe, copies it into a per-user
install directory, and adds that directory to the user PATH.`,
	Example: `  # Install latest version
  subtis-install

  # Install specific version
  subtis-install 2.1.0

  # Install to custom directory without touching PATH
  subtis-install --dir C:\Tools\Subtis --skip-path

  # Install a pre-downloaded asset URL with checksum verification
  subtis-install --url https://example.com/subtis-windows-x64.zip --checksum e3b0c442...`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetHandler(cli.Default)
		if verbose {
			log.SetLevel(log.DebugLevel)
			log.Debugf("Verbose logging enabled")
		} else if quiet {
			log.SetLevel(log.ErrorLevel)
		} else {
			log.SetLevel(log.InfoLevel)
		}
	},
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	// Flags override config file values.
	if len(args) > 0 {
		cfg.Version = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.AssetURL = flagURL
	}
	if flags.Changed("owner") {
		cfg.Owner = flagOwner
	}
	if flags.Changed("repo") {
		cfg.Repo = flagRepo
	}
	if flags.Changed("dir") {
		cfg.InstallDir = flagDir
	}
	if flags.Changed("checksum") {
		cfg.Checksum = flagChecksum
	}
	if flags.Changed("skip-path") {
		cfg.SkipPathUpdate = flagSkipPath
	}
	cfg.ApplyDefaults()

	result, err := installer.New(cfg).Run(cmd.Context())
	if err != nil {
		return err
	}

	log.Infof("Installed to: %s", result.InstalledPath)
	switch {
	case result.PathSkipped:
		log.Info("PATH update skipped")
	case result.PathUpdated:
		log.Info("PATH updated: restart your terminal to pick it up")
	default:
		log.Info("PATH already up to date")
	}
	if result.Version != "" {
		log.Infof("Installed version: %s", result.Version)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		log.WithError(err).Fatal("installation failed")
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to installer config file (default: "+config.DefaultConfigPath+")")
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Increase log verbosity")
	RootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress progress output")

	RootCmd.Flags().StringVarP(&flagURL, "url", "u", "", "Explicit asset URL, skips release resolution")
	RootCmd.Flags().StringVar(&flagOwner, "owner", config.DefaultOwner, "GitHub repository owner")
	RootCmd.Flags().StringVar(&flagRepo, "repo", config.DefaultRepo, "GitHub repository name")
	RootCmd.Flags().StringVarP(&flagDir, "dir", "d", "", "Installation directory (default: %LOCALAPPDATA%\\Programs\\Subtis)")
	RootCmd.Flags().StringVar(&flagChecksum, "checksum", "", "Expected SHA-256 hex digest of the archive")
	RootCmd.Flags().BoolVar(&flagSkipPath, "skip-path", false, "Do not add the install directory to the user PATH")
}
