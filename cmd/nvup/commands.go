package nvup

import (
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/nvup/internal/version"
	"github.com/arthur-debert/nvup/pkg/config"
	"github.com/arthur-debert/nvup/pkg/filesystem"
	"github.com/arthur-debert/nvup/pkg/installer"
	"github.com/arthur-debert/nvup/pkg/logging"
	"github.com/arthur-debert/nvup/pkg/paths"
	"github.com/arthur-debert/nvup/pkg/setup"
	"github.com/arthur-debert/nvup/pkg/style"
	"github.com/arthur-debert/nvup/pkg/types"
	"github.com/arthur-debert/nvup/pkg/ui/prompt"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
	)

	rootCmd := &cobra.Command{
		Use:     "nvup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newToolsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadEnvironment resolves the config file and paths shared by the
// config and tools commands. The config file's backup_dir applies only
// when the NVUP_BACKUP_DIR environment variable does not.
func loadEnvironment() (config.Config, paths.Paths, error) {
	cfg, err := config.Load(config.Path())
	if err != nil {
		return cfg, paths.Paths{}, err
	}
	p := paths.New()
	if cfg.BackupDir != "" && os.Getenv(paths.EnvBackupDir) == "" {
		p.BackupRoot = cfg.BackupDir
	}
	return cfg, p, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, pth, err := loadEnvironment()
			if err != nil {
				return err
			}

			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			printer := style.NewPrinter()

			printer.Plainf(MsgConfigHeader)
			printer.Plainf(MsgConfigTarget, pth.ConfigDir)
			printer.Rule(38)

			err = setup.Run(setup.Options{
				FS:        filesystem.NewOS(),
				Paths:     pth,
				Confirmer: prompt.NewConsole(),
				Printer:   printer,
				DryRun:    dryRun,
			})
			if err != nil {
				return err
			}

			printer.Rule(38)
			printer.Successf(MsgConfigComplete)
			printer.Plainf("%s", renderNextSteps(MsgNextStepsTitle, configNextSteps))
			printer.Plainf(MsgConfigFarewell)
			return nil
		},
	}
}

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: MsgToolsShort,
		Long:  MsgToolsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, pth, err := loadEnvironment()
			if err != nil {
				return err
			}

			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			printer := style.NewPrinter()

			printer.Plainf(MsgToolsHeader)
			printer.Plainf(MsgToolsSystem, runtime.GOOS, installer.KernelRelease())
			printer.Rule(40)

			if os.Geteuid() != 0 {
				printer.Warningf(MsgSudoWarning)
				printer.Infof(MsgSudoPromptHint)
			}

			res := installer.Run(installer.Options{
				FS:        filesystem.NewOS(),
				Paths:     pth,
				Config:    cfg,
				Confirmer: prompt.NewConsole(),
				Printer:   printer,
				Runner:    installer.NewRunner(),
				Cache:     installer.NewToolCache(),
				Download:  installer.Download,
				DryRun:    dryRun,
			})
			if res.Failed() {
				return res.Err
			}
			// A declined confirmation ends the run cleanly, without the
			// completion banner.
			if res.Status == types.StatusWarning {
				return nil
			}

			printer.Rule(40)
			printer.Successf(MsgToolsComplete)
			printer.Plainf("%s", renderNextSteps(MsgNextStepsTitle, toolsNextSteps))
			printer.Plainf(MsgToolsFarewell)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nvup version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}
