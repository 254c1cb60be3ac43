package main

import (
	"github.com/spf13/cobra"

	"github.com/altuslabsxyz/generate-version/internal/config"
	"github.com/altuslabsxyz/generate-version/internal/generator"
	"github.com/altuslabsxyz/generate-version/internal/version"
)

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate_version <version.json> <output_header>",
		Short: "Generate the SPRESENSE version header",
		Long: `generate_version writes a C header defining SPRESENSE_VERSION and BOOTLOADER_VERSION.

SPRESENSE_VERSION is the commit date (YYYY-MM-DD) of the tip of --ref, read
with git. If git fails for any reason a warning is printed and "unknown" is
used instead.

BOOTLOADER_VERSION is the LoaderVersion field of the JSON manifest, or
"unknown" when the field is absent.

Examples:
  # Generate the header from the current repository
  generate_version bootloader/version.json include/version.h

  # Date the firmware from another branch and repository
  generate_version --ref develop --repo ../spresense manifest.json version.h`,
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &UsageError{Args: len(args)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, args[0], args[1])
		},
	}

	cmd.SetVersionTemplate("{{.Version}}")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	config.RegisterFlags(cmd.Flags())

	return cmd
}

// generate resolves configuration and runs the generator.
func (a *app) generate(cmd *cobra.Command, manifestPath, outputPath string) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}

	resolver := a.newResolver(cfg.GitOptions())
	gen := generator.New(resolver, a.logger,
		generator.WithRef(cfg.Ref.Value),
		generator.WithFs(a.fs),
	)

	_, err = gen.Run(cmd.Context(), manifestPath, outputPath)
	return err
}

// loadConfig applies the priority chain default < config file < flag and
// configures the logger from the result.
func (a *app) loadConfig(cmd *cobra.Command) (*config.EffectiveConfig, error) {
	flags := cmd.Flags()
	cfg := config.NewEffectiveConfig()

	configPath, err := flags.GetString(config.FlagConfig)
	if err != nil {
		return nil, err
	}

	fileCfg, err := config.NewConfigLoader(configPath, a.logger).LoadFileConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyFile(fileCfg, configPath); err != nil {
		return nil, err
	}
	if err := cfg.ApplyFlags(flags); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a.logger.SetNoColor(cfg.NoColor.Value)
	a.logger.SetVerbose(cfg.Verbose.Value)
	a.logger.SetStderr(cfg.Stderr.Value)

	if cfg.Verbose.Value {
		if cfg.ConfigFilePath != "" {
			a.logger.Debug("Using config file: %s", cfg.ConfigFilePath)
		}
		cfg.ToTable(a.logger.ErrWriter())
	}

	return cfg, nil
}
