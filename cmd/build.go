package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/jsonreq/config"
	"github.com/s0up4200/jsonreq/preset"
)

var (
	buildAll  bool
	buildVars []string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [preset...]",
	Short: "Build requests from presets in the config file",
	Long: `Build one or more requests from the presets declared under "presets" in the
config file. Preset expressions see the variables passed with --var.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolVarP(&buildAll, "all", "a", false, "build every preset")
	buildCmd.Flags().StringArrayVar(&buildVars, "var", nil, "variable for preset expressions (key=value, repeatable)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if !buildAll && len(args) == 0 {
		return fmt.Errorf("no preset specified (pass preset names or --all)")
	}

	vars, err := parseVars(buildVars)
	if err != nil {
		return err
	}

	manager, err := newPresetManager(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	out := cmd.OutOrStdout()

	if buildAll {
		results, err := manager.BuildAll(ctx, vars)
		if err != nil {
			return err
		}
		logger.Info().Int("presets", len(results)).Msg("Built presets")
		// Print in name order
		for _, name := range manager.Names() {
			if err := writeJSON(out, map[string]any{name: results[name]}, indent); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range args {
		r, err := manager.Build(ctx, name, vars)
		if err != nil {
			return err
		}
		if err := writeJSON(out, r, indent); err != nil {
			return err
		}
	}
	return nil
}

// newPresetManager registers every configured preset
func newPresetManager(cfg *config.Config) (*preset.Manager, error) {
	manager := preset.NewManager(
		preset.WithRequestOptions(requestOptions()...),
		preset.WithDefaultPagination(cfg.Request.DefaultCount, cfg.Request.DefaultPage),
		preset.WithEncode(cfg.Request.Encode),
		preset.WithConcurrency(cfg.Request.Concurrency),
		preset.WithLogger(logger),
	)

	if len(cfg.Presets) == 0 {
		return nil, fmt.Errorf("no presets configured. Please add presets to the config file")
	}
	if err := manager.RegisterAll(cfg.Presets); err != nil {
		return nil, err
	}
	return manager, nil
}

// parseVars turns key=value flags into preset variables
func parseVars(pairs []string) (preset.Vars, error) {
	vars := make(preset.Vars, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --var %q (expected key=value)", pair)
		}
		vars[key] = value
	}
	return vars, nil
}
