package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgdetect/internal/app"
	"pkgdetect/internal/types"
)

type detectOptions struct {
	Manifest string
	Cache    string
	Roots    []string
	Only     []string
	Quiet    bool
}

func newDetectCommand() *cobra.Command {
	opts := detectOptions{}
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect external packages listed in a manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDetect(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Manifest, "manifest", "detect.yaml", "Detection manifest path")
	cmd.Flags().StringVar(&opts.Cache, "cache", "", "Detection cache file")
	cmd.Flags().StringSliceVar(&opts.Roots, "root", nil, "Installation root(s) to search")
	cmd.Flags().StringSliceVar(&opts.Only, "only", nil, "Restrict detection to these package prefixes")
	cmd.Flags().BoolVar(&opts.Quiet, "quiet", false, "Suppress status lines and optional warnings")

	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("cache", cmd.Flags().Lookup("cache"))
	_ = viper.BindPFlag("roots", cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("only", cmd.Flags().Lookup("only"))
	_ = viper.BindPFlag("quiet", cmd.Flags().Lookup("quiet"))

	return cmd
}

func runDetect(ctx context.Context, cmd *cobra.Command, opts detectOptions) error {
	service := newAppService()
	result, err := service.Detect(ctx, app.DetectRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		CachePath:    resolveString(cmd, opts.Cache, "cache", "cache"),
		Roots:        resolveStrings(cmd, opts.Roots, "roots", "root"),
		Only:         resolveStrings(cmd, opts.Only, "only", "only"),
		Quiet:        resolveBool(cmd, opts.Quiet, "quiet", "quiet"),
	})
	if err != nil {
		return err
	}

	found := 0
	for _, outcome := range result.Outcomes {
		if outcome.State == types.OutcomeFound {
			found++
		}
	}
	fmt.Printf("detected: %d/%d packages (cache: %s)\n", found, len(result.Outcomes), result.CachePath)
	return nil
}
