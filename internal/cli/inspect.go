package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgdetect/internal/app"
)

type inspectOptions struct {
	Cache  string
	Prefix string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect cached detection state for one package",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	// The "cache" viper key is shared with detect; both flags must keep
	// the same (empty) default or the last bind's default leaks into the
	// other command. The app layer supplies the real fallback.
	cmd.Flags().StringVar(&opts.Cache, "cache", "", "Detection cache file (default detect.cache)")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Package prefix")
	_ = viper.BindPFlag("cache", cmd.Flags().Lookup("cache"))
	_ = viper.BindPFlag("prefix", cmd.Flags().Lookup("prefix"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		CachePath: resolveString(cmd, opts.Cache, "cache", "cache"),
		Prefix:    resolveString(cmd, opts.Prefix, "prefix", "prefix"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("found: %t\n", result.Found)
	if result.Version != "" {
		fmt.Printf("version: %s\n", result.Version)
	}
	for _, entry := range result.Entries {
		marker := ""
		if entry.Advanced {
			marker = " (advanced)"
		}
		fmt.Printf("- %s:%s=%s%s\n", entry.Name, entry.Type, entry.Value, marker)
	}
	return nil
}
