package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vango-inspect/internal/config"
	"github.com/vango-dev/vango-inspect/internal/errors"
	"github.com/vango-dev/vango-inspect/pkg/adapter"
	"github.com/vango-dev/vango-inspect/pkg/render"
)

type treeOptions struct {
	configPath string
	includeKey bool
	includeRef bool
	stash      string
	format     string
}

func treeCmd() *cobra.Command {
	var opts treeOptions

	cmd := &cobra.Command{
		Use:   "tree <file.html>",
		Short: "Print the adapter's view of an HTML fixture",
		Long: `Mount an HTML fixture as host nodes with stashed attribute bags and
print the tree the adapter reports for its first element.

Settings come from vinspect.yaml in the working directory (or --config)
and are overridden by flags.

Examples:
  vinspect tree fixture.html
  vinspect tree --include-key --format yaml fixture.html
  vinspect tree - < fixture.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runTree(cmd, cfg, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default ./"+config.ConfigFileName+")")
	cmd.Flags().BoolVar(&opts.includeKey, "include-key", false, "Report key props")
	cmd.Flags().BoolVar(&opts.includeRef, "include-ref", false, "Report ref props")
	cmd.Flags().StringVar(&opts.stash, "stash", config.DefaultStash, "Attribute bag location: property or symbol")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.DefaultFormat, "Output format: text or yaml")

	return cmd
}

// loadConfig reads the config file, then applies the flags the user set.
// A missing default config file is not an error.
func loadConfig(cmd *cobra.Command, opts treeOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load(".")
		if config.IsNotExist(err) {
			cfg, err = config.New(), nil
		}
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("include-key") {
		cfg.Adapter.IncludeKeyProp = opts.includeKey
	}
	if flags.Changed("include-ref") {
		cfg.Adapter.IncludeRefProp = opts.includeRef
	}
	if flags.Changed("stash") {
		cfg.Render.Stash = opts.stash
	}
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("config loaded", "path", cfg.Path(), "stash", cfg.Render.Stash, "format", cfg.Output.Format)
	return cfg, nil
}

func runTree(cmd *cobra.Command, cfg *config.Config, path string) error {
	src, err := readFixture(cmd, path)
	if err != nil {
		return errors.New("X001").WithDetail(path).Wrap(err)
	}

	rc := cfg.RenderConfig()
	rc.Logger = slog.Default()
	root, err := render.New(rc).RenderHTML(string(src), nil)
	if err != nil {
		return errors.FromError(err, "X001")
	}

	a := adapter.New(cfg.AdapterOptions()...)
	tree, err := a.Snapshot(adapter.WrapRootNode(root))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch cfg.Output.Format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()
	default:
		return tree.WriteText(w)
	}
}

func readFixture(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
