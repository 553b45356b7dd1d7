package cli

import (
	"github.com/hdn-james/50years-ulaw-sub000/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "以 YAML 输出生效的配置（敏感字段不输出）",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.InitConfigWithoutWatch(configDir)
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(config.Get())
	},
}
