package cli

import (
	"log"
	"os"

	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "anniv-media",
	Short: consts.ApplicationName,
	Long: consts.ApplicationName + "\n\n" +
		"Ingests admin uploads, re-encodes them to WebP with responsive size tiers,\n" +
		"and serves originals and on-demand resized derivatives.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadDotEnv()
	},
	// 不带子命令时直接启动服务
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "config", "配置文件所在目录")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

// loadDotEnv 读取 .env，文件不存在时忽略
func loadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ 读取 .env 失败: %v", err)
	}
}
