package cli

import (
	"fmt"
	"runtime"

	"github.com/hdn-james/50years-ulaw-sub000/internal/consts"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "显示版本信息",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %s/%s)\n",
			consts.ApplicationName, consts.ApplicationVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
