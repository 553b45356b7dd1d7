package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hdn-james/50years-ulaw-sub000/internal/config"
	"github.com/hdn-james/50years-ulaw-sub000/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var routesOutput string

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "导出路由表到 JSON 文件",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.InitConfigWithoutWatch(configDir)
		db.InitDB()

		r, err := buildEngine()
		if err != nil {
			return err
		}
		if err := exportRoutes(r, routesOutput); err != nil {
			return err
		}
		fmt.Printf("✅ 路由已成功导出到 %s\n", routesOutput)
		return nil
	},
}

func init() {
	routesCmd.Flags().StringVarP(&routesOutput, "output", "o", "routes.json", "输出文件")
}

type RouteInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

func exportRoutes(r *gin.Engine, output string) error {
	exportList := make([]RouteInfo, 0, len(r.Routes()))
	for _, route := range r.Routes() {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(output, file, 0644)
}
