package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/daily_paper/internal/config"
	"github.com/iWorld-y/daily_paper/internal/logger"
	"github.com/iWorld-y/daily_paper/internal/site"
)

var (
	mode       string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "daily_site",
	Short: "Generate the static daily report site",
	Long: `Read dated JSON reports (YYYY-MM-DD.json) from the output directory and
render index.html, one page per date and archive.html into the site directory.

Every run rebuilds the whole site.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&mode, "mode", "", `site brand: "paper" (default) or "news"`)
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// 1. 加载配置，默认路径下的配置文件可以不存在
	cfg, err := config.LoadConfig(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		log.Printf("无法加载配置文件: %v", err)
		return err
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = mode
	}

	// 2. 初始化日志
	logr, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Printf("无法初始化日志: %v", err)
		return err
	}
	logr.Infof("开始生成站点 (mode=%s)", config.ParseMode(cfg.Mode))

	// 3. 生成站点
	res, err := site.NewGenerator(cfg, logr).Run()
	if err != nil {
		logr.Errorf("生成站点失败: %v", err)
		return err
	}

	fmt.Printf("✅ Generated site at %s\n", res.SiteDir)
	return nil
}
