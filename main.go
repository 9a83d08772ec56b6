package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/graveyard/pkg/app"
	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/embedded"
)

func main() {
	configPath := flag.String("config", "config/graveyard.toml", "配置文件路径")
	verbose := flag.Bool("verbose", false, "输出 debug 日志")
	flag.Parse()

	embedded.Init(dataFS)

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}

	log, err := app.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "日志初始化失败: %v\n", err)
		os.Exit(1)
	}

	gameApp, err := app.NewApp(cfg, log)
	if err != nil {
		log.Fatal("游戏初始化失败", zap.Error(err))
	}
	gameApp.ApplyWindow()

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Error("游戏异常退出", zap.Error(err))
	}
	gameApp.Shutdown()
}
