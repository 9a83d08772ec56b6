// verify_world 无窗口运行战场模拟，用固定种子和脚本输入检查结算结果
//
// 用法:
//
//	go run ./cmd/verify_world -frames 3600 -seed 7
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/decker502/graveyard/pkg/app"
	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/types"
	"github.com/decker502/graveyard/pkg/world"
)

var (
	frames    = flag.Int("frames", 3600, "模拟帧数")
	seed      = flag.Uint64("seed", 1, "随机种子")
	dataPath  = flag.String("data", "data/actors.yaml", "角色数据表路径")
	cfgPath   = flag.String("config", "config/graveyard.toml", "配置文件路径")
	enemyCap  = flag.Int("cap", -1, "覆盖敌人上限，-1 表示使用配置")
	strafeSec = flag.Float64("strafe", 2, "左右移动切换间隔（秒）")
	verbose   = flag.Bool("verbose", false, "输出 debug 日志")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadAppConfig(*cfgPath)
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
	defer func() { _ = log.Sync() }()

	table, err := config.LoadActorTable(*dataPath)
	if err != nil {
		log.Fatal("角色数据加载失败", zap.Error(err))
	}

	wc := cfg.World
	if *enemyCap >= 0 {
		wc.EnemyCap = *enemyCap
	}
	w, err := world.New(world.Options{
		Config: wc,
		Table:  table,
		Rand:   rand.New(rand.NewPCG(*seed, *seed+1)),
		Logger: log,
	})
	if err != nil {
		log.Fatal("战场创建失败", zap.Error(err))
	}

	dt := 1 / float64(cfg.Window.TPS)
	strafeFrames := max(1, int(*strafeSec/dt))
	peak := 0
	diedAt := -1

	for i := 0; i < *frames; i++ {
		if w.HasAlivePlayer() {
			dir := 1.0
			if (i/strafeFrames)%2 == 1 {
				dir = -1
			}
			q := w.Commands()
			q.Push(command.Move(types.CategoryPlayer, dir, 0))
			q.Push(command.Fire())
		} else if diedAt < 0 {
			diedAt = i
		}

		w.Update(dt)
		peak = max(peak, w.ActiveEnemies())
	}

	p := message.NewPrinter(language.English)
	p.Printf("frames:      %d (%.1fs)\n", *frames, float64(*frames)*dt)
	p.Printf("seed:        %d\n", *seed)
	p.Printf("score:       %d\n", w.Score())
	p.Printf("multiplier:  %d\n", w.Multiplier())
	p.Printf("enemies:     %d (peak %d, cap %d)\n", w.ActiveEnemies(), peak, wc.EnemyCap)
	p.Printf("player hp:   %d\n", w.Player().HitPoints())
	p.Printf("player ammo: %d\n", w.Player().Ammo())
	if diedAt >= 0 {
		p.Printf("player died at frame %d\n", diedAt)
	}
}
