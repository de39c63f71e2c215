package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"godict/config"
	"godict/inventory"
	"godict/logger"
	"godict/menu"
)

const banner = `
   _____       _____  _      _
  / ____|     |  __ \(_)    | |
 | |  __  ___ | |  | |_  ___| |_
 | | |_ |/ _ \| |  | | |/ __| __|
 | |__| | (_) | |__| | | (__| |_
  \_____|\___/|_____/|_|\___|\__|
`

func main() {
	fmt.Print(banner)
	// 加载配置
	if err := config.Init("config.yaml"); err != nil {
		fmt.Printf("init config failed, err:%v\n", err)
		return
	}
	// 初始化日志
	if err := logger.Init(config.Conf.LogConfig); err != nil {
		fmt.Printf("init logger failed, err:%v\n", err)
		return
	}
	defer zap.L().Sync()

	inv := inventory.NewInventory()
	loader := inventory.NewLoader(afero.NewOsFs())
	count, err := loader.Load(config.Conf.AppliancesFile, inv)
	if err != nil {
		zap.L().Error("load appliances failed", zap.Error(err))
		return
	}
	zap.L().Info("inventory ready", zap.Int("appliances", count))

	m := menu.New(inv, loader, config.Conf.AppliancesFile, os.Stdin, os.Stdout)
	if err := m.Run(); err != nil {
		zap.L().Error("menu exited with error", zap.Error(err))
	}
}
