package loop

import (
	"context"
	"fmt"
)

type helpHandler struct{}

func (helpHandler) Name() string        { return "help" }
func (helpHandler) Description() string { return "显示帮助信息" }

func (helpHandler) Handle(_ context.Context, env *Env) error {
	env.Printer.Println("可用命令:")
	for _, name := range env.Registry.List() {
		h, _ := env.Registry.Get(name)
		env.Printer.Println(fmt.Sprintf("- %s: %s", name, h.Description()))
	}
	env.Printer.Println("- " + StopWord + ": 退出程序")
	return nil
}

type statusHandler struct{}

func (statusHandler) Name() string        { return "status" }
func (statusHandler) Description() string { return "显示当前状态" }

func (statusHandler) Handle(_ context.Context, env *Env) error {
	env.Printer.Println("系统状态: 正常运行")
	env.Printer.Println("项目: " + env.Project)
	if env.Previous != "" {
		env.Printer.Println("上一条指令: " + env.Previous)
	}
	return nil
}

type devHandler struct{}

func (devHandler) Name() string        { return "dev" }
func (devHandler) Description() string { return "激活开发者模式" }

func (devHandler) Handle(_ context.Context, env *Env) error {
	env.Printer.Println("💻 激活开发者模式")
	env.Printer.Println("可用命令: *help, *run-tests, *explain, *exit")
	return nil
}

// DefaultRegistry returns a registry holding help, status and dev.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, h := range []Handler{helpHandler{}, statusHandler{}, devHandler{}} {
		// Names are fixed and distinct.
		_ = r.Register(h)
	}
	return r
}
