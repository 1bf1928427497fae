// Package loop runs an interactive task loop: read a command, save it,
// dispatch it to a built-in handler, repeat until stop.
package loop

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/simonhull/firebird-suite/perch/pkg/capture"
	"github.com/simonhull/firebird-suite/perch/pkg/input"
	"github.com/simonhull/firebird-suite/perch/pkg/logger"
	"github.com/simonhull/firebird-suite/perch/pkg/output"
)

// StopWord ends the loop. It is matched case-insensitively.
const StopWord = "stop"

// Console text specific to the loop.
const (
	Banner      = "=== 交互式任务循环启动 ==="
	BannerHint  = `输入命令开始工作，输入 "stop" 退出程序`
	ExitMessage = "退出任务循环。"
	EchoLabel   = "用户输入: "
)

// Store is where the loop saves each command and reads the last one back.
type Store interface {
	Save(text string) error
	Load() (string, error)
}

// Env is what handlers get to work with. Previous is the command saved
// before the one being handled.
type Env struct {
	Printer  *output.Printer
	Registry *Registry
	Project  string
	Previous string
}

// Loop reads and dispatches commands until stop, end of input or an
// interrupt.
type Loop struct {
	Reader   input.Reader
	Printer  *output.Printer
	Registry *Registry
	Store    Store
	Project  string
	Logger   logger.Logger
}

// Run drives the loop. It returns nil on every normal exit and an error
// only when a command cannot be saved.
func (l *Loop) Run(ctx context.Context) error {
	if l.Reader == nil || l.Store == nil {
		return errors.New("loop needs a reader and a store")
	}
	p := l.Printer
	if p == nil {
		p = output.NewPrinter(nil)
	}
	reg := l.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	log := l.Logger
	if log == nil {
		log = logger.NewSilentLogger()
	}
	env := &Env{Printer: p, Registry: reg, Project: l.Project}

	last, err := l.Store.Load()
	switch {
	case err == nil:
		log.Debug("previous command found", logger.F("command", last))
	case errors.Is(err, os.ErrNotExist):
		last = ""
	default:
		log.Warn("cannot read previous command", logger.F("error", err))
		last = ""
	}

	p.Prompt(Banner)
	p.Println(BannerHint)

	for {
		res := l.Reader.ReadLine(ctx, capture.LinePrompt)

		if res.Kind != input.KindLine {
			capture.Report(p, res)
			return l.save(capture.Resolve(res).Text)
		}

		text := strings.TrimSpace(res.Text)
		if strings.EqualFold(text, StopWord) {
			p.Println(ExitMessage)
			return l.save(StopWord)
		}
		if text == "" {
			continue
		}

		p.Echo(EchoLabel, text)
		if err := l.save(text); err != nil {
			return err
		}
		env.Previous, last = last, text

		name := strings.ToLower(text)
		log.Debug("dispatching", logger.F("command", name))

		err := reg.Dispatch(ctx, name, env)
		var unknown *UnknownCommandError
		switch {
		case errors.As(err, &unknown):
			p.Println("未知命令: " + text)
			p.Println(`输入 "help" 查看可用命令`)
		case err != nil:
			log.Warn("handler failed", logger.F("command", name), logger.F("error", err))
			p.Notice("发生错误: " + err.Error())
		}
	}
}

func (l *Loop) save(text string) error {
	if err := l.Store.Save(text); err != nil {
		return fmt.Errorf("saving command: %w", err)
	}
	return nil
}
