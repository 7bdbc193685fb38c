package clipboard

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/go-vgo/robotgo"
)

// activateDelay 焦点切回原窗口后到按键模拟之间的等待，给系统留出注册新剪贴板内容的时间
const activateDelay = 500 * time.Millisecond

// Paster 负责把焦点切回打开选择窗口之前的活动窗口，并模拟粘贴按键。
// 窗口切换走 xdotool（X11），按键模拟走 robotgo；每一步失败都只记录日志，
// 不影响已写入的剪贴板内容。
type Paster struct {
	prevWindow string // 打开窗口时的活动窗口ID，xdotool 不可用时为空
	combo      string // 粘贴组合键，如 ctrl+shift+v
}

// NewPaster 创建粘贴模拟器，并立刻捕获当前活动窗口
func NewPaster(combo string) *Paster {
	return &Paster{
		prevWindow: activeWindowID(),
		combo:      combo,
	}
}

// RestoreAndPaste 切回原窗口并模拟粘贴按键
func (p *Paster) RestoreAndPaste() {
	if p.prevWindow != "" {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		if err := exec.CommandContext(ctx, "xdotool", "windowactivate", "--sync", p.prevWindow).Run(); err != nil {
			slog.Warn("切回原窗口失败", "window", p.prevWindow, "error", err)
		}
	}

	time.Sleep(activateDelay)

	key, mods := parseCombo(p.combo)
	if key == "" {
		return
	}
	if err := robotgo.KeyTap(key, mods...); err != nil {
		slog.Warn("模拟粘贴按键失败", "combo", p.combo, "error", err)
	}
}

// activeWindowID 获取当前活动窗口ID，失败返回空串（粘贴时跳过焦点切换）
func activeWindowID() string {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "xdotool", "getactivewindow").Output()
	if err != nil {
		slog.Warn("获取活动窗口失败，粘贴时将不切换焦点", "error", err)
		return ""
	}
	return strings.TrimSpace(string(out))
}

// parseCombo 解析 "ctrl+shift+v" 形式的组合键：最后一段是主键，其余为修饰键
func parseCombo(combo string) (string, []interface{}) {
	parts := strings.Split(strings.ToLower(combo), "+")
	if len(parts) == 0 {
		return "", nil
	}

	key := strings.TrimSpace(parts[len(parts)-1])
	var mods []interface{}
	for _, part := range parts[:len(parts)-1] {
		if part = strings.TrimSpace(part); part != "" {
			mods = append(mods, part)
		}
	}
	return key, mods
}
