// Package clipboard 封装系统剪贴板访问和守护进程的轮询逻辑。
// 历史核心不直接触碰系统剪贴板，全部经由 Gateway 接口，便于用内存实现做测试。
package clipboard

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"
)

// 预定义错误变量
var (
	ErrTimeout     = errors.New("剪贴板操作超时")
	ErrUnavailable = errors.New("系统剪贴板不可用")
)

// commandTimeout 外部工具调用的超时上限
const commandTimeout = 5 * time.Second

// Gateway 剪贴板网关接口。读写失败返回错误而非中断流程，
// 调用方一律按"本轮失败、下轮重试"处理。
type Gateway interface {
	// Read 读取当前剪贴板文本
	Read() (string, error)

	// Write 设置剪贴板文本
	Write(text string) error

	// Name 返回后端名称（用于日志）
	Name() string
}

// SystemGateway 系统剪贴板网关。
// 优先使用 golang.design/x/clipboard 的原生通道；初始化失败时（无 X11/Wayland
// 显示连接等）回退到 atotto/clipboard，由它调用 xclip/xsel/wl-clipboard 外部工具。
type SystemGateway struct {
	native bool
}

// NewSystemGateway 创建系统剪贴板网关
func NewSystemGateway() *SystemGateway {
	if err := clipboard.Init(); err != nil {
		slog.Warn("原生剪贴板初始化失败，回退到外部工具", "error", err)
		return &SystemGateway{native: false}
	}
	return &SystemGateway{native: true}
}

// Name 返回后端名称
func (g *SystemGateway) Name() string {
	if g.native {
		return "native"
	}
	return "external"
}

// Check 启动时探测剪贴板是否可用。原生通道就绪则直接通过；
// 否则要求系统中装有任一剪贴板外部工具，全都缺失时返回错误（进程应以非零退出）。
func (g *SystemGateway) Check() error {
	if g.native {
		return nil
	}

	tools := []string{"xclip", "xsel", "wl-paste"}
	for _, tool := range tools {
		if _, err := exec.LookPath(tool); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: 请安装 xclip（如 sudo apt install xclip）", ErrUnavailable)
}

// Read 读取当前剪贴板文本
func (g *SystemGateway) Read() (string, error) {
	if g.native {
		return string(clipboard.Read(clipboard.FmtText)), nil
	}

	type result struct {
		text string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		text, err := atotto.ReadAll()
		ch <- result{text, err}
	}()

	select {
	case r := <-ch:
		return r.text, r.err
	case <-time.After(commandTimeout):
		return "", fmt.Errorf("读取剪贴板: %w", ErrTimeout)
	}
}

// Write 设置剪贴板文本
func (g *SystemGateway) Write(text string) error {
	if g.native {
		clipboard.Write(clipboard.FmtText, []byte(text))
		return nil
	}

	ch := make(chan error, 1)
	go func() {
		ch <- atotto.WriteAll(text)
	}()

	select {
	case err := <-ch:
		return err
	case <-time.After(commandTimeout):
		return fmt.Errorf("写入剪贴板: %w", ErrTimeout)
	}
}
