package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/janbajc/clipboard-history-linux/app"
	"github.com/janbajc/clipboard-history-linux/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		daemon    bool
		gui       bool
		list      bool
		clear     bool
		maxItems  int
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "clipboard-history",
		Short: "Linux 剪贴板历史管理器",
		Long: `Linux 剪贴板历史管理器：轮询系统剪贴板，把去重后的历史保存到本地文件，
并提供终端和图形界面两种方式浏览、重新应用历史内容。

用 --daemon 在后台记录，用 --gui 打开选择窗口，用 --list 在终端查看。`,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logging.Setup(logging.ParseFormat(logFormat), logging.ParseLevel(logLevel))

			if !daemon && !gui && !list && !clear {
				return cmd.Help()
			}

			application, err := app.New(maxItems)
			if err != nil {
				return err
			}
			defer application.Close()

			switch {
			case daemon:
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return application.RunDaemon(ctx)
			case gui:
				return application.RunGUI()
			case list:
				return application.RunList(cmd.OutOrStdout())
			default:
				return application.RunClear(cmd.OutOrStdout())
			}
		},
	}

	cmd.Flags().BoolVar(&daemon, "daemon", false, "以守护进程模式运行，轮询并记录剪贴板")
	cmd.Flags().BoolVar(&gui, "gui", false, "打开图形界面历史选择窗口")
	cmd.Flags().BoolVar(&list, "list", false, "在终端打印历史记录")
	cmd.Flags().BoolVar(&clear, "clear", false, "清空全部历史记录")
	cmd.Flags().IntVar(&maxItems, "max-items", 0, "最大保留条数（覆盖配置文件，默认 100）")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "日志级别（debug、info、warn、error）")
	cmd.Flags().StringVar(&logFormat, "log-format", "auto", "日志格式（auto、text、json）")
	cmd.MarkFlagsMutuallyExclusive("daemon", "gui", "list", "clear")

	return cmd
}
