// xfloatctl 是 xfloat 浮点数工具库的命令行客户端，
// 用于检查 IEEE-754 双精度浮点数的位级表示。
//
// 用法:
//
//	xfloatctl <命令> [命令参数]
//
// 命令:
//
//	inspect <value>                   检查浮点数的位级表示
//	compare <a> <b>                   容差三向比较
//	rand <min> <max>                  生成区间内随机浮点数
//	assemble <sign> <exp> <frac>      由位域组合浮点数
//	help                              显示帮助信息
//
// <value> 接受十进制浮点数（如 1.5、-2e10、NaN、+Inf）
// 或 0x 前缀的 16 位十六进制原始位模式（如 0x3ff8000000000000）。
//
// 退出码:
//
//	0: 命令执行成功
//	1: 命令执行失败（如熵源不可用、NaN 比较）
//	2: 参数错误（无效数值、缺少必需参数、未知命令等）
//
// 示例:
//
//	xfloatctl inspect 1.5                     # 查看 1.5 的位级分解
//	xfloatctl inspect 0x3ff8000000000000      # 按原始位模式查看
//	xfloatctl compare 0.30000000000000004 0.3 # 容差比较
//	xfloatctl rand 0 10 --uniform --count 5   # 等概率采样 5 个
//	xfloatctl assemble 0 2047 0               # 组合出 +Inf
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "xfloatctl",
		Usage:          "IEEE-754 双精度浮点数位级检查工具",
		Version:        fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"XFloat Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()

	if err := app.Run(context.Background(), args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if _, ok := err.(cli.ExitCoder); ok {
			// ExitErrHandler 已输出错误详情，CLI 框架的参数错误映射到退出码 2
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}
