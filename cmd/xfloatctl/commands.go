package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xfloat/pkg/xfloat"
)

// usageError 表示参数错误，run() 将其映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// createCommands 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createInspectCommand(),
		createCompareCommand(),
		createRandCommand(),
		createAssembleCommand(),
	}
}

// parseValue 解析命令行中的浮点数参数。
// 接受十进制浮点数（含 NaN/Inf 字面量），
// 或 0x 前缀的 16 位十六进制原始位模式。
func parseValue(s string) (float64, error) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		x, err := xfloat.ParseHex(rest)
		if err != nil {
			return 0, usageErrorf("无效的位模式 %q: %v", s, err)
		}
		return x, nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, usageErrorf("无效的浮点数 %q", s)
	}
	return x, nil
}

// parseTolerance 解析容差 flag，空字符串回落到默认值。
func parseTolerance(s string, fallback float64) (float64, error) {
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, usageErrorf("无效的容差 %q", s)
	}
	return v, nil
}

// createInspectCommand 创建 inspect 子命令。
func createInspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Aliases:   []string{"i"},
		Usage:     "检查浮点数的位级表示",
		ArgsUsage: "<value>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return usageErrorf("inspect 需要 1 个参数，收到 %d 个", cmd.Args().Len())
			}
			x, err := parseValue(cmd.Args().Get(0))
			if err != nil {
				return err
			}
			printInspection(x)
			return nil
		},
	}
}

// printInspection 输出浮点数的完整位级检查结果。
func printInspection(x float64) {
	f := xfloat.Disassemble(x)
	fmt.Printf("value:     %v\n", x)
	fmt.Printf("hex:       %s\n", xfloat.ToHex(x))
	fmt.Printf("sign:      %d\n", f.Sign)
	fmt.Printf("exponent:  %d (unbiased %d)\n", f.Exponent, f.Unbiased())
	fmt.Printf("fraction:  %d\n", f.Fraction)
	fmt.Printf("class:     %s\n", xfloat.Classify(x))
	fmt.Printf("ulp:       %v\n", xfloat.ULP(x))
	fmt.Printf("next:      %v\n", xfloat.Next(x))
	fmt.Printf("prev:      %v\n", xfloat.Prev(x))
}

// createCompareCommand 创建 compare 子命令。
func createCompareCommand() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Aliases:   []string{"c"},
		Usage:     "容差三向比较，输出 -1、0 或 1",
		ArgsUsage: "<a> <b>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "rel",
				Usage: "相对容差（默认 1e-9）",
			},
			&cli.StringFlag{
				Name:  "abs",
				Usage: "绝对容差（默认机器精度 2^-52）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return usageErrorf("compare 需要 2 个参数，收到 %d 个", cmd.Args().Len())
			}
			a, err := parseValue(cmd.Args().Get(0))
			if err != nil {
				return err
			}
			b, err := parseValue(cmd.Args().Get(1))
			if err != nil {
				return err
			}
			relTol, err := parseTolerance(cmd.String("rel"), xfloat.DefaultRelTol)
			if err != nil {
				return err
			}
			absTol, err := parseTolerance(cmd.String("abs"), xfloat.Epsilon)
			if err != nil {
				return err
			}
			got, err := xfloat.CompareTol(a, b, relTol, absTol)
			if err != nil {
				return err
			}
			fmt.Println(got)
			return nil
		},
	}
}

// createRandCommand 创建 rand 子命令。
func createRandCommand() *cli.Command {
	return &cli.Command{
		Name:      "rand",
		Aliases:   []string{"r"},
		Usage:     "生成区间内的随机浮点数",
		ArgsUsage: "<min> <max>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "uniform",
				Usage: "等概率网格采样（默认为全覆盖非均匀采样）",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "生成数量",
				Value:   1,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return usageErrorf("rand 需要 2 个参数，收到 %d 个", cmd.Args().Len())
			}
			min, err := parseValue(cmd.Args().Get(0))
			if err != nil {
				return err
			}
			max, err := parseValue(cmd.Args().Get(1))
			if err != nil {
				return err
			}
			count := cmd.Int("count")
			if count < 1 {
				return usageErrorf("count 必须 >= 1，收到 %d", count)
			}
			uniform := cmd.Bool("uniform")
			for range count {
				var x float64
				var err error
				if uniform {
					x, err = xfloat.RandUniform(min, max)
				} else {
					x, err = xfloat.Rand(min, max)
				}
				if err != nil {
					return err
				}
				fmt.Println(x)
			}
			return nil
		},
	}
}

// createAssembleCommand 创建 assemble 子命令。
func createAssembleCommand() *cli.Command {
	return &cli.Command{
		Name:      "assemble",
		Aliases:   []string{"a"},
		Usage:     "由 {符号, 指数, 尾数} 位域组合浮点数",
		ArgsUsage: "<sign> <exponent> <fraction>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 3 {
				return usageErrorf("assemble 需要 3 个参数，收到 %d 个", cmd.Args().Len())
			}
			fields := make([]uint64, 3)
			for i := range fields {
				v, err := strconv.ParseUint(cmd.Args().Get(i), 10, 64)
				if err != nil {
					return usageErrorf("无效的位域分量 %q", cmd.Args().Get(i))
				}
				fields[i] = v
			}
			x, err := xfloat.Assemble(fields[0], fields[1], fields[2])
			if err != nil {
				return usageErrorf("%v", err)
			}
			printInspection(x)
			return nil
		},
	}
}
