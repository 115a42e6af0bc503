// Package xfloat 提供 IEEE-754 双精度浮点数的位级工具库。
//
// xfloat 围绕 float64 的 64 位表示（1 位符号 + 11 位偏移指数 + 52 位尾数）
// 提供位级分解/组合、相邻可表示值导航、ULP 间距计算、
// 容差近似比较和两种统计性质不同的随机浮点数生成策略。
// 所有操作都是无状态的纯函数，对符号零、无穷、NaN 和次正规数
// 均有明确定义的边界行为。
//
// # 核心功能
//
//   - bits.go: 位级分解/组合（[ToBits]、[FromBits]、[Disassemble]、[Assemble]）及布局常量
//   - classify.go: 符号与特殊值判定（[IsNegativeZero]、[IsSpecial]、[Classify] 等）
//   - navigate.go: 相邻可表示值（[Next]、[Prev]）
//   - ulp.go: 精确 ULP 间距（[ULP]）
//   - compare.go: 容差近似比较与三向比较（[ApproxEqual]、[Compare] 等）
//   - random.go: 随机浮点数生成（[RandFull]、[Rand]、[RandUniform]）
//   - hex.go: 位模式十六进制编码（[ToHex]、[ParseHex]）
//
// # 快速示例
//
// 分解与组合位域：
//
//	f := xfloat.Disassemble(1.5)
//	fmt.Println(f.Sign, f.Exponent, f.Fraction)  // 0 1023 2251799813685248
//	x, _ := xfloat.Assemble(f.Sign, f.Exponent, f.Fraction)
//	fmt.Println(x)                               // 1.5
//
// 相邻可表示值与 ULP：
//
//	fmt.Println(xfloat.Next(1.0))   // 1.0000000000000002
//	fmt.Println(xfloat.ULP(1.0))    // 2.220446049250313e-16
//
// 容差比较：
//
//	fmt.Println(0.1+0.2 == 0.3)                // false
//	fmt.Println(xfloat.ApproxEqual(0.1+0.2, 0.3)) // true
//
// 随机生成：
//
//	x, err := xfloat.RandUniform(0, 10)  // [0,10] 内等概率网格采样
//	y, err := xfloat.Rand(0, 10)         // [0,10] 内全覆盖非均匀采样
//
// # 设计决策
//
//   - ULP 采用精确定义 Next(|x|)-|x|，不使用 |x|*ε 近似（后者在 2 的幂附近偏差一倍）
//   - [ApproxEqual] 对 NaN 返回 false（NaN 不与任何值接近），
//     [Compare] 对 NaN 返回 [ErrNaNCompare]（NaN 无序关系）——不对称是刻意的
//   - 随机源统一使用 crypto/rand，熵源不可用返回 [ErrEntropyUnavailable] 而非降级
//   - 拒绝采样带迭代上限，病态区间返回 [ErrRejectionBudget] 而非自旋
//   - 所有可失败函数返回 error，预定义错误变量支持 errors.Is
//
// # NaN 位模式保真度
//
// [Assemble] 原则上可以产生约 2^53-2 个不同的 NaN 位模式，
// 但运行时可能在后续算术中把 NaN 规范化为单一模式，
// 不要依赖任意 NaN 载荷跨操作保持不变。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xfloat.Assemble(0, 2048, 0)
//	if errors.Is(err, xfloat.ErrFieldRange) {
//	    // 位域分量越界
//	}
package xfloat
