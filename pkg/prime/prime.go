// Package prime 质数判断辅助函数
// 与图书目录业务无关的独立工具
package prime

import "math"

// IsPrime 判断n是否为质数
// 小于等于1的数(含负数)不是质数;用试除法检查到sqrt(n)为止
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}

	limit := int(math.Sqrt(float64(n)))
	for i := 2; i <= limit; i++ {
		if n%i == 0 {
			return false
		}
	}

	return true
}
