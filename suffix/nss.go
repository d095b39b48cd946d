package suffix

import "fmt"

// NSS computes the next smaller suffix array from the inverse suffix array.
// The value nss[i] is the smallest j > i with a suffix at j smaller than the
// suffix at i. If no such suffix exists nss[i] is set to the length of the
// text.
func NSS(sainv, nss []int32) {
	if len(nss) != len(sainv) {
		panic(fmt.Errorf("suffix: len(nss)=%d != len(sainv)=%d",
			len(nss), len(sainv)))
	}
	stack := make([]int32, 0, 16)
	for i, r := range sainv {
		for len(stack) > 0 {
			j := stack[len(stack)-1]
			if sainv[j] < r {
				break
			}
			nss[j] = int32(i)
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, int32(i))
	}
	n := int32(len(sainv))
	for _, j := range stack {
		nss[j] = n
	}
}
