package gen

import "github.com/brianvoe/gofakeit/v7"

// ItemDescriptions returns n fake product descriptions for order details.
func ItemDescriptions(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, gofakeit.ProductName())
	}
	return out
}
