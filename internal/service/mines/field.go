package mines

import (
	"math"
	"math/rand"

	"casino_bot/internal/model"
)

// multiplier - коэффициент выплаты после opened открытых безопасных
// клеток: обратная вероятность дожить до этого момента с комиссией 5%.
func multiplier(mines, opened int) float64 {
	p := 0.95
	for i := 0; i < opened; i++ {
		p *= float64(model.MinesFieldSize-mines-i) / float64(model.MinesFieldSize-i)
	}
	return math.Round(100/p) / 100
}

// newField раздает поле: 0 - мина, 1 - безопасная клетка.
func newField(mines int) []int {
	field := make([]int, model.MinesFieldSize)
	for i := range field {
		field[i] = 1
	}
	for _, idx := range rand.Perm(model.MinesFieldSize)[:mines] {
		field[idx] = 0
	}
	return field
}

func isOpened(opened []int, cell int) bool {
	for _, c := range opened {
		if c == cell {
			return true
		}
	}
	return false
}
