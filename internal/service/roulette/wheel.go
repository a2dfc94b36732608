package roulette

import (
	"casino_bot/internal/model"
	"strconv"
)

// Красные номера европейского колеса.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// validCategory - категория либо из известного набора, либо число 0-36.
func validCategory(category string) bool {
	switch category {
	case model.RouletteRed, model.RouletteBlack,
		model.RouletteEven, model.RouletteOdd,
		model.RouletteFirst, model.RouletteSecond, model.RouletteThird:
		return true
	}
	n, err := strconv.Atoi(category)
	return err == nil && n >= 0 && n <= 36
}

// checkWin - выиграла ли категория на выпавшем номере. Ноль не считается
// ни четным, ни нечетным и не входит в дюжины.
func checkWin(category string, number int) bool {
	switch category {
	case model.RouletteRed:
		return redNumbers[number]
	case model.RouletteBlack:
		return number != 0 && !redNumbers[number]
	case model.RouletteEven:
		return number != 0 && number%2 == 0
	case model.RouletteOdd:
		return number%2 == 1
	case model.RouletteFirst:
		return number >= 1 && number <= 12
	case model.RouletteSecond:
		return number >= 13 && number <= 24
	case model.RouletteThird:
		return number >= 25 && number <= 36
	}
	n, err := strconv.Atoi(category)
	return err == nil && n == number
}

func (s *serv) categoryMultiplier(category string) float64 {
	switch category {
	case model.RouletteRed, model.RouletteBlack:
		return s.cfg.Roulette.ColorMultiplier
	case model.RouletteEven, model.RouletteOdd:
		return s.cfg.Roulette.ParityMultiplier
	case model.RouletteFirst, model.RouletteSecond, model.RouletteThird:
		return s.cfg.Roulette.DozenMultiplier
	}
	return s.cfg.Roulette.NumberMultiplier
}

func (s *serv) categoryExp(category string) float64 {
	switch category {
	case model.RouletteRed, model.RouletteBlack:
		return s.cfg.Roulette.ExpColor
	case model.RouletteEven, model.RouletteOdd:
		return s.cfg.Roulette.ExpParity
	case model.RouletteFirst, model.RouletteSecond, model.RouletteThird:
		return s.cfg.Roulette.ExpDozen
	}
	return s.cfg.Roulette.ExpNumber
}
