package roulette

import (
	"strconv"
	"testing"

	"casino_bot/internal/model"
)

func TestValidCategory(t *testing.T) {
	valid := []string{
		model.RouletteRed, model.RouletteBlack,
		model.RouletteEven, model.RouletteOdd,
		model.RouletteFirst, model.RouletteSecond, model.RouletteThird,
		"0", "7", "36",
	}
	for _, c := range valid {
		if !validCategory(c) {
			t.Errorf("expected %q to be a valid category", c)
		}
	}

	invalid := []string{"", "37", "-1", "red", "abc", "3.5"}
	for _, c := range invalid {
		if validCategory(c) {
			t.Errorf("expected %q to be rejected", c)
		}
	}
}

func TestCheckWinZero(t *testing.T) {
	// Ноль не красный, не черный, не четный, не нечетный и вне дюжин.
	losing := []string{
		model.RouletteRed, model.RouletteBlack,
		model.RouletteEven, model.RouletteOdd,
		model.RouletteFirst, model.RouletteSecond, model.RouletteThird,
	}
	for _, c := range losing {
		if checkWin(c, 0) {
			t.Errorf("category %q should lose on zero", c)
		}
	}

	if !checkWin("0", 0) {
		t.Error("straight bet on 0 should win on zero")
	}
}

func TestCheckWinColors(t *testing.T) {
	for n := 1; n <= 36; n++ {
		red := checkWin(model.RouletteRed, n)
		black := checkWin(model.RouletteBlack, n)
		if red == black {
			t.Errorf("number %d: red=%v black=%v, exactly one must win", n, red, black)
		}
	}

	if !checkWin(model.RouletteRed, 1) {
		t.Error("1 is red")
	}
	if !checkWin(model.RouletteBlack, 2) {
		t.Error("2 is black")
	}
}

func TestCheckWinParityAndDozens(t *testing.T) {
	for n := 1; n <= 36; n++ {
		even := checkWin(model.RouletteEven, n)
		odd := checkWin(model.RouletteOdd, n)
		if even == odd {
			t.Errorf("number %d: even=%v odd=%v", n, even, odd)
		}

		dozens := 0
		for _, c := range []string{model.RouletteFirst, model.RouletteSecond, model.RouletteThird} {
			if checkWin(c, n) {
				dozens++
			}
		}
		if dozens != 1 {
			t.Errorf("number %d falls into %d dozens", n, dozens)
		}
	}
}

func TestCheckWinStraight(t *testing.T) {
	for n := 0; n <= 36; n++ {
		cat := strconv.Itoa(n)
		if !checkWin(cat, n) {
			t.Errorf("straight bet %q should win on %d", cat, n)
		}
		if checkWin(cat, (n+1)%37) {
			t.Errorf("straight bet %q should lose on %d", cat, (n+1)%37)
		}
	}
}
