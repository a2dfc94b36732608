package blackjack

import "math/rand"

var ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

var cardValues = map[string]int{
	"A": 11, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7,
	"8": 8, "9": 9, "10": 10, "J": 10, "Q": 10, "K": 10,
}

func drawCard() string {
	return ranks[rand.Intn(len(ranks))]
}

// score считает очки руки. Тузы понижаются с 11 до 1 по одному,
// пока сумма выше 21.
func score(cards []string) int {
	total := 0
	aces := 0
	for _, c := range cards {
		total += cardValues[c]
		if c == "A" {
			aces++
		}
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// isNatural - блэкджек с раздачи: ровно две карты на 21 очко.
func isNatural(cards []string) bool {
	return len(cards) == 2 && score(cards) == 21
}
