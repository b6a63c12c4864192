package strtask

var (
	suits = []string{"♣", "♦", "♥", "♠"}
	ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// Deck is the initial order of a standard 52-card deck, clubs first.
var Deck = func() []string {
	deck := make([]string, 0, len(suits)*len(ranks))
	for _, s := range suits {
		for _, r := range ranks {
			deck = append(deck, r+s)
		}
	}
	return deck
}()

var cardIndex = func() map[string]int {
	m := make(map[string]int, len(Deck))
	for i, c := range Deck {
		m[c] = i
	}
	return m
}()

// CardID returns the zero-based position of card in Deck, or -1.
func CardID(card string) int {
	if i, ok := cardIndex[card]; ok {
		return i
	}
	return -1
}
