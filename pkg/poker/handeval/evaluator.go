package handeval

import (
	"sort"

	"headsupholdem-server/pkg/deck"
)

// Result is the outcome of evaluating a set of cards.
// BestCards are the cards forming the category, strongest first.
// Kickers break ties between hands of the same category and BestCards.
type Result struct {
	Category  Category  `json:"category"`
	BestCards deck.Hand `json:"bestCards"`
	Kickers   deck.Hand `json:"kickers"`
}

// Name returns the display name of the result's category
func (r *Result) Name() string {
	return r.Category.String()
}

// Evaluate returns the best hand that can be made from the hole cards
// combined with the community cards (at most 7 cards total)
func Evaluate(holeCards, communityCards []*deck.Card) *Result {
	cards := make(deck.Hand, 0, len(holeCards)+len(communityCards))
	cards = append(cards, holeCards...)
	cards = append(cards, communityCards...)
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Rank > cards[j].Rank
	})

	e := &evaluation{cards: cards}
	e.group()

	return e.best()
}

type evaluation struct {
	cards deck.Hand

	// rank groups sorted by descending rank
	quads []int
	trips []int
	pairs []int

	bySuit map[deck.Suit]deck.Hand
	byRank map[int]deck.Hand
}

func (e *evaluation) group() {
	e.bySuit = make(map[deck.Suit]deck.Hand)
	e.byRank = make(map[int]deck.Hand)

	// cards are sorted by descending rank, so every group stays sorted
	for _, card := range e.cards {
		e.bySuit[card.Suit] = append(e.bySuit[card.Suit], card)
		e.byRank[card.Rank] = append(e.byRank[card.Rank], card)
	}

	ranks := make([]int, 0, len(e.byRank))
	for rank := range e.byRank {
		ranks = append(ranks, rank)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	for _, rank := range ranks {
		switch len(e.byRank[rank]) {
		case 4:
			e.quads = append(e.quads, rank)
		case 3:
			e.trips = append(e.trips, rank)
		case 2:
			e.pairs = append(e.pairs, rank)
		}
	}
}

// best walks the categories from strongest to weakest and returns the
// first one the cards satisfy
func (e *evaluation) best() *Result {
	if run := e.straightFlush(); run != nil {
		category := StraightFlush
		if run.FirstCard().Rank == deck.Ace {
			category = RoyalFlush
		}

		return &Result{Category: category, BestCards: run}
	}

	if len(e.quads) > 0 {
		four := e.byRank[e.quads[0]]
		return &Result{
			Category:  FourOfAKind,
			BestCards: four,
			Kickers:   e.remaining(four, 1),
		}
	}

	if best := e.fullHouse(); best != nil {
		return &Result{Category: FullHouse, BestCards: best}
	}

	if flush := e.flush(); flush != nil {
		return &Result{Category: Flush, BestCards: flush}
	}

	if run := findStraight(e.cards); run != nil {
		return &Result{Category: Straight, BestCards: run}
	}

	if len(e.trips) > 0 {
		three := e.byRank[e.trips[0]]
		return &Result{
			Category:  ThreeOfAKind,
			BestCards: three,
			Kickers:   e.remaining(three, 2),
		}
	}

	if len(e.pairs) >= 2 {
		best := append(e.byRank[e.pairs[0]].Clone(), e.byRank[e.pairs[1]]...)
		return &Result{
			Category:  TwoPair,
			BestCards: best,
			Kickers:   e.remaining(best, 1),
		}
	}

	if len(e.pairs) == 1 {
		pair := e.byRank[e.pairs[0]]
		return &Result{
			Category:  OnePair,
			BestCards: pair,
			Kickers:   e.remaining(pair, 3),
		}
	}

	top := deck.Hand{e.cards.FirstCard()}
	return &Result{
		Category:  HighCard,
		BestCards: top,
		Kickers:   e.remaining(top, 4),
	}
}

// straightFlush finds the best straight within a single suit. The algorithm
// does not assume only one suit can complete, even though a standard 52-card,
// seven-card hand cannot produce two
func (e *evaluation) straightFlush() deck.Hand {
	var best deck.Hand
	bestHigh := 0

	for _, suited := range e.bySuit {
		if len(suited) < 5 {
			continue
		}

		if run := findStraight(suited); run != nil {
			if high := straightHigh(run); high > bestHigh {
				best = run
				bestHigh = high
			}
		}
	}

	return best
}

// fullHouse returns the triple followed by the pair. A second three-of-a-kind
// may serve as the pair; when two triples exist, the higher one is the triple
func (e *evaluation) fullHouse() deck.Hand {
	if len(e.trips) == 0 {
		return nil
	}

	pairRank := 0
	if len(e.trips) >= 2 {
		pairRank = e.trips[1]
	}
	if len(e.pairs) > 0 && e.pairs[0] > pairRank {
		pairRank = e.pairs[0]
	}

	if pairRank == 0 {
		return nil
	}

	best := e.byRank[e.trips[0]].Clone()
	return append(best, e.byRank[pairRank][0:2]...)
}

func (e *evaluation) flush() deck.Hand {
	var best deck.Hand
	for _, suited := range e.bySuit {
		if len(suited) < 5 {
			continue
		}

		if best == nil || suited.FirstCard().Rank > best.FirstCard().Rank {
			best = suited[0:5]
		}
	}

	return best
}

// remaining returns up to count kickers, the highest cards not already used
func (e *evaluation) remaining(used deck.Hand, count int) deck.Hand {
	kickers := make(deck.Hand, 0, count)
	for _, card := range e.cards {
		if used.HasCard(card) {
			continue
		}

		kickers = append(kickers, card)
		if len(kickers) == count {
			break
		}
	}

	return kickers
}

// findStraight returns the best five-card run among the cards, highest card
// first, or nil. The Ace plays high and low: the wheel (A-2-3-4-5) comes back
// as 5,4,3,2,A. Cards must be sorted by descending rank
func findStraight(cards deck.Hand) deck.Hand {
	byRank := make(map[int]*deck.Card, len(cards))
	for _, card := range cards {
		if _, ok := byRank[card.Rank]; !ok {
			byRank[card.Rank] = card
		}
	}

	// the ace also plays as the low end of the wheel
	if ace, ok := byRank[deck.Ace]; ok {
		byRank[deck.LowAce] = ace
	}

	// scan candidate high cards from highest to lowest; the first complete
	// run of five consecutive ranks is the best straight
	for high := deck.Ace; high >= 5; high-- {
		run := make(deck.Hand, 0, 5)
		for rank := high; rank > high-5; rank-- {
			card, ok := byRank[rank]
			if !ok {
				break
			}

			run = append(run, card)
		}

		if len(run) == 5 {
			return run
		}
	}

	return nil
}

// straightHigh returns the effective high value of a straight run,
// counting the ace low in the wheel
func straightHigh(run deck.Hand) int {
	return run.FirstCard().Rank
}

// Compare orders two results. It returns a positive number if a is the better
// hand, a negative number if b is, and 0 for a genuine tie (a split pot).
// Ties within a category are broken by BestCards, then Kickers, pairwise by rank
func Compare(a, b *Result) int {
	if a.Category != b.Category {
		return int(a.Category) - int(b.Category)
	}

	if cmp := compareCards(a.BestCards, b.BestCards); cmp != 0 {
		return cmp
	}

	return compareCards(a.Kickers, b.Kickers)
}

func compareCards(a, b deck.Hand) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if cmp := a[i].Rank - b[i].Rank; cmp != 0 {
			return cmp
		}
	}

	return 0
}
