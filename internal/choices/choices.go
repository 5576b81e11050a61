// Package choices builds multiple-choice question sets from deck items.
package choices

import (
	"math/rand"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/model"
)

// choiceCount is the number of options presented per question.
const choiceCount = 4

// Build produces a multiple-choice presentation for an item. An item
// carrying at least two explicit choices keeps them, with the canonical
// answer swapped into the first slot if it is missing and remaining
// slots filled from sibling answers. Otherwise three distractors are
// drawn from the distinct answers of the other items in the deck. When
// the deck holds fewer than three distinct alternatives the second form
// is impossible and ok is false: the caller falls back to a flip-card
// presentation. All random draws come from rnd so outcomes are fixed
// under a seeded source.
func Build(item model.Item, deck model.Deck, rnd *rand.Rand) (model.Question, bool) {
	var options []string
	if len(item.Choices) >= 2 {
		options = fromExplicit(item, deck, rnd)
	} else {
		alternatives := siblingAnswers(item, deck)
		if len(alternatives) < choiceCount-1 {
			return model.Question{}, false
		}
		rnd.Shuffle(len(alternatives), func(i, j int) {
			alternatives[i], alternatives[j] = alternatives[j], alternatives[i]
		})
		options = append([]string{item.Answer}, alternatives[:choiceCount-1]...)
	}

	rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	question := model.Question{
		Prompt:  item.Prompt,
		Hint:    item.Hint,
		Choices: options,
	}
	for i, option := range options {
		if option == item.Answer {
			question.CorrectIndex = i
			break
		}
	}
	return question, true
}

func fromExplicit(item model.Item, deck model.Deck, rnd *rand.Rand) []string {
	options := append([]string(nil), item.Choices...)
	// Truncate before injecting the answer so an answer listed past the
	// cutoff is not dropped.
	if len(options) > choiceCount {
		options = options[:choiceCount]
	}
	if !contains(options, item.Answer) {
		options[0] = item.Answer
	}
	if len(options) < choiceCount {
		fillers := siblingAnswers(item, deck)
		rnd.Shuffle(len(fillers), func(i, j int) {
			fillers[i], fillers[j] = fillers[j], fillers[i]
		})
		for _, filler := range fillers {
			if len(options) == choiceCount {
				break
			}
			if contains(options, filler) {
				continue
			}
			options = append(options, filler)
		}
	}
	return options
}

// siblingAnswers collects the distinct answer texts of the other items
// in the deck, excluding the current item's own answer.
func siblingAnswers(item model.Item, deck model.Deck) []string {
	seen := map[string]struct{}{item.Answer: {}}
	var answers []string
	for _, other := range deck.Items {
		if other.ID == item.ID {
			continue
		}
		if _, ok := seen[other.Answer]; ok {
			continue
		}
		seen[other.Answer] = struct{}{}
		answers = append(answers, other.Answer)
	}
	return answers
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
