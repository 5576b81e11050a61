// Package rewards grants collectible cards and picks feedback lines.
package rewards

import (
	"math/rand"
)

// Card is one collectible reward card.
type Card struct {
	ID    string
	Emoji string
	Label string
}

// Cards is the full collection, in display order.
var Cards = []Card{
	{ID: "panda", Emoji: "🐼", Label: "パンダ"},
	{ID: "shiba", Emoji: "🐕", Label: "しばいぬ"},
	{ID: "neko", Emoji: "🐈", Label: "ねこ"},
	{ID: "usagi", Emoji: "🐇", Label: "うさぎ"},
	{ID: "penguin", Emoji: "🐧", Label: "ペンギン"},
	{ID: "kuma", Emoji: "🐻", Label: "くま"},
	{ID: "zou", Emoji: "🐘", Label: "ぞう"},
	{ID: "koala", Emoji: "🐨", Label: "コアラ"},
	{ID: "kirin", Emoji: "🦒", Label: "きりん"},
	{ID: "fukurou", Emoji: "🦉", Label: "ふくろう"},
}

// GrantInterval is the number of lifetime correct answers per card grant.
const GrantInterval = 10

// CardByID returns the card with the given id and whether it exists.
func CardByID(id string) (Card, bool) {
	for _, card := range Cards {
		if card.ID == id {
			return card, true
		}
	}
	return Card{}, false
}

// Grant picks one card, preferring cards not yet owned. Once the
// collection is complete a random card is granted again.
func Grant(owned map[string]bool, rnd *rand.Rand) Card {
	var candidates []Card
	for _, card := range Cards {
		if !owned[card.ID] {
			candidates = append(candidates, card)
		}
	}
	if len(candidates) == 0 {
		candidates = Cards
	}
	return candidates[rnd.Intn(len(candidates))]
}

var (
	normalLines = []string{
		"ナイス！", "さすが！", "いいね！", "バッチリ！", "流石です！",
		"その調子！", "完璧！", "イケてる！", "冴えてる！", "かりん、天才！",
	}
	streak3Lines = []string{
		"調子上がってきた！", "3連続は強い！", "エンジンかかったね！",
		"このまま行こう！", "連勝モード突入！",
	}
	streak5Lines = []string{
		"完璧だね！！", "5連続は神！", "止まらない〜！",
		"ゾーン入ってる！", "さすが受験生の本気！",
	}
	streak10Lines = []string{
		"10連続！伝説の幕開け…！", "桁違いの集中力！", "かりん史上最強！",
		"この走りは受かる！", "記録、塗り替えていこう！",
	}
	cheerLines = []string{
		"深呼吸して次もいこ！", "姿勢を正して、集中！", "脳に酸素！",
		"あと一問、丁寧に！", "積み重ねは裏切らない！",
	}
	wrongLines = []string{
		"ドンマイ！次で取り返そう！", "惜しい！視点を変えよう。", "ヒントで読み筋を確認しよ！",
		"まだまだいける！", "切り替え早いのが勝ち！",
	}
)

// cheerChance is the probability of appending an extra cheer line.
const cheerChance = 0.25

// CorrectLine picks an encouragement line tiered by the current streak,
// occasionally appending a cheer.
func CorrectLine(streak int, rnd *rand.Rand) string {
	var pool []string
	switch {
	case streak >= 10:
		pool = streak10Lines
	case streak >= 5:
		pool = streak5Lines
	case streak >= 3:
		pool = streak3Lines
	default:
		pool = normalLines
	}
	line := pool[rnd.Intn(len(pool))]
	if rnd.Float64() < cheerChance {
		line += "  " + cheerLines[rnd.Intn(len(cheerLines))]
	}
	return line
}

// WrongLine picks a consolation line.
func WrongLine(rnd *rand.Rand) string {
	return wrongLines[rnd.Intn(len(wrongLines))]
}
