package deck

import (
	"fmt"
	"os"
	"path/filepath"
)

// Bundled starter decks so a fresh install has something to review.
var sampleFiles = map[string]string{
	indexFile: `[
  {"id": "geo-b", "title": "共通テスト 地理B（サンプル）", "file": "geo-b.json", "count": 5},
  {"id": "japan-capitals", "title": "日本の都道府県 → 県庁所在地", "file": "japan-capitals.json", "count": 6}
]
`,
	"geo-b.json": `{
  "id": "geo-b",
  "title": "共通テスト 地理B（サンプル）",
  "items": [
    {
      "id": "q1",
      "q": "世界の人口ピラミッドが「つりがね型」を示す国の特徴として最も妥当なのはどれ？",
      "a": "出生率が低く高齢化が進む",
      "choices": ["出生率が高く平均寿命が短い", "出生率が低く高齢化が進む", "一次産業の人口割合が極端に高い", "砂漠気候で降水量が極端に少ない"],
      "hint": "つりがね型＝日本など先進国型。高齢人口の比率が高く、出生率は低い。"
    },
    {
      "id": "q2",
      "q": "等高線が密で谷線が細長く放射状に並ぶ地形で想定しやすいのは？",
      "a": "侵食の進んだ山地",
      "choices": ["溶岩台地", "カルデラ", "侵食の進んだ山地", "砂丘"],
      "hint": "等高線が「密」＝急傾斜。谷線が細長く集まる＝侵食が卓越する山地。"
    },
    {
      "id": "q3",
      "q": "地中海性気候で夏に多い農業として最も適切なのは？",
      "a": "オリーブ・ブドウ栽培",
      "choices": ["小麦の二期作", "コーヒー栽培", "オリーブ・ブドウ栽培", "稲作中心"],
      "hint": "夏乾燥・冬湿潤＝耐乾性の樹木作物が有利。オリーブ・ブドウが代表。"
    },
    {
      "id": "q4",
      "q": "工業の空洞化が進行した先進国で「見られにくい」現象はどれ？",
      "a": "一次産業人口の急増",
      "choices": ["海外への生産移転", "ハイテク産業の集積", "国内の雇用減少", "一次産業人口の急増"],
      "hint": "空洞化は製造業の海外移転で国内雇用が減る。一次産業の「急増」は筋が悪い。"
    },
    {
      "id": "q5",
      "q": "プライメイトシティが成立しやすい国で「起こりがち」な課題は？",
      "a": "一極集中による過密",
      "choices": ["都市機能の分散", "地方の均衡発展", "一極集中による過密", "農村への人口回帰"],
      "hint": "プライメイト＝首位都市の突出。過密・地価高騰・スラム化などが論点。"
    }
  ]
}
`,
	"japan-capitals.json": `[
  {"id": "hokkaido", "q": "北海道の県庁所在地", "a": "札幌市"},
  {"id": "miyagi", "q": "宮城県の県庁所在地", "a": "仙台市"},
  {"id": "aichi", "q": "愛知県の県庁所在地", "a": "名古屋市"},
  {"id": "hyogo", "q": "兵庫県の県庁所在地", "a": "神戸市"},
  {"id": "ehime", "q": "愛媛県の県庁所在地", "a": "松山市", "hint": "四国の北西部。"},
  {"id": "okinawa", "q": "沖縄県の県庁所在地", "a": "那覇市"}
]
`,
}

// WriteSamples writes the bundled sample decks into dir. Existing files
// are left untouched unless force is set.
func WriteSamples(dir string, force bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create decks directory: %w", err)
	}
	for name, content := range sampleFiles {
		path := filepath.Join(dir, name)
		if !force {
			if _, err := os.Stat(path); err == nil {
				continue
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("failed to stat %s: %w", path, err)
			}
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
