package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/palemoky/special-hands/internal/config"
	"github.com/palemoky/special-hands/internal/game/card"
	"github.com/palemoky/special-hands/internal/game/rule"
	"github.com/palemoky/special-hands/internal/logger"
	"github.com/palemoky/special-hands/internal/ui/common"
	"github.com/palemoky/special-hands/internal/ui/view"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	deal := flag.Bool("deal", false, "从洗好的牌堆随机发一手牌")
	seed := flag.Uint64("seed", 0, "发牌随机种子，0 表示随机")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	if !cfg.Log.Disabled {
		if err := logger.Init(cfg.Log.Dir); err != nil {
			fmt.Fprintln(os.Stderr, common.ErrorStyle.Render(fmt.Sprintf("日志初始化失败: %v", err)))
		}
		defer logger.Close()
	}
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	hand, err := readHand(flag.Args(), *deal, *seed, cfg.Deal.HandSize)
	if err != nil {
		logger.LogError("读取手牌失败: %v", err)
		fmt.Fprintln(os.Stderr, common.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}

	result := rule.Resolve(hand)
	area := cfg.Rules.AreaRules().Score(hand)
	logger.LogInfo("hand=%v pattern=%s score=%d area=%d", hand, result.Type, result.Score, area.Total)

	fmt.Println(view.RenderEvaluation(hand, result, area))
}

// readHand 从命令行参数解析手牌，或在 deal 模式下随机发牌
func readHand(args []string, deal bool, seed uint64, size int) ([]card.Card, error) {
	if !deal {
		return card.ParseHand(strings.Join(args, " "))
	}

	var r *rand.Rand
	if seed != 0 {
		r = rand.New(rand.NewPCG(seed, seed))
	}
	deck := card.NewDeck()
	deck.Shuffle(r)
	hand, _, err := deck.Deal(size)
	return hand, err
}
