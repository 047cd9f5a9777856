// Command calc prints what a Yahtzee hand scores in every category.
//
//	calc 3 3 3 2 2
//	calc -roll -held 66
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/KirkDiggler/yahtzee/internal/dice"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
)

func main() {
	roll := flag.Bool("roll", false, "roll a random hand instead of reading one")
	held := flag.String("held", "", "dice to keep when rolling, e.g. 66")
	seed := flag.Int64("seed", 0, "random seed, zero for the clock")
	flag.Parse()

	hand, err := readHand(*roll, *held, *seed, flag.Args())
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	scores, err := scoring.ScoreAll(hand)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	pterm.Info.Printfln("Hand: %s", pterm.LightCyan(fmt.Sprint(hand)))
	if err := pterm.DefaultTable.WithHasHeader().WithData(scoreTable(scores)).Render(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func readHand(roll bool, held string, seed int64, args []string) ([]int, error) {
	if !roll {
		return scoring.ParseDice(strings.Join(args, " "))
	}

	keep, err := scoring.ParseDice(held)
	if err != nil {
		return nil, err
	}
	return dice.RollHand(dice.New(&dice.Config{Seed: seed}), keep)
}

// scoreTable lays the categories out in scorecard order, best score highlighted
func scoreTable(scores map[scoring.Category]int) pterm.TableData {
	best := 0
	for _, v := range scores {
		if v > best {
			best = v
		}
	}

	data := pterm.TableData{{"Section", "Category", "Score"}}
	for _, c := range scoring.Categories {
		section := "Lower"
		if c.IsUpper() {
			section = "Upper"
		}
		score := fmt.Sprint(scores[c])
		if best > 0 && scores[c] == best {
			score = pterm.LightGreen(score)
		}
		data = append(data, []string{section, c.DisplayName(), score})
	}
	return data
}
