package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/scorecard"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
	"github.com/KirkDiggler/yahtzee/internal/services/messaging"
)

var dieFaces = []string{"", "⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

var rankEmojis = []string{"🥇", "🥈", "🥉", "4️⃣"}

// formatDice renders a hand as die faces followed by the values
func formatDice(dice []int) string {
	faces := make([]string, 0, len(dice))
	values := make([]string, 0, len(dice))
	for _, d := range dice {
		if d >= 1 && d < len(dieFaces) {
			faces = append(faces, dieFaces[d])
		}
		values = append(values, fmt.Sprint(d))
	}
	return fmt.Sprintf("%s  (%s)", strings.Join(faces, " "), strings.Join(values, " "))
}

// formatScores lists the candidate score for each category of a section
func formatScores(categories []scoring.Category, scores map[scoring.Category]int) string {
	var b strings.Builder
	for _, c := range categories {
		fmt.Fprintf(&b, "%s: **%d**\n", c.DisplayName(), scores[c])
	}
	return b.String()
}

func renderScoreTable(title, description string, scores map[scoring.Category]int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Upper Section", Value: formatScores(scoring.UpperCategories, scores), Inline: true},
			{Name: "Lower Section", Value: formatScores(scoring.LowerCategories, scores), Inline: true},
		},
	}
}

// renderRoll shows a fresh hand and what it would score everywhere
func renderRoll(roll *models.Roll) *discordgo.MessageEmbed {
	description := formatDice(roll.Dice)
	if len(roll.Held) > 0 {
		description += fmt.Sprintf("\nHeld: %s", formatDice(roll.Held))
	}
	return renderScoreTable("🎲 Roll", description, roll.Scores)
}

// renderCalc shows what a hand scores in every category
func renderCalc(dice []int, scores map[scoring.Category]int) *discordgo.MessageEmbed {
	return renderScoreTable("🧮 Score Calculator", formatDice(dice), scores)
}

// renderScorecard shows every box of a player's card with the totals
func renderScorecard(player *models.Player) *discordgo.MessageEmbed {
	card := player.Scorecard
	section := func(categories []scoring.Category) string {
		var b strings.Builder
		for _, c := range categories {
			if v, ok := card.Score(c); ok {
				fmt.Fprintf(&b, "%s: **%d**\n", c.DisplayName(), v)
			} else {
				fmt.Fprintf(&b, "%s: -\n", c.DisplayName())
			}
		}
		return b.String()
	}

	fs := scorecard.ComputeFinalScore(card)
	if player.FinalScore != nil {
		fs = *player.FinalScore
	}

	upper := section(scoring.UpperCategories)
	upper += fmt.Sprintf("\nSubtotal: **%d** / %d\nBonus: **%d**", fs.UpperTotal, scorecard.UpperBonusThreshold, fs.UpperBonus)

	lower := section(scoring.LowerCategories)
	lower += fmt.Sprintf("\nLower total: **%d**", fs.LowerTotal)

	totals := fmt.Sprintf("Bonus Yahtzees: **%d** (+%d)\nTotal: **%d**", fs.BonusYahtzees, fs.BonusYahtzeeScore, fs.TotalScore)

	description := fmt.Sprintf("%d of %d boxes open", len(scorecard.Available(card)), len(scoring.Categories))
	if scorecard.Complete(card) {
		description = "Card complete"
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📋 %s's Scorecard", player.Name),
		Description: description,
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Upper Section", Value: upper, Inline: true},
			{Name: "Lower Section", Value: lower, Inline: true},
			{Name: "Totals", Value: totals, Inline: false},
		},
	}
}

// renderScoreEvent announces a commit, scratch or clear
func renderScoreEvent(msg *messaging.GetScoreMessageOutput, player *models.Player) *discordgo.MessageEmbed {
	color := colorSuccess
	if msg.Tone == messaging.ToneCelebration {
		color = colorGold
	}

	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       color,
	}
	if player != nil && player.FinalScore != nil {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s: %d points", player.Name, player.FinalScore.TotalScore),
		}
	}
	return embed
}

// renderLeaderboard shows the ranked standings with a headline
func renderLeaderboard(board *models.Leaderboard, headline string, completed bool) *discordgo.MessageEmbed {
	var b strings.Builder
	b.WriteString(headline)
	b.WriteString("\n\n")
	for _, entry := range board.Entries {
		rank := fmt.Sprintf("#%d", entry.Rank)
		if entry.Rank >= 1 && entry.Rank <= len(rankEmojis) {
			rank = rankEmojis[entry.Rank-1]
		}
		fmt.Fprintf(&b, "%s **%s**: %d", rank, entry.Name, entry.TotalScore)
		if entry.BonusYahtzees > 0 {
			fmt.Fprintf(&b, " (%d bonus Yahtzee)", entry.BonusYahtzees)
		}
		b.WriteString("\n")
	}

	title := "🏆 Leaderboard"
	if completed {
		title = "🏆 Final Standings"
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: b.String(),
		Color:       colorGold,
	}
}

// renderHistory lists score events, oldest first
func renderHistory(events []*models.ScoreEvent) *discordgo.MessageEmbed {
	var b strings.Builder
	if len(events) == 0 {
		b.WriteString("No scores recorded yet.")
	}
	for _, e := range events {
		line := fmt.Sprintf("`%s` **%s** ", e.Timestamp.Format("15:04:05"), e.PlayerName)
		switch e.Type {
		case models.ScoreEventClear:
			line += fmt.Sprintf("cleared %s", e.Category.DisplayName())
		case models.ScoreEventScratch:
			line += fmt.Sprintf("scratched %s", e.Category.DisplayName())
		default:
			line += fmt.Sprintf("scored %d in %s", e.Score, e.Category.DisplayName())
			if e.BonusAwarded {
				line += " ⭐"
			}
		}
		line += fmt.Sprintf(" (total %d)\n", e.TotalScore)

		// embed descriptions cap at 4096 characters
		if b.Len()+len(line) > 4000 {
			b.WriteString("…")
			break
		}
		b.WriteString(line)
	}

	return &discordgo.MessageEmbed{
		Title:       "📜 Score History",
		Description: b.String(),
		Color:       colorInfo,
	}
}

// renderNewGame announces a freshly created game
func renderNewGame(game *models.Game) *discordgo.MessageEmbed {
	names := make([]string, len(game.Players))
	for i, p := range game.Players {
		names[i] = p.Name
	}

	return &discordgo.MessageEmbed{
		Title:       "🎲 New Yahtzee Game",
		Description: "Roll with `/yahtzee roll` and record scores with `/yahtzee score`.",
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Players", Value: strings.Join(names, "\n"), Inline: false},
		},
	}
}
