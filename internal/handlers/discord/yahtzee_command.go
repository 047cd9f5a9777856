package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/KirkDiggler/yahtzee/internal/scoring"
	"github.com/KirkDiggler/yahtzee/internal/services/game"
	"github.com/KirkDiggler/yahtzee/internal/services/messaging"
)

// Button IDs
const (
	ButtonRollDice    = "yahtzee_roll"
	ButtonLeaderboard = "yahtzee_leaderboard"
)

// YahtzeeCommand handles the /yahtzee command
type YahtzeeCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
	logger           *zap.Logger
}

func categoryOption(required bool) *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(scoring.Categories))
	for i, c := range scoring.Categories {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{
			Name:  c.DisplayName(),
			Value: string(c),
		}
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "category",
		Description: "Scorecard box",
		Required:    required,
		Choices:     choices,
	}
}

func playerOption(required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "player",
		Description: "Player name",
		Required:    required,
	}
}

func diceOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// NewYahtzeeCommand creates a new yahtzee command handler
func NewYahtzeeCommand(gameService game.Service, messagingService messaging.Service, logger *zap.Logger) *YahtzeeCommand {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &YahtzeeCommand{
		BaseCommand: BaseCommand{
			Name:        "yahtzee",
			Description: "Yahtzee scorekeeping",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "new",
					Description: "Start a game in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "players",
							Description: "Comma separated player names, up to four",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roll",
					Description: "Roll five dice, keeping any held ones",
					Options: []*discordgo.ApplicationCommandOption{
						diceOption("held", "Dice to keep, e.g. 3 3 5", false),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "calc",
					Description: "Show what a hand scores in every box",
					Options: []*discordgo.ApplicationCommandOption{
						diceOption("dice", "Five dice, e.g. 3 3 3 2 2", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "preview",
					Description: "Show what a hand would score on a player's card",
					Options: []*discordgo.ApplicationCommandOption{
						playerOption(true),
						categoryOption(true),
						diceOption("dice", "Five dice, e.g. 3 3 3 2 2", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "score",
					Description: "Record a hand on a player's card",
					Options: []*discordgo.ApplicationCommandOption{
						playerOption(true),
						categoryOption(true),
						diceOption("dice", "Five dice, e.g. 3 3 3 2 2", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "scratch",
					Description: "Record a zero on a player's card",
					Options: []*discordgo.ApplicationCommandOption{
						playerOption(true),
						categoryOption(true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clear",
					Description: "Erase a box on a player's card",
					Options: []*discordgo.ApplicationCommandOption{
						playerOption(true),
						categoryOption(true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "card",
					Description: "Show a player's scorecard",
					Options: []*discordgo.ApplicationCommandOption{
						playerOption(false),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the standings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show recorded scores",
					Options: []*discordgo.ApplicationCommandOption{
						playerOption(false),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "abandon",
					Description: "Abandon the game in this channel",
				},
			},
		},
		gameService:      gameService,
		messagingService: messagingService,
		logger:           logger,
	}
}

// Handle processes a Discord interaction for the yahtzee command
func (c *YahtzeeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	sub := data.Options[0]
	opts := optionMap(sub.Options)

	var err error
	switch sub.Name {
	case "new":
		err = c.handleNew(ctx, s, i, opts)
	case "roll":
		err = c.handleRoll(ctx, s, i, opts)
	case "calc":
		err = c.handleCalc(ctx, s, i, opts)
	case "preview":
		err = c.handlePreview(ctx, s, i, opts)
	case "score":
		err = c.handleScore(ctx, s, i, opts)
	case "scratch":
		err = c.handleScratch(ctx, s, i, opts)
	case "clear":
		err = c.handleClear(ctx, s, i, opts)
	case "card":
		err = c.handleCard(ctx, s, i, opts)
	case "leaderboard":
		err = c.handleLeaderboard(ctx, s, i)
	case "history":
		err = c.handleHistory(ctx, s, i, opts)
	case "abandon":
		err = c.handleAbandon(ctx, s, i)
	default:
		err = errors.Newf("unknown subcommand %q", sub.Name)
	}
	return err
}

// respondError turns a service error into a friendly ephemeral reply
func (c *YahtzeeCommand) respondError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return errors.CombineErrors(err, msgErr)
	}

	if msg.ErrorType == messaging.ErrorTypeUnknown {
		c.logger.Error("yahtzee command failed",
			zap.String("channel_id", i.ChannelID),
			zap.Error(err),
		)
	} else {
		c.logger.Debug("yahtzee command rejected",
			zap.String("channel_id", i.ChannelID),
			zap.String("error_type", string(msg.ErrorType)),
			zap.Error(err),
		)
	}

	return RespondWithError(s, i, msg.Title, msg.Message)
}

// channelGameID resolves the game bound to the interaction's channel
func (c *YahtzeeCommand) channelGameID(ctx context.Context, i *discordgo.InteractionCreate) (string, error) {
	out, err := c.gameService.GetGameByChannel(ctx, &game.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return "", err
	}
	return out.Game.ID, nil
}

func parseCategory(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (scoring.Category, error) {
	return scoring.ParseCategory(stringOption(opts, "category"))
}

func (c *YahtzeeCommand) handleNew(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	players := parsePlayers(stringOption(opts, "players"))

	out, err := c.gameService.CreateGame(ctx, &game.CreateGameInput{
		PlayerNames: players,
		ChannelID:   i.ChannelID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderNewGame(out.Game), rollButton())
}

func rollButton() discordgo.Button {
	return discordgo.Button{
		Label:    "Roll Dice",
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonRollDice,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🎲",
		},
	}
}

func leaderboardButton() discordgo.Button {
	return discordgo.Button{
		Label:    "Leaderboard",
		Style:    discordgo.SecondaryButton,
		CustomID: ButtonLeaderboard,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🏆",
		},
	}
}

func (c *YahtzeeCommand) handleRoll(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	held, err := scoring.ParseDice(stringOption(opts, "held"))
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	out, err := c.gameService.RollDice(ctx, &game.RollDiceInput{Held: held})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderRoll(out.Roll), rollButton())
}

// HandleRollButton rolls a fresh hand in place of the clicked message
func (c *YahtzeeCommand) HandleRollButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.gameService.RollDice(ctx, &game.RollDiceInput{})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{renderRoll(out.Roll)},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{rollButton()}},
			},
		},
	})
}

func (c *YahtzeeCommand) handleCalc(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	dice, err := scoring.ParseDice(stringOption(opts, "dice"))
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	out, err := c.gameService.CalculateAll(ctx, &game.CalculateAllInput{Dice: dice})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderCalc(dice, out.Scores))
}

func (c *YahtzeeCommand) handlePreview(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	gameID, err := c.channelGameID(ctx, i)
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}
	category, err := parseCategory(opts)
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}
	dice, err := scoring.ParseDice(stringOption(opts, "dice"))
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	player := stringOption(opts, "player")
	out, err := c.gameService.PreviewScore(ctx, &game.PreviewScoreInput{
		GameID:     gameID,
		PlayerName: player,
		Category:   category,
		Dice:       dice,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	message := "%s would score **%d** in %s."
	if out.BonusYahtzee {
		message += " That's a bonus Yahtzee! ⭐"
	}
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf(message, player, out.Score, out.Category.DisplayName()))
}

func (c *YahtzeeCommand) handleScore(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	gameID, err := c.channelGameID(ctx, i)
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}
	category, err := parseCategory(opts)
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}
	dice, err := scoring.ParseDice(stringOption(opts, "dice"))
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	out, err := c.gameService.CommitScore(ctx, &game.CommitScoreInput{
		GameID:     gameID,
		PlayerName: stringOption(opts, "player"),
		Category:   category,
		Dice:       dice,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return c.respondCommit(ctx, s, i, out, false)
}

func (c *YahtzeeCommand) handleScratch(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	gameID, err := c.channelGameID(ctx, i)
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}
	category, err := parseCategory(opts)
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	out, err := c.gameService.ScratchScore(ctx, &game.ScratchScoreInput{
		GameID:     gameID,
		PlayerName: stringOption(opts, "player"),
		Category:   category,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return c.respondCommit(ctx, s, i, out, true)
}

// respondCommit announces a commit or scratch, adding the standings once the game ends
func (c *YahtzeeCommand) respondCommit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, out *game.CommitScoreOutput, scratched bool) error {
	eventType := models.ScoreEventCommit
	if scratched {
		eventType = models.ScoreEventScratch
	}

	msg, err := c.messagingService.GetScoreMessage(ctx, &messaging.GetScoreMessageInput{
		PlayerName:       out.Player.Name,
		EventType:        eventType,
		Category:         out.Category,
		Score:            out.Score,
		TotalScore:       out.FinalScore.TotalScore,
		BonusAwarded:     out.BonusAwarded,
		UsedAsJoker:      out.UsedAsJoker,
		UpperBonusEarned: out.UpperBonusEarned,
		GameCompleted:    out.GameCompleted,
	})
	if err != nil {
		return err
	}

	embeds := []*discordgo.MessageEmbed{renderScoreEvent(msg, out.Player)}
	if out.GameCompleted {
		board, err := c.leaderboardEmbed(ctx, out.Game.ID)
		if err != nil {
			c.logger.Warn("failed to build final standings",
				zap.String("game_id", out.Game.ID),
				zap.Error(err),
			)
		} else {
			embeds = append(embeds, board)
		}
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: embeds,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{rollButton(), leaderboardButton()}},
			},
		},
	})
}

func (c *YahtzeeCommand) handleClear(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	gameID, err := c.channelGameID(ctx, i)
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}
	category, err := parseCategory(opts)
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	out, err := c.gameService.ClearScore(ctx, &game.ClearScoreInput{
		GameID:     gameID,
		PlayerName: stringOption(opts, "player"),
		Category:   category,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	msg, err := c.messagingService.GetScoreMessage(ctx, &messaging.GetScoreMessageInput{
		PlayerName: out.Player.Name,
		EventType:  models.ScoreEventClear,
		Category:   out.Category,
		TotalScore: out.FinalScore.TotalScore,
	})
	if err != nil {
		return err
	}

	return RespondWithEmbed(s, i, renderScoreEvent(msg, out.Player))
}

func (c *YahtzeeCommand) handleCard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	out, err := c.gameService.GetGameByChannel(ctx, &game.GetGameByChannelInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	name := stringOption(opts, "player")
	if name == "" {
		name = displayName(i)
	}

	player := out.Game.FindPlayer(name)
	if player == nil {
		return c.respondError(ctx, s, i, errors.Wrapf(game.ErrPlayerNotFound, "player %q", name))
	}

	return RespondWithEmbed(s, i, renderScorecard(player))
}

// leaderboardEmbed fetches the standings and renders them with a headline
func (c *YahtzeeCommand) leaderboardEmbed(ctx context.Context, gameID string) (*discordgo.MessageEmbed, error) {
	gameOut, err := c.gameService.GetGame(ctx, &game.GetGameInput{GameID: gameID})
	if err != nil {
		return nil, err
	}

	board, err := c.gameService.GetLeaderboard(ctx, &game.GetLeaderboardInput{GameID: gameID})
	if err != nil {
		return nil, err
	}

	completed := !gameOut.Game.IsActive()
	headline, err := c.messagingService.GetLeaderboardMessage(ctx, &messaging.GetLeaderboardMessageInput{
		Entries:       board.Leaderboard.Entries,
		GameCompleted: completed,
	})
	if err != nil {
		return nil, err
	}

	return renderLeaderboard(board.Leaderboard, headline.Message, completed), nil
}

func (c *YahtzeeCommand) handleLeaderboard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	gameID, err := c.channelGameID(ctx, i)
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	embed, err := c.leaderboardEmbed(ctx, gameID)
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, embed)
}

// HandleLeaderboardButton shows the standings for the channel's game
func (c *YahtzeeCommand) HandleLeaderboardButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return c.handleLeaderboard(context.Background(), s, i)
}

func (c *YahtzeeCommand) handleHistory(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	gameID, err := c.channelGameID(ctx, i)
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	out, err := c.gameService.GetHistory(ctx, &game.GetHistoryInput{
		GameID:     gameID,
		PlayerName: stringOption(opts, "player"),
	})
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderHistory(out.Events))
}

func (c *YahtzeeCommand) handleAbandon(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	gameID, err := c.channelGameID(ctx, i)
	if err != nil {
		return c.respondError(ctx, s, i, err)
	}

	if _, err := c.gameService.AbandonGame(ctx, &game.AbandonGameInput{GameID: gameID}); err != nil {
		return c.respondError(ctx, s, i, err)
	}

	return RespondWithMessage(s, i, "Game abandoned. Start a new one with `/yahtzee new`.")
}
