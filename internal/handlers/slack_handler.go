package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/diegoclair/slack-trivia-bot/internal/domain"
	"github.com/diegoclair/slack-trivia-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/slack-trivia-bot/internal/domain/slack"
	"github.com/diegoclair/slack-trivia-bot/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	triviaService contract.TriviaService
	signingSecret string
	adminUserIDs  map[string]bool
	log           *logrus.Entry
}

func New(triviaService contract.TriviaService, signingSecret string, adminUserIDs []string) *SlackHandler {
	admins := make(map[string]bool, len(adminUserIDs))
	for _, id := range adminUserIDs {
		admins[id] = true
	}

	return &SlackHandler{
		triviaService: triviaService,
		signingSecret: signingSecret,
		adminUserIDs:  admins,
		log:           logger.WithComponent("handler"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our subcommand
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.authorized(h.handleCommand)(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

type commandFunc func(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg

// authorized gates every subcommand except help behind the admin list.
func (h *SlackHandler) authorized(next commandFunc) commandFunc {
	return func(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
		if cmd.Type == slackcmd.CmdHelp {
			return next(ctx, cmd, slashCmd)
		}

		if !h.adminUserIDs[slashCmd.UserID] {
			h.log.WithField("user", slashCmd.UserID).Warn("Unauthorized trivia command")
			return h.createErrorResponse("You are not allowed to manage the trivia bot.")
		}

		return next(ctx, cmd, slashCmd)
	}
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSetup:
		return h.handleSetup(cmd)
	case slackcmd.CmdSchedule:
		return h.handleSchedule(cmd)
	case slackcmd.CmdChannel:
		return h.handleChannel(cmd)
	case slackcmd.CmdConfig:
		return h.handleConfig()
	case slackcmd.CmdPreview:
		return h.handlePreview(ctx)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command. Use `/trivia help` to see the available commands.")
	}
}

func (h *SlackHandler) handleSetup(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/trivia setup #channel HH:MM`")
	}

	channelID, ok := slackcmd.ParseChannelMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the channel: `/trivia setup #channel HH:MM`")
	}

	schedule := cmd.Args[1]

	if err := h.triviaService.Setup(channelID, schedule); err != nil {
		return h.mapServiceError(err)
	}

	return h.ephemeral(fmt.Sprintf("✅ Trivia configured! A daily fact will be posted in <#%s> at %s.", channelID, schedule))
}

func (h *SlackHandler) handleSchedule(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) < 1 {
		return h.createErrorResponse("Use: `/trivia schedule HH:MM`")
	}

	schedule := cmd.Args[0]

	if err := h.triviaService.UpdateSchedule(schedule); err != nil {
		return h.mapServiceError(err)
	}

	return h.ephemeral(fmt.Sprintf("✅ Trivia scheduled at %s.", schedule))
}

func (h *SlackHandler) handleChannel(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) < 1 {
		return h.createErrorResponse("Use: `/trivia channel #channel`")
	}

	channelID, ok := slackcmd.ParseChannelMention(cmd.Args[0])
	if !ok {
		return h.createErrorResponse("Please mention the channel: `/trivia channel #channel`")
	}

	if err := h.triviaService.UpdateChannel(channelID); err != nil {
		return h.mapServiceError(err)
	}

	return h.ephemeral(fmt.Sprintf("✅ Trivia channel set to <#%s>.", channelID))
}

func (h *SlackHandler) handleConfig() *slack.Msg {
	config, err := h.triviaService.GetConfig()
	if err != nil {
		return h.mapServiceError(err)
	}

	text := fmt.Sprintf("*Trivia Config*\nChannel: <#%s>\nSchedule: %s", config.ChannelID, config.Schedule)
	if config.LastSentDate != "" {
		text += fmt.Sprintf("\nLast sent: %s", config.LastSentDate)
	}

	return h.ephemeral(text)
}

func (h *SlackHandler) handlePreview(ctx context.Context) *slack.Msg {
	fact, err := h.triviaService.PreviewFact(ctx)
	if err != nil {
		h.log.Errorf("Preview fetch failed: %v", err)
		return h.createErrorResponse("Could not fetch a fact right now, try again later.")
	}

	return h.ephemeral(fmt.Sprintf("💡 %s", fact))
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return h.ephemeral(slackcmd.GetHelpText())
}

func (h *SlackHandler) mapServiceError(err error) *slack.Msg {
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		return h.createErrorResponse("Trivia is not configured yet. Use `/trivia setup #channel HH:MM` first.")
	case errors.Is(err, domain.ErrAlreadyConfigured):
		return h.ephemeral("Trivia is already configured. Use `/trivia channel` and `/trivia schedule` to change it.")
	case errors.Is(err, domain.ErrInvalidSchedule):
		return h.createErrorResponse("Please enter a correct time, 00:00 to 23:59.")
	default:
		h.log.Errorf("Command failed: %v", err)
		return h.createErrorResponse("Something went wrong, please try again.")
	}
}

func (h *SlackHandler) ephemeral(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         message,
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return h.ephemeral(fmt.Sprintf("❌ %s", message))
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
