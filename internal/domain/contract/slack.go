package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetConversationInfo resolves a channel by ID, used to verify the
	// configured destination still exists before sending
	GetConversationInfo(input *slack.GetConversationInfoInput) (*slack.Channel, error)

	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
