package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSetup    CommandType = "setup"
	CmdSchedule CommandType = "schedule"
	CmdChannel  CommandType = "channel"
	CmdConfig   CommandType = "config"
	CmdPreview  CommandType = "preview"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "setup":
		cmd.Type = CmdSetup
		cmd.Args = parts[1:]
	case "schedule":
		cmd.Type = CmdSchedule
		cmd.Args = parts[1:]
	case "channel":
		cmd.Type = CmdChannel
		cmd.Args = parts[1:]
	case "config":
		cmd.Type = CmdConfig
	case "preview":
		cmd.Type = CmdPreview
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// ParseChannelMention extracts the channel ID from a Slack channel mention
// like <#C0123456789|general>. A bare channel ID is accepted as well.
func ParseChannelMention(arg string) (string, bool) {
	arg = strings.TrimSpace(arg)

	if strings.HasPrefix(arg, "<#") && strings.HasSuffix(arg, ">") {
		inner := strings.TrimSuffix(strings.TrimPrefix(arg, "<#"), ">")
		if idx := strings.Index(inner, "|"); idx >= 0 {
			inner = inner[:idx]
		}
		if inner == "" {
			return "", false
		}
		return inner, true
	}

	if strings.HasPrefix(arg, "C") && len(arg) > 1 && !strings.ContainsAny(arg, "<>|") {
		return arg, true
	}

	return "", false
}

func GetHelpText() string {
	return `*Available Commands:*

*Setup:*
• ` + "`/trivia setup #channel HH:MM`" + ` - Configure the trivia channel and daily time (ex: 09:30)

*Configuration:*
• ` + "`/trivia schedule HH:MM`" + ` - Change the daily time
• ` + "`/trivia channel #channel`" + ` - Change the destination channel
• ` + "`/trivia config`" + ` - Show current settings

*Other:*
• ` + "`/trivia preview`" + ` - Fetch a fact now, visible only to you
• ` + "`/trivia help`" + ` - Show this message`
}
