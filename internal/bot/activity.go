package bot

import (
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/present"
)

const (
	ActivityMessage            = "message"
	ActivityConversationUpdate = "conversationUpdate"
	ActivityInvoke             = "invoke"

	invokeSubmitAction = "message/submitAction"
	feedbackAction     = "feedback"
)

type ChannelAccount struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type ConversationAccount struct {
	ID       string `json:"id"`
	TenantID string `json:"tenantId,omitempty"`
}

// Activity is the subset of a messaging platform activity the bot reads.
type Activity struct {
	Type         string              `json:"type" description:"message, conversationUpdate or invoke"`
	ID           string              `json:"id,omitempty"`
	Name         string              `json:"name,omitempty"`
	Text         string              `json:"text,omitempty"`
	ReplyToID    string              `json:"replyToId,omitempty"`
	From         ChannelAccount      `json:"from"`
	Recipient    ChannelAccount      `json:"recipient"`
	Conversation ConversationAccount `json:"conversation"`
	MembersAdded []ChannelAccount    `json:"membersAdded,omitempty"`
	Value        map[string]any      `json:"value,omitempty"`
}

type Reply struct {
	Type        string               `json:"type"`
	Text        string               `json:"text,omitempty"`
	TextFormat  string               `json:"textFormat,omitempty"`
	Attachments []present.Attachment `json:"attachments,omitempty"`
	ReplyToID   string               `json:"replyToId,omitempty"`
}

func stringValue(values map[string]any, key string) string {
	if values == nil {
		return ""
	}
	s, _ := values[key].(string)
	return s
}
