package models

import (
	"gorm.io/gorm"
)

// Chat message roles
const (
	ChatRoleVisitor = "visitor"
	ChatRoleBot     = "bot"
	ChatRoleAgent   = "agent"
)

// ChatConversation groups the messages of one live-chat widget session
type ChatConversation struct {
	gorm.Model
	SessionID    string        `gorm:"uniqueIndex;not null" json:"session_id"`
	VisitorName  string        `json:"visitor_name"`
	VisitorEmail string        `json:"visitor_email"`
	IsOpen       bool          `json:"is_open" gorm:"default:true"`
	Messages     []ChatMessage `json:"messages,omitempty" gorm:"foreignKey:ConversationID"`
}

// ChatMessage is a single message in a conversation
type ChatMessage struct {
	gorm.Model
	ConversationID uint   `json:"conversation_id"`
	Role           string `json:"role"`
	Body           string `json:"body"`
}
