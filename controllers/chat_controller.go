package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/omar-581/DhowLine/config"
	"github.com/omar-581/DhowLine/models"
	"github.com/omar-581/DhowLine/utils"
	"gorm.io/gorm"
)

const chatHistoryLimit = 10

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatMessageRequest represents a visitor message from the chat widget
type ChatMessageRequest struct {
	Message string `json:"message" binding:"required,max=1000"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// chatSessionID returns the widget's conversation id, minting one into the
// cookie session on first contact.
func chatSessionID(c *gin.Context) string {
	session := sessions.Default(c)
	if id, ok := session.Get("chat_session_id").(string); ok && id != "" {
		return id
	}
	id := uuid.New().String()
	session.Set("chat_session_id", id)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to persist chat session: %v", err)
	}
	return id
}

func chatSystemPrompt() string {
	settings := utils.GetSiteSettings(config.DB)

	var tours []models.Tour
	config.DB.Where("is_active = ?", true).Order("is_featured DESC, views DESC").Limit(8).Find(&tours)

	var b strings.Builder
	fmt.Fprintf(&b, "You are the booking assistant for %s, a dhow cruise company in Dubai. ", settings.SiteName)
	b.WriteString("Answer briefly and warmly. Help visitors pick a cruise, explain pricing, and point them to the booking form. ")
	fmt.Fprintf(&b, "For anything you cannot answer, refer them to %s or %s. ", settings.ContactEmail, settings.ContactPhone)
	b.WriteString("Never invent tours or prices. Current tours:\n")
	for _, tour := range tours {
		fmt.Fprintf(&b, "- %s: adults %s, children %s, duration %d minutes\n",
			tour.Name, utils.FormatAED(tour.AdultPrice), utils.FormatAED(tour.ChildPrice), tour.DurationMinutes)
	}
	return b.String()
}

// askChatModel sends the conversation to the OpenAI chat completions API
func askChatModel(history []models.ChatMessage, userMessage string) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is not set")
	}

	messages := []map[string]string{
		{"role": "system", "content": chatSystemPrompt()},
	}
	for _, msg := range history {
		role := "assistant"
		if msg.Role == models.ChatRoleVisitor {
			role = "user"
		}
		messages = append(messages, map[string]string{"role": role, "content": msg.Body})
	}
	messages = append(messages, map[string]string{"role": "user", "content": userMessage})

	requestBody, _ := json.Marshal(map[string]interface{}{
		"model":       "gpt-4o-mini",
		"messages":    messages,
		"max_tokens":  400,
		"temperature": 0.4,
	})

	req, err := http.NewRequest("POST", "https://api.openai.com/v1/chat/completions", bytes.NewBuffer(requestBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", &utils.ProviderError{Provider: "openai", Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return "", &utils.ProviderError{Provider: "openai", Message: fmt.Sprintf("status %d: %s", resp.StatusCode, string(body))}
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Choices) == 0 {
		return "", &utils.ProviderError{Provider: "openai", Message: "empty or malformed completion"}
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// PostChatMessage handles one round-trip of the public chat widget: persist
// the visitor's message, ask the model with recent history as context, and
// persist the reply.
func PostChatMessage(c *gin.Context) {
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	sessionID := chatSessionID(c)

	var conversation models.ChatConversation
	err := config.DB.Where("session_id = ?", sessionID).First(&conversation).Error
	if err != nil {
		conversation = models.ChatConversation{
			SessionID:    sessionID,
			VisitorName:  utils.SanitizeString(req.Name),
			VisitorEmail: req.Email,
			IsOpen:       true,
		}
		if err := config.DB.Create(&conversation).Error; err != nil {
			utils.LogError("Failed to create chat conversation: %v", err)
			utils.InternalServerError(c, "Failed to process message", nil)
			return
		}
	}

	var history []models.ChatMessage
	config.DB.Where("conversation_id = ?", conversation.ID).
		Order("created_at DESC").Limit(chatHistoryLimit).Find(&history)
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}

	visitorMsg := models.ChatMessage{
		ConversationID: conversation.ID,
		Role:           models.ChatRoleVisitor,
		Body:           utils.SanitizeString(req.Message),
	}
	if err := config.DB.Create(&visitorMsg).Error; err != nil {
		utils.LogError("Failed to save chat message: %v", err)
		utils.InternalServerError(c, "Failed to process message", nil)
		return
	}

	reply, err := askChatModel(history, visitorMsg.Body)
	if err != nil {
		utils.LogError("Chat completion failed for session %s: %v", sessionID, err)
		settings := utils.GetSiteSettings(config.DB)
		reply = fmt.Sprintf("Sorry, I'm having trouble right now. Please email us at %s or call %s.",
			settings.ContactEmail, settings.ContactPhone)
	}

	botMsg := models.ChatMessage{
		ConversationID: conversation.ID,
		Role:           models.ChatRoleBot,
		Body:           reply,
	}
	if err := config.DB.Create(&botMsg).Error; err != nil {
		utils.LogError("Failed to save bot reply: %v", err)
	}

	utils.Success(c, "Message processed", gin.H{
		"session_id": sessionID,
		"reply":      reply,
	})
}

// GetChatHistory returns the visitor's own conversation so the widget can
// restore it on page reload.
func GetChatHistory(c *gin.Context) {
	sessionID := chatSessionID(c)

	var conversation models.ChatConversation
	if err := config.DB.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Where("session_id = ?", sessionID).First(&conversation).Error; err != nil {
		utils.Success(c, "No conversation yet", gin.H{"session_id": sessionID, "messages": []models.ChatMessage{}})
		return
	}

	utils.Success(c, "Conversation retrieved successfully", gin.H{
		"session_id": sessionID,
		"messages":   conversation.Messages,
	})
}

// AdminListChatConversations lists chat sessions for the admin inbox
func AdminListChatConversations(c *gin.Context) {
	pagination := utils.NewPagination(c)

	tx := config.DB.Model(&models.ChatConversation{})
	if c.Query("open") == "true" {
		tx = tx.Where("is_open = ?", true)
	}

	var total int64
	tx.Count(&total)
	pagination.SetTotal(total)

	var conversations []models.ChatConversation
	if err := tx.Order("updated_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&conversations).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch conversations", nil)
		return
	}

	utils.SendPaginatedResponse(c, "Conversations retrieved successfully", conversations, pagination)
}

// AdminGetChatConversation returns one conversation with its messages
func AdminGetChatConversation(c *gin.Context) {
	var conversation models.ChatConversation
	if err := config.DB.Preload("Messages").First(&conversation, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Conversation not found")
		return
	}
	utils.Success(c, "Conversation retrieved successfully", conversation)
}

// CloseChatConversation marks a conversation as handled
func CloseChatConversation(c *gin.Context) {
	var conversation models.ChatConversation
	if err := config.DB.First(&conversation, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Conversation not found")
		return
	}

	conversation.IsOpen = false
	if err := config.DB.Save(&conversation).Error; err != nil {
		utils.InternalServerError(c, "Failed to close conversation", nil)
		return
	}

	utils.Success(c, utils.MsgUpdateSuccess, gin.H{"id": conversation.ID, "is_open": false})
}
