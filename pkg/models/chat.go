package models

import "time"

// ChatMessage is one persisted chat turn (user message + bot reply).
// Turns sharing a sessionId belong to the same conversation. Records
// are append-only: never mutated or deleted.
type ChatMessage struct {
	ID          string    `json:"id" bson:"id"`
	UserID      string    `json:"userId" bson:"userId"`
	SessionID   string    `json:"sessionId" bson:"sessionId"`
	UserMessage string    `json:"userMessage" bson:"userMessage"`
	BotResponse string    `json:"botResponse" bson:"botResponse"`
	Language    string    `json:"language" bson:"language"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}
