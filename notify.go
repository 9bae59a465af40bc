package main

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

// Telegram rejects photos above this size; larger renders go as documents.
const maxSizePhoto = 150000

// SendBoardBrief delivers the board brief to the configured chat: the KPI
// table and takeaway as text, then each chart image.
func SendBoardBrief(api *tgbotapi.BotAPI, chatID int64, tableText, brief string, graphs map[string][]byte) {
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Grinder audit\n\n```\n%s\n```\n%s", tableText, brief))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := api.Send(msg); err != nil {
		zap.S().Errorw("send brief text", "error", err)
		return
	}

	for name, graph := range graphs {
		sendGraphVisualization(api, chatID, name, graph)
	}
}

func sendGraphVisualization(api *tgbotapi.BotAPI, chatID int64, name string, graph []byte) {
	fileName := fmt.Sprintf("%s_%s.png", name, time.Now().Format("20060102-150405"))
	pngFile := tgbotapi.FileBytes{
		Name:  fileName,
		Bytes: graph,
	}

	var err error
	if len(graph) < maxSizePhoto {
		photo := tgbotapi.NewPhotoUpload(chatID, pngFile)
		photo.Caption = graphCaption(name)
		_, err = api.Send(photo)
	} else {
		doc := tgbotapi.NewDocumentUpload(chatID, pngFile)
		doc.Caption = graphCaption(name)
		_, err = api.Send(doc)
	}
	if err != nil {
		zap.S().Errorw("send graph", "graph", name, "error", err)
		errMsg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Could not send chart %s: %v", name, err))
		api.Send(errMsg)
	}
}

func graphCaption(name string) string {
	switch name {
	case "cumulative":
		return "Cumulative distribution: volume % under each particle size."
	case "density":
		return "Approximate density: Δ%/Δµm slopes between size bins, not a normalized PDF."
	case "monthly":
		return "Monthly sales totals."
	case "daily":
		return "Daily sales totals."
	default:
		return "Chart: " + name
	}
}
