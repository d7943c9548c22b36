package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// Bot은 텔레그램 봇 구조체입니다
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// New는 텔레그램 봇을 생성합니다. 토큰 확인을 위해 getMe를 호출합니다.
func New(token, chatID string) (*Bot, error) {
	return NewWithEndpoint(token, chatID, tgbotapi.APIEndpoint)
}

// NewWithEndpoint는 Bot API 주소 형식("<base>/bot%s/%s")을 지정해 봇을 생성합니다
func NewWithEndpoint(token, chatID, endpoint string) (*Bot, error) {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("채팅 ID 형식 오류 (%s): %w", chatID, err)
	}

	api, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("텔레그램 봇 생성 실패: %w", err)
	}

	return &Bot{api: api, chatID: id}, nil
}

// SendMessage는 텔레그램 메시지(HTML)를 전송합니다
func (b *Bot) SendMessage(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, message)
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("텔레그램 메시지 전송 실패: %w", err)
	}

	log.Println("✅ 텔레그램 메시지 전송 완료")
	return nil
}

// SendDocument는 파일을 텔레그램으로 업로드합니다
func (b *Bot) SendDocument(path, caption string) error {
	doc := tgbotapi.NewDocument(b.chatID, tgbotapi.FilePath(path))
	if caption != "" {
		doc.Caption = caption
		doc.ParseMode = tgbotapi.ModeHTML
	}

	if _, err := b.api.Send(doc); err != nil {
		return fmt.Errorf("텔레그램 파일 전송 실패: %w", err)
	}

	log.Printf("✅ 텔레그램 파일 전송 완료: %s\n", path)
	return nil
}

// SendMessageSafe는 텔레그램 메시지를 전송하고 에러를 로그로 출력합니다
func (b *Bot) SendMessageSafe(message string) {
	if err := b.SendMessage(message); err != nil {
		log.Printf("⚠️  텔레그램 메시지 전송 실패: %v\n", err)
	}
}

// SendDocumentSafe는 파일을 전송하고 에러를 로그로 출력합니다
func (b *Bot) SendDocumentSafe(path, caption string) {
	if err := b.SendDocument(path, caption); err != nil {
		log.Printf("⚠️  텔레그램 파일 전송 실패: %v\n", err)
	}
}
