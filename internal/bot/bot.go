// Package bot wires the Telegram front-end: the /start registration command
// and the two intake handlers (photo, non-command text). All order logic
// lives in the intake service; this layer only downloads media and renders
// replies.
package bot

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/avkuzmin/wbcashback/internal/domain"
	"github.com/avkuzmin/wbcashback/internal/service/intakeservice"
	"go.uber.org/zap"
	"gopkg.in/telebot.v3"
)

type Intake interface {
	HandlePhoto(ctx context.Context, telegramID int64, photo io.Reader) (intakeservice.Reply, error)
	HandleText(ctx context.Context, telegramID int64, text string) (intakeservice.Reply, error)
}

type Users interface {
	Register(ctx context.Context, telegramID int64, username string) (*domain.User, error)
}

type Bot struct {
	bot       *telebot.Bot
	intake    Intake
	users     Users
	webAppURL string
}

func New(token, webAppURL string, intake Intake, users Users) (*Bot, error) {
	pref := telebot.Settings{
		Token:     token,
		Poller:    &telebot.LongPoller{Timeout: 10 * time.Second},
		ParseMode: telebot.ModeHTML,
	}

	b, err := telebot.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("can't create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		intake:    intake,
		users:     users,
		webAppURL: webAppURL,
	}
	bot.registerHandlers()
	return bot, nil
}

func (b *Bot) registerHandlers() {
	b.bot.Handle("/start", b.handleStart)
	b.bot.Handle(telebot.OnText, b.handleText)
	b.bot.Handle(telebot.OnPhoto, b.handlePhoto)
}

// Start blocks on the long poller until the context is canceled.
func (b *Bot) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		b.bot.Stop()
	}()
	zap.L().Info("telegram bot started", zap.String("username", b.bot.Me.Username))
	b.bot.Start()
}

func (b *Bot) handleStart(c telebot.Context) error {
	sender := c.Sender()
	if _, err := b.users.Register(context.Background(), sender.ID, sender.Username); err != nil {
		zap.L().Error("can't register user", zap.Int64("telegram_id", sender.ID), zap.Error(err))
		return err
	}

	personalURL := fmt.Sprintf("%s?user_id=%d", b.webAppURL, sender.ID)
	menu := &telebot.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(menu.Row(menu.WebApp("📱 Открыть Магазин", &telebot.WebApp{URL: personalURL})))

	return c.Send("Добро пожаловать! Нажмите кнопку ниже.", menu)
}

func (b *Bot) handleText(c telebot.Context) error {
	text := c.Text()
	if strings.HasPrefix(text, "/") {
		return nil
	}

	reply, err := b.intake.HandleText(context.Background(), c.Sender().ID, text)
	if err != nil {
		zap.L().Error("intake text failed", zap.Int64("telegram_id", c.Sender().ID), zap.Error(err))
		return nil
	}
	return b.sendReply(c, reply)
}

func (b *Bot) handlePhoto(c telebot.Context) error {
	photo := c.Message().Photo
	if photo == nil {
		return nil
	}

	rc, err := b.bot.File(&photo.File)
	if err != nil {
		zap.L().Error("can't download photo", zap.Int64("telegram_id", c.Sender().ID), zap.Error(err))
		return nil
	}
	defer rc.Close()

	reply, err := b.intake.HandlePhoto(context.Background(), c.Sender().ID, rc)
	if err != nil {
		zap.L().Error("intake photo failed", zap.Int64("telegram_id", c.Sender().ID), zap.Error(err))
		return nil
	}
	return b.sendReply(c, reply)
}

func (b *Bot) sendReply(c telebot.Context, reply intakeservice.Reply) error {
	switch reply.Kind {
	case intakeservice.ReplyNoActiveOrder:
		return c.Send("⚠️ Нет активных заказов для загрузки фото.")
	case intakeservice.ReplyAskReceiptPhoto:
		return c.Send("📸 Скрин заказа принят! \nТеперь отправьте <b>СКРИНШОТ ЧЕКА</b>.")
	case intakeservice.ReplyAskCheckNumber:
		return c.Send("🧾 Чек получен!\n\nТеперь отправьте <b>НОМЕР ЗАКАЗА или ЧЕКА</b> (цифры) текстом.")
	case intakeservice.ReplyReceived:
		return c.Send(fmt.Sprintf("✅ Данные приняты! Заказ на товар <b>%s</b> отправлен на проверку.", reply.ProductName))
	default:
		return nil
	}
}
