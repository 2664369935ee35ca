package app

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/consultancy-desk/notifier/internal/config"
	"github.com/you-humble/consultancy-desk/platform/closer"
	"github.com/you-humble/consultancy-desk/platform/logger"
)

const startMsg = `👋 *Consultancy desk payment alerts*

This chat will now receive a message every time a client payment succeeds or fails.
Send /start again from any other chat to subscribe it too.`

type app struct {
	di *di
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initTelegramBot,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initTelegramBot(ctx context.Context) error {
	telegramBot := a.di.TelegramBot(ctx)
	tgSvc := a.di.TelegramService(ctx)

	telegramBot.RegisterHandler(
		bot.HandlerTypeMessageText,
		"/start",
		bot.MatchTypeExact,
		func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil {
				return
			}

			username := ""
			if update.Message.From != nil {
				username = update.Message.From.Username
			}
			logger.Info(ctx, "New operator chat",
				logger.String("username", username),
				logger.Int64("chat_id", update.Message.Chat.ID),
			)

			tgSvc.AddChatID(ctx, update.Message.Chat.ID)

			_, err := b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:    update.Message.Chat.ID,
				Text:      startMsg,
				ParseMode: models.ParseModeMarkdownV1,
			})
			if err != nil {
				logger.Error(ctx, "Failed to send activation message", logger.ErrorF(err))
			}
		})

	return nil
}

func (a *app) run(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx, "🤖 Telegram bot started...")
		a.di.TelegramBot(egCtx).Start(egCtx)
		return nil
	})

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 payment.resolved consumer running",
			logger.String("kafka_broker", config.C().Kafka.Brokers()[0]),
		)
		if err := a.di.PaymentResolvedConsumer(egCtx).RunPaymentResolvedConsume(egCtx); err != nil {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		gracefulShutdown()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().App.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Notifier stopped")
		return
	}
	logger.Info(ctx, "✅ Notifier stopped")
}
