package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/telebot.v3"

	"timesheet-bot/internal/delivery/telegram"
)

func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot()
		},
	}
}

func runBot() error {
	log.Println("Starting timesheet bot...")
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	if err := a.cfg.RequireToken(); err != nil {
		return err
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  a.cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return err
	}

	handler := &telegram.Handler{
		Bot:       bot,
		Periods:   a.periods,
		Employees: a.employees,
		Reports:   a.reports,
		Async:     a.async,
		AdminIDs:  a.cfg.AdminChatIDs,
	}
	handler.Register()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		log.Println("Stopping bot...")
		bot.Stop()
	}()

	log.Println("Bot started")
	bot.Start()
	return nil
}
