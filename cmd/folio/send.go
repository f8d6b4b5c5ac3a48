package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	folog "folio/internal/log"
	"folio/internal/notify"
	"folio/internal/page"
	"folio/internal/portfolio"
	"folio/internal/relay"
)

var sendForm page.Form

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit the contact form without opening the page",
	Long: `Sends one contact message through the same form controller the page
uses. Notifications are printed to stderr.

Example:
  folio send --name Ada --email ada@example.com --message "Hello"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cleanup, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		cfg, err := portfolio.Load(settings.ConfigPath)
		if err != nil {
			return err
		}
		p := page.New(cfg, headless{}, notify.NewWriterSink(os.Stderr))
		for _, f := range page.Fields {
			p.UpdateField(f, sendForm.Get(f))
		}
		err = p.Run(cmd.Context(), relay.New(settings.RelayURL))
		if errors.Is(err, page.ErrMissingField) {
			field, _ := p.Snapshot().Form.Missing()
			return fmt.Errorf("--%s: %w", field, err)
		}
		return err
	},
}

func init() {
	sendCmd.Flags().StringVar(&sendForm.Name, "name", "", "sender name")
	sendCmd.Flags().StringVar(&sendForm.Email, "email", "", "sender email")
	sendCmd.Flags().StringVar(&sendForm.Message, "message", "", "message body")
}

// headless is the page environment outside a terminal screen.
type headless struct{}

func (headless) SetTitle(title string) {
	logger := folog.WithComponent("send")
	logger.Debug().Str("title", title).Msg("page title")
}

func (headless) SetScrollLocked(bool) {}
