package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/adrper79-dot/CallMonitor-sub008/internal/logger"
	"github.com/adrper79-dot/CallMonitor-sub008/internal/mocknet"
)

var (
	webhookAPIURL  string
	webhookEvent   string
	webhookPayload []string
)

var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Send a simulated telephony webhook event",
	Long: `Posts one event envelope to the backend's telephony webhook endpoint,
for driving dialer UI states by hand. Payload fields are given as key=value pairs.`,
	Example: `  e2e-runner webhook --event call.answered --payload call_id=c-123 --payload campaign_id=cmp-1`,
	RunE:    runWebhook,
}

func init() {
	webhookCmd.Flags().StringVar(&webhookAPIURL, "api-url", "", "backend origin (overrides API_URL)")
	webhookCmd.Flags().StringVar(&webhookEvent, "event", string(mocknet.EventCallInitiated), "event type to send")
	webhookCmd.Flags().StringArrayVar(&webhookPayload, "payload", nil, "payload field as key=value (repeatable)")
	rootCmd.AddCommand(webhookCmd)
}

func runWebhook(cmd *cobra.Command, args []string) error {
	s := loadSettings("", webhookAPIURL)

	payload := map[string]interface{}{}
	for _, kv := range webhookPayload {
		i := strings.Index(kv, "=")
		if i <= 0 {
			return fmt.Errorf("payload field %q is not key=value", kv)
		}
		payload[kv[:i]] = kv[i+1:]
	}

	schemas, err := mocknet.NewSchemaRegistry()
	if err != nil {
		return err
	}
	log := logger.NewLogrusLogger(s.LogLevel)
	sender := mocknet.NewWebhookSender(s.APIURL, schemas, log)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := sender.Send(ctx, mocknet.EventType(webhookEvent), payload); err != nil {
		return err
	}
	fmt.Printf("sent %s to %s\n", webhookEvent, s.APIURL)
	return nil
}
