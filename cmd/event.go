package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/core/events"
	"github.com/frahmantamala/timeclock/pkg/logger"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Event bus commands",
	Long:  `Publish test events through the in-process bus and the audit handlers the server registers.`,
}

var publishEventCmd = &cobra.Command{
	Use:   "publish [event-type]",
	Short: "Publish a test event",
	Long:  `Publish a test event (punch.recorded or punch.deleted) to the event bus for debugging.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		publishTestEvent(args[0])
	},
}

var (
	eventEmployeeID int64
	eventKind       string
)

// registerAuditHandlers logs every punch change in a structured audit line.
func registerAuditHandlers(bus *events.EventBus, lg *slog.Logger) {
	audit := lg.With("component", "audit")

	bus.Subscribe(events.EventTypePunchRecorded, func(ctx context.Context, event events.Event) error {
		e, ok := event.(*events.PunchRecordedEvent)
		if !ok {
			audit.WarnContext(ctx, "unexpected payload", "event_type", event.EventType())
			return nil
		}
		audit.InfoContext(ctx, "punch recorded",
			"event_id", e.EventID(),
			"pointage_id", e.PointageID,
			"employee_id", e.EmployeeID,
			"type_pointage", e.Kind,
			"date_pointage", e.Date,
			"heure_pointage", e.Time,
			"source", e.Source)
		return nil
	})

	bus.Subscribe(events.EventTypePunchDeleted, func(ctx context.Context, event events.Event) error {
		audit.InfoContext(ctx, "punch deleted", "event_id", event.EventID(), "payload", event.Payload())
		return nil
	})
}

func publishTestEvent(eventType string) {
	lg := logger.LoggerWrapper()
	bus := events.NewEventBus(lg)
	registerAuditHandlers(bus, lg)

	now := time.Now()
	var event events.Event
	switch eventType {
	case events.EventTypePunchDeleted:
		event = events.NewPunchDeletedEvent(0, 0)
	default:
		event = events.NewPunchRecordedEvent(0, eventEmployeeID, eventKind, now.Format("2006-01-02"), now.Format("15:04:05"), "cli")
	}

	lg.Info("publishing test event", "event_type", event.EventType(), "event_id", event.EventID())

	ctx, cancel := internal.WithTimeout(context.Background(), 0)
	defer cancel()
	if err := bus.Publish(ctx, event); err != nil {
		lg.Error("failed to publish event", "error", err)
		return
	}
	if err := bus.Wait(ctx); err != nil {
		lg.Error("event handlers did not finish", "error", err)
		return
	}
	lg.Info("test event published successfully")
}

func init() {
	publishEventCmd.Flags().Int64Var(&eventEmployeeID, "employee", 1, "employee id carried by the event")
	publishEventCmd.Flags().StringVar(&eventKind, "kind", "arrivee", "punch kind carried by the event")

	eventCmd.AddCommand(publishEventCmd)

	rootCmd.AddCommand(eventCmd)
}
