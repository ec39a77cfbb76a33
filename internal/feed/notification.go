package feed

import (
	"context"

	"github.com/gabapcia/chainscope/internal/pkg/logger"
)

// NotificationKind classifies a Notification.
type NotificationKind string

// KindNetworkError is used for failures talking to a collaborator.
const KindNetworkError NotificationKind = "network_error"

// Notification is a dismissable, user-facing error report.
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}

// NotificationHandler receives every notification a session raises.
type NotificationHandler func(ctx context.Context, n Notification)

func defaultNotificationHandler(ctx context.Context, n Notification) {
	logger.Error(ctx, n.Title,
		"notification.kind", n.Kind,
		"notification.description", n.Description,
	)
}
