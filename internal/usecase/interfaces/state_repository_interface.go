package interfaces

import (
	"context"
	"piecework_tracker/internal/domain/entities"
)

// INotificationRepository persists operator notifications.

type INotificationRepository interface {
	LoadNotifications(ctx context.Context) ([]entities.Notification, error)
	SaveNotifications(ctx context.Context, items []entities.Notification) error
}

// ISentReportRepository persists the dates whose report already reached the
// external sink.

type ISentReportRepository interface {
	LoadSentReports(ctx context.Context) ([]string, error)
	SaveSentReports(ctx context.Context, dates []string) error
}

// IKeyValueStore is the opaque persistence port: UTF-8 JSON blobs by key.
//
// Get returns (nil, nil) for a missing key.

type IKeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
