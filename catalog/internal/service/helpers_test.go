package service_test

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/service"
	"github.com/Astemirdum/library-catalog/pkg/auth"
)

var (
	adminSession  = auth.Session{UserID: "u-1", Email: "owner@example.com", IsAdmin: true}
	readerSession = auth.Session{UserID: "u-2", Email: "guest@example.com"}

	now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
)

func newTestService(store *memStore, opts ...service.Option) *service.Service {
	var seq int64
	opts = append([]service.Option{
		service.WithClock(func() time.Time { return now }),
		service.WithIDGenerator(func() string {
			return fmt.Sprintf("id-%04d", atomic.AddInt64(&seq, 1))
		}),
	}, opts...)
	return service.NewService(store, zap.NewExample().Named("test"), opts...)
}

func intPtr(v int) *int { return &v }
