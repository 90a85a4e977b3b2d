package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shenikar/alert_sync_client/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrNotFound возвращается бэкендом, когда записи по ключу нет
var ErrNotFound = errors.New("cache entry not found")

// Entry - снимок коллекции с моментом захвата (epoch-millis).
// Одна запись на ресурсный ключ.
type Entry struct {
	Alerts        []models.Alert        `json:"alerts,omitempty"`
	Notifications []models.Notification `json:"notifications,omitempty"`
	Timestamp     int64                 `json:"timestamp"`
}

// Backend определяет контракт долговременного хранилища снимков
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// SnapshotCache - TTL-кэш снимков коллекций поверх долговременного бэкенда.
// Ошибки сериализации и хранилища полностью проглатываются и трактуются
// как промах кэша: они никогда не доходят до вызывающего.
type SnapshotCache struct {
	backend Backend
	ttl     time.Duration
	logger  *logrus.Logger
	now     func() time.Time
}

func NewSnapshotCache(backend Backend, ttl time.Duration, logger *logrus.Logger) *SnapshotCache {
	return &SnapshotCache{
		backend: backend,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

// Read возвращает свежий снимок или промах. Запись старше TTL
// не считается свежей: она удаляется и трактуется как промах.
func (c *SnapshotCache) Read(ctx context.Context, key string) (Entry, bool) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "cache",
		"key":       key,
	})

	raw, err := c.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.WithError(err).Warn("Cache backend read failed, treating as miss")
		}
		return Entry{}, false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		log.WithError(err).Warn("Cache entry is corrupted, discarding")
		c.Invalidate(ctx, key)
		return Entry{}, false
	}

	age := c.now().UnixMilli() - entry.Timestamp
	if age >= c.ttl.Milliseconds() {
		log.WithField("age_ms", age).Debug("Cache entry expired, discarding")
		c.Invalidate(ctx, key)
		return Entry{}, false
	}

	return entry, true
}

// Write безусловно заменяет снимок по ключу (last-writer-wins).
// Нулевой момент захвата проставляется текущим временем.
func (c *SnapshotCache) Write(ctx context.Context, key string, entry Entry) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "cache",
		"key":       key,
	})

	if entry.Timestamp == 0 {
		entry.Timestamp = c.now().UnixMilli()
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		log.WithError(err).Warn("Failed to marshal cache entry, skipping write")
		return
	}

	if err := c.backend.Set(ctx, key, raw); err != nil {
		log.WithError(err).Warn("Cache backend write failed, skipping")
	}
}

// Invalidate удаляет снимок по ключу (принудительное обновление)
func (c *SnapshotCache) Invalidate(ctx context.Context, key string) {
	if err := c.backend.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		c.logger.WithFields(logrus.Fields{
			"component": "cache",
			"key":       key,
		}).WithError(err).Warn("Cache backend delete failed")
	}
}
