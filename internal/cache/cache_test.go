package cache

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/alert_sync_client/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend - бэкенд в памяти с инжекцией ошибок для тестов кэша
type fakeBackend struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	deletes []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{data: make(map[string][]byte)}
}

func (b *fakeBackend) Get(_ context.Context, key string) ([]byte, error) {
	if b.getErr != nil {
		return nil, b.getErr
	}
	raw, ok := b.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return raw, nil
}

func (b *fakeBackend) Set(_ context.Context, key string, value []byte) error {
	if b.setErr != nil {
		return b.setErr
	}
	b.data[key] = value
	return nil
}

func (b *fakeBackend) Delete(_ context.Context, key string) error {
	b.deletes = append(b.deletes, key)
	delete(b.data, key)
	return nil
}

func newTestCache(backend Backend, ttl time.Duration) *SnapshotCache {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewSnapshotCache(backend, ttl, logger)
}

func TestReadAfterWrite_FreshEntryIsHit(t *testing.T) {
	// Подготовка
	backend := newFakeBackend()
	c := newTestCache(backend, 5*time.Minute)
	ctx := context.Background()
	alerts := []models.Alert{{ID: "a1", Status: models.AlertStatusActive}}

	// Действие
	c.Write(ctx, "alerts", Entry{Alerts: alerts})
	entry, ok := c.Read(ctx, "alerts")

	// Проверки
	require.True(t, ok)
	require.Len(t, entry.Alerts, 1)
	assert.Equal(t, "a1", entry.Alerts[0].ID)
	assert.NotZero(t, entry.Timestamp)
}

func TestRead_MissingKeyIsMiss(t *testing.T) {
	// Подготовка
	c := newTestCache(newFakeBackend(), 5*time.Minute)

	// Действие
	_, ok := c.Read(context.Background(), "alerts")

	// Проверки
	assert.False(t, ok)
}

func TestRead_EntryAtTTLBoundaryIsMiss(t *testing.T) {
	// Подготовка
	backend := newFakeBackend()
	c := newTestCache(backend, 5*time.Minute)
	ctx := context.Background()

	written := time.Now()
	c.now = func() time.Time { return written }
	c.Write(ctx, "alerts", Entry{Alerts: []models.Alert{{ID: "a1"}}})

	// Действие: возраст записи ровно TTL
	c.now = func() time.Time { return written.Add(5 * time.Minute) }
	_, ok := c.Read(ctx, "alerts")

	// Проверки: запись возраста ровно TTL уже не свежая и удалена
	assert.False(t, ok)
	assert.Contains(t, backend.deletes, "alerts")
}

func TestRead_EntryJustUnderTTLIsHit(t *testing.T) {
	// Подготовка
	backend := newFakeBackend()
	c := newTestCache(backend, 5*time.Minute)
	ctx := context.Background()

	written := time.Now()
	c.now = func() time.Time { return written }
	c.Write(ctx, "alerts", Entry{Alerts: []models.Alert{{ID: "a1"}}})

	// Действие
	c.now = func() time.Time { return written.Add(5*time.Minute - time.Millisecond) }
	_, ok := c.Read(ctx, "alerts")

	// Проверки
	assert.True(t, ok)
}

func TestRead_CorruptEntryIsMissAndDiscarded(t *testing.T) {
	// Подготовка
	backend := newFakeBackend()
	backend.data["alerts"] = []byte("{not json")
	c := newTestCache(backend, 5*time.Minute)

	// Действие
	_, ok := c.Read(context.Background(), "alerts")

	// Проверки
	assert.False(t, ok)
	assert.Contains(t, backend.deletes, "alerts")
}

func TestRead_BackendErrorIsSwallowedAsMiss(t *testing.T) {
	// Подготовка
	backend := newFakeBackend()
	backend.getErr = errors.New("disk is on fire")
	c := newTestCache(backend, 5*time.Minute)

	// Действие
	_, ok := c.Read(context.Background(), "alerts")

	// Проверки: ошибка хранилища не доходит до вызывающего
	assert.False(t, ok)
}

func TestWrite_BackendErrorIsSwallowed(t *testing.T) {
	// Подготовка
	backend := newFakeBackend()
	backend.setErr = errors.New("disk is full")
	c := newTestCache(backend, 5*time.Minute)

	// Действие: паники и ошибки наружу недопустимы
	c.Write(context.Background(), "alerts", Entry{Alerts: []models.Alert{{ID: "a1"}}})

	// Проверки
	assert.Empty(t, backend.data)
}

func TestWrite_LastWriterWins(t *testing.T) {
	// Подготовка
	backend := newFakeBackend()
	c := newTestCache(backend, 5*time.Minute)
	ctx := context.Background()

	// Действие
	c.Write(ctx, "alerts", Entry{Alerts: []models.Alert{{ID: "a1"}}})
	c.Write(ctx, "alerts", Entry{Alerts: []models.Alert{{ID: "a2"}}})

	// Проверки
	entry, ok := c.Read(ctx, "alerts")
	require.True(t, ok)
	require.Len(t, entry.Alerts, 1)
	assert.Equal(t, "a2", entry.Alerts[0].ID)
}

func TestInvalidate_RemovesEntry(t *testing.T) {
	// Подготовка
	backend := newFakeBackend()
	c := newTestCache(backend, 5*time.Minute)
	ctx := context.Background()
	c.Write(ctx, "alerts", Entry{Alerts: []models.Alert{{ID: "a1"}}})

	// Действие
	c.Invalidate(ctx, "alerts")

	// Проверки
	_, ok := c.Read(ctx, "alerts")
	assert.False(t, ok)
}
