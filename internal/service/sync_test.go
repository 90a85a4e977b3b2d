package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/alert_sync_client/internal/auth"
	"github.com/shenikar/alert_sync_client/internal/cache"
	"github.com/shenikar/alert_sync_client/internal/config"
	"github.com/shenikar/alert_sync_client/internal/models"
	"github.com/shenikar/alert_sync_client/internal/reconcile"
	"github.com/shenikar/alert_sync_client/internal/scheduler"
	"github.com/shenikar/alert_sync_client/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memBackend - хранилище снимков в памяти для тестов сервиса
type memBackend struct {
	data map[string][]byte
}

func newMemBackend() *memBackend {
	return &memBackend{data: make(map[string][]byte)}
}

func (b *memBackend) Get(_ context.Context, key string) ([]byte, error) {
	raw, ok := b.data[key]
	if !ok {
		return nil, cache.ErrNotFound
	}
	return raw, nil
}

func (b *memBackend) Set(_ context.Context, key string, value []byte) error {
	b.data[key] = value
	return nil
}

func (b *memBackend) Delete(_ context.Context, key string) error {
	delete(b.data, key)
	return nil
}

// newTestSyncService - вспомогательная функция для создания сервиса с моками.
// Интервалы опроса длинные: в тестах срабатывает только немедленный первый тик.
func newTestSyncService(t *testing.T, token string) (*syncService, *mocks.MockBackendAPI, *cache.SnapshotCache) {
	ctrl := gomock.NewController(t)
	apiMock := mocks.NewMockBackendAPI(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		AlertsPollInterval:        time.Hour,
		NotificationsPollInterval: time.Hour,
		ProfessionalsPollInterval: time.Hour,
		DashboardPollInterval:     time.Hour,
		RetryMax:                  3,
		RetryDelay:                5 * time.Millisecond,
		CacheTTL:                  5 * time.Minute,
		AdminMode:                 true,
	}

	snapshots := cache.NewSnapshotCache(newMemBackend(), cfg.CacheTTL, logger)
	sched := scheduler.New(auth.NewSessionTokenProvider(token), cfg.RetryMax, cfg.RetryDelay, logger)

	svc := NewSyncService(cfg, apiMock, snapshots, sched, logger)
	return svc.(*syncService), apiMock, snapshots
}

func TestStart_FetchesAndAppliesCollections(t *testing.T) {
	// Подготовка
	svc, apiMock, _ := newTestSyncService(t, "token")
	alerts := []models.Alert{
		{ID: "a1", Status: models.AlertStatusActive, Type: "domestic"},
		{ID: "a2", Status: models.AlertStatusProcessed},
	}

	// Ожидания
	apiMock.EXPECT().ListAlerts(gomock.Any()).Return(alerts, nil).AnyTimes()
	apiMock.EXPECT().ActiveAlert(gomock.Any()).Return(true, nil).AnyTimes()
	apiMock.EXPECT().ListProfessionals(gomock.Any()).
		Return([]models.Professional{{ID: "p1", Name: "Анна"}}, nil).AnyTimes()
	apiMock.EXPECT().DashboardStats(gomock.Any()).
		Return(models.DashboardRollup{TotalAlerts: 42}, nil).AnyTimes()

	// Действие
	svc.Start()
	defer svc.Stop()

	// Проверки
	require.Eventually(t, func() bool { return len(svc.Alerts()) == 2 }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return svc.ActiveAlert() }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return len(svc.Professionals()) == 1 }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return svc.Rollup().TotalAlerts == 42 }, time.Second, time.Millisecond)

	snap := svc.Stats()
	assert.Equal(t, 2, snap.Total)
	assert.Equal(t, 1, snap.Active)
	assert.NoError(t, svc.SyncError())
}

func TestStart_SeedsFromFreshCache(t *testing.T) {
	// Подготовка: свежий снимок в кэше, сеть недоступна
	svc, apiMock, snapshots := newTestSyncService(t, "token")
	cached := []models.Alert{{ID: "a1", Status: models.AlertStatusActive}}
	snapshots.Write(context.Background(), KeyAlerts, cache.Entry{Alerts: cached})

	networkDown := assert.AnError
	apiMock.EXPECT().ListAlerts(gomock.Any()).Return(nil, networkDown).AnyTimes()
	apiMock.EXPECT().ActiveAlert(gomock.Any()).Return(false, networkDown).AnyTimes()
	apiMock.EXPECT().ListProfessionals(gomock.Any()).Return(nil, networkDown).AnyTimes()
	apiMock.EXPECT().DashboardStats(gomock.Any()).Return(models.DashboardRollup{}, networkDown).AnyTimes()

	// Действие
	svc.Start()
	defer svc.Stop()

	// Проверки: снимок виден потребителям до первого тика, неудачные тики
	// его не затирают
	alerts := svc.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, "a1", alerts[0].ID)
	assert.Equal(t, 1, svc.Stats().Total)
}

func TestStart_RetriesExhaustedSurfaceSyncError(t *testing.T) {
	// Подготовка
	svc, apiMock, _ := newTestSyncService(t, "token")
	networkDown := assert.AnError
	apiMock.EXPECT().ListAlerts(gomock.Any()).Return(nil, networkDown).AnyTimes()
	apiMock.EXPECT().ActiveAlert(gomock.Any()).Return(false, networkDown).AnyTimes()
	apiMock.EXPECT().ListProfessionals(gomock.Any()).Return(nil, networkDown).AnyTimes()
	apiMock.EXPECT().DashboardStats(gomock.Any()).Return(models.DashboardRollup{}, networkDown).AnyTimes()

	// Действие
	svc.Start()
	defer svc.Stop()

	// Проверки: после исчерпания бюджета ретраев ошибка всплывает потребителю
	require.Eventually(t, func() bool { return svc.SyncError() != nil }, time.Second, time.Millisecond)
	assert.ErrorIs(t, svc.SyncError(), networkDown)
	assert.False(t, svc.SessionExpired())
}

func TestStart_HaltsWhenSessionMissing(t *testing.T) {
	// Подготовка: токена нет, сетевые вызовы не начинаются
	svc, _, _ := newTestSyncService(t, "")

	// Действие
	svc.Start()
	defer svc.Stop()

	// Проверки
	require.Eventually(t, func() bool { return svc.SessionExpired() }, time.Second, time.Millisecond)
	assert.ErrorIs(t, svc.SyncError(), auth.ErrUnauthenticated)
}

func TestSetUser_StartsNotificationPolling(t *testing.T) {
	// Подготовка
	svc, apiMock, _ := newTestSyncService(t, "token")
	notifications := []models.Notification{{ID: "n1", Type: "emergency"}}

	// Ожидания
	apiMock.EXPECT().ListNotifications(gomock.Any(), "u1").Return(notifications, nil).AnyTimes()

	// Действие
	svc.SetUser("u1")
	defer svc.Stop()

	// Проверки
	require.Eventually(t, func() bool { return len(svc.Notifications()) == 1 }, time.Second, time.Millisecond)
}

func TestSetUser_SameUserIsNoop(t *testing.T) {
	// Подготовка
	svc, apiMock, _ := newTestSyncService(t, "token")
	apiMock.EXPECT().ListNotifications(gomock.Any(), "u1").Return(nil, nil).AnyTimes()

	svc.SetUser("u1")
	defer svc.Stop()
	svc.mu.RLock()
	first := svc.subs[KeyNotifications]
	svc.mu.RUnlock()

	// Действие
	svc.SetUser("u1")

	// Проверки: подписка не пересоздана
	svc.mu.RLock()
	second := svc.subs[KeyNotifications]
	svc.mu.RUnlock()
	assert.Same(t, first, second)
}

func TestForceRefresh_InvalidatesCachedSnapshots(t *testing.T) {
	// Подготовка
	svc, _, snapshots := newTestSyncService(t, "token")
	ctx := context.Background()
	snapshots.Write(ctx, KeyAlerts, cache.Entry{Alerts: []models.Alert{{ID: "a1"}}})
	snapshots.Write(ctx, KeyNotifications, cache.Entry{Notifications: []models.Notification{{ID: "n1"}}})

	// Действие
	svc.ForceRefresh()

	// Проверки
	_, ok := snapshots.Read(ctx, KeyAlerts)
	assert.False(t, ok)
	_, ok = snapshots.Read(ctx, KeyNotifications)
	assert.False(t, ok)
}

func TestFetchAlerts_WritesThroughCache(t *testing.T) {
	// Подготовка
	svc, apiMock, snapshots := newTestSyncService(t, "token")
	alerts := []models.Alert{{ID: "a1", Status: models.AlertStatusActive}}
	apiMock.EXPECT().ListAlerts(gomock.Any()).Return(alerts, nil).Times(1)

	// Действие
	err := svc.fetchAlerts(context.Background())

	// Проверки
	require.NoError(t, err)
	entry, ok := snapshots.Read(context.Background(), KeyAlerts)
	require.True(t, ok)
	assert.Equal(t, "a1", entry.Alerts[0].ID)
}

func TestFetchAlerts_CanceledResultDoesNotApply(t *testing.T) {
	// Подготовка
	svc, apiMock, _ := newTestSyncService(t, "token")
	ctx, cancel := context.WithCancel(context.Background())
	apiMock.EXPECT().ListAlerts(gomock.Any()).
		DoAndReturn(func(_ context.Context) ([]models.Alert, error) {
			cancel() // Отмена приходит, пока ответ еще в пути
			return []models.Alert{{ID: "stale"}}, nil
		}).Times(1)

	// Действие
	err := svc.fetchAlerts(ctx)

	// Проверки: результат отмененного вызова не трогает состояние
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, svc.Alerts())
}

func TestFoldAlertCreated_PrependsAndActivates(t *testing.T) {
	// Подготовка
	svc, _, _ := newTestSyncService(t, "token")
	svc.applyAlerts([]models.Alert{{ID: "a1", Status: models.AlertStatusProcessed}})

	// Действие
	svc.FoldAlertCreated(models.Alert{ID: "a2", Status: models.AlertStatusActive})

	// Проверки
	alerts := svc.Alerts()
	require.Len(t, alerts, 2)
	assert.Equal(t, "a2", alerts[0].ID)
	assert.True(t, svc.ActiveAlert())
	assert.Equal(t, 2, svc.Stats().Total)
	assert.Equal(t, 1, svc.Stats().Active)
}

func TestFoldAlertStatus_Monotonic(t *testing.T) {
	// Подготовка
	svc, _, _ := newTestSyncService(t, "token")
	svc.applyAlerts([]models.Alert{{ID: "a1", Status: models.AlertStatusProcessed}})

	// Действие: откат назад игнорируется
	svc.FoldAlertStatus("a1", models.AlertStatusActive)

	// Проверки
	assert.Equal(t, models.AlertStatusProcessed, svc.Alerts()[0].Status)

	// Действие: движение вперед применяется
	svc.FoldAlertStatus("a1", models.AlertStatusClosed)

	// Проверки
	assert.Equal(t, models.AlertStatusClosed, svc.Alerts()[0].Status)
	assert.Equal(t, 1, svc.Stats().Closed)
}

func TestFoldAlertMessage_UpdatesCollectionAndSelection(t *testing.T) {
	// Подготовка: карточка тревоги открыта и стабильна
	svc, _, _ := newTestSyncService(t, "token")
	svc.applyAlerts([]models.Alert{{ID: "a1", Status: models.AlertStatusActive}})
	svc.SelectAlert("a1")
	require.Equal(t, reconcile.PhaseStable, svc.AlertSelection().Phase)

	// Действие
	svc.FoldAlertMessage("a1", "on my way")

	// Проверки: открытая карточка отражает действие сразу
	assert.Equal(t, "on my way", svc.Alerts()[0].LastMessage)
	sel := svc.AlertSelection()
	require.NotNil(t, sel.Detail)
	assert.Equal(t, "on my way", sel.Detail.LastMessage)
}

func TestFoldNotificationRead_MarksLocally(t *testing.T) {
	// Подготовка
	svc, _, _ := newTestSyncService(t, "token")
	svc.mu.Lock()
	svc.notifications = []models.Notification{{ID: "n1"}, {ID: "n2"}}
	svc.mu.Unlock()

	// Действие
	svc.FoldNotificationRead("n1")

	// Проверки
	notifications := svc.Notifications()
	assert.True(t, notifications[0].Read)
	assert.False(t, notifications[1].Read)
}

func TestSelectAlert_MaterializesFromCollection(t *testing.T) {
	// Подготовка
	svc, _, _ := newTestSyncService(t, "token")
	svc.applyAlerts([]models.Alert{{ID: "a1", Status: models.AlertStatusActive}})

	// Действие
	svc.SelectAlert("a1")

	// Проверки
	sel := svc.AlertSelection()
	assert.Equal(t, reconcile.PhaseStable, sel.Phase)
	require.NotNil(t, sel.Detail)
	assert.Equal(t, "a1", sel.Detail.ID)
}

func TestSelectAlert_UnknownWaitsForCollection(t *testing.T) {
	// Подготовка
	svc, _, _ := newTestSyncService(t, "token")

	// Действие
	svc.SelectAlert("a9")

	// Проверки: снимок еще грузится
	assert.Equal(t, reconcile.PhaseFetching, svc.AlertSelection().Phase)

	// Действие: обновление коллекции без a9 не закрывает карточку
	svc.applyAlerts([]models.Alert{{ID: "a1"}})
	assert.Equal(t, reconcile.PhaseFetching, svc.AlertSelection().Phase)

	// Действие: a9 появился в коллекции
	svc.applyAlerts([]models.Alert{{ID: "a1"}, {ID: "a9", Status: models.AlertStatusActive}})

	// Проверки
	sel := svc.AlertSelection()
	assert.Equal(t, reconcile.PhaseStable, sel.Phase)
	require.NotNil(t, sel.Detail)
	assert.Equal(t, "a9", sel.Detail.ID)
}

func TestSelectAlert_RemovedFromCollectionCloses(t *testing.T) {
	// Подготовка
	svc, _, _ := newTestSyncService(t, "token")
	svc.applyAlerts([]models.Alert{{ID: "a1", Status: models.AlertStatusActive}})
	svc.SelectAlert("a1")
	require.Equal(t, reconcile.PhaseStable, svc.AlertSelection().Phase)

	// Действие: выбранная тревога пропала из коллекции
	svc.applyAlerts([]models.Alert{{ID: "a2"}})

	// Проверки
	assert.Equal(t, reconcile.PhaseClosed, svc.AlertSelection().Phase)
}

func TestCloseAlert_ExplicitCloseWins(t *testing.T) {
	// Подготовка
	svc, _, _ := newTestSyncService(t, "token")
	svc.applyAlerts([]models.Alert{{ID: "a1", Status: models.AlertStatusActive}})
	svc.SelectAlert("a1")

	// Действие
	svc.CloseAlert()

	// Проверки
	assert.Equal(t, reconcile.PhaseClosed, svc.AlertSelection().Phase)
}

func TestSelectProfessional_MaterializesFromCollection(t *testing.T) {
	// Подготовка
	svc, _, _ := newTestSyncService(t, "token")
	svc.mu.Lock()
	svc.professionals = []models.Professional{{ID: "p1", Name: "Анна"}}
	svc.mu.Unlock()

	// Действие
	svc.SelectProfessional("p1")

	// Проверки
	sel := svc.ProfessionalSelection()
	assert.Equal(t, reconcile.PhaseStable, sel.Phase)
	require.NotNil(t, sel.Detail)
	assert.Equal(t, "Анна", sel.Detail.Name)
}
