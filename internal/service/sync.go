package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/alert_sync_client/internal/cache"
	"github.com/shenikar/alert_sync_client/internal/config"
	"github.com/shenikar/alert_sync_client/internal/models"
	"github.com/shenikar/alert_sync_client/internal/reconcile"
	"github.com/shenikar/alert_sync_client/internal/scheduler"
	"github.com/shenikar/alert_sync_client/internal/stats"
	"github.com/sirupsen/logrus"
)

// Ресурсные ключи подписок и снимков кэша
const (
	KeyAlerts        = "alerts"
	KeyAlertsActive  = "alerts_active"
	KeyNotifications = "notifications"
	KeyProfessionals = "professionals"
	KeyDashboard     = "dashboard"
)

// BackendAPI определяет контракт читающей поверхности бэкенда
type BackendAPI interface {
	ListAlerts(ctx context.Context) ([]models.Alert, error)
	ActiveAlert(ctx context.Context) (bool, error)
	ListNotifications(ctx context.Context, userID string) ([]models.Notification, error)
	ListProfessionals(ctx context.Context) ([]models.Professional, error)
	DashboardStats(ctx context.Context) (models.DashboardRollup, error)
}

// SyncService определяет контракт ядра синхронизации для потребителей.
// Потребители только читают состояние; единственные писатели - планировщик
// (через fetch-функции) и шлюз мутаций (через Fold-методы).
type SyncService interface {
	Start()
	Stop()
	SetUser(userID string)
	ForceRefresh()
	Resume()

	Alerts() []models.Alert
	ActiveAlert() bool
	Notifications() []models.Notification
	Professionals() []models.Professional
	Stats() models.StatsSnapshot
	Rollup() models.DashboardRollup
	SyncError() error
	SessionExpired() bool

	SelectAlert(id string)
	CloseAlert()
	AlertSelection() reconcile.Selection[models.Alert]
	SelectProfessional(id string)
	CloseProfessional()
	ProfessionalSelection() reconcile.Selection[models.Professional]

	FoldAlertCreated(alert models.Alert)
	FoldAlertStatus(id, status string)
	FoldAlertMessage(id, text string)
	FoldNotificationRead(id string)
}

// syncService - явно сконструированный объект-хранилище: владеет коллекциями
// в памяти, кэшем снимков, подписками опроса и автоматами сверки выбора.
// Конструируется один раз на процесс и передается потребителям по ссылке.
type syncService struct {
	cfg    *config.Config
	api    BackendAPI
	cache  *cache.SnapshotCache
	sched  *scheduler.Scheduler
	logger *logrus.Logger

	mu            sync.RWMutex
	alerts        []models.Alert
	notifications []models.Notification
	professionals []models.Professional
	activeAlert   bool
	statsSnap     models.StatsSnapshot
	rollup        models.DashboardRollup
	userID        string
	subs          map[string]*scheduler.Subscription

	alertSel *reconcile.Reconciler[models.Alert]
	profSel  *reconcile.Reconciler[models.Professional]
}

func NewSyncService(cfg *config.Config, api BackendAPI, snapshots *cache.SnapshotCache, sched *scheduler.Scheduler, logger *logrus.Logger) SyncService {
	return &syncService{
		cfg:       cfg,
		api:       api,
		cache:     snapshots,
		sched:     sched,
		logger:    logger,
		statsSnap: stats.Compute(nil),
		subs:      make(map[string]*scheduler.Subscription),
		alertSel:  reconcile.New[models.Alert](KeyAlerts, logger),
		profSel:   reconcile.New[models.Professional](KeyProfessionals, logger),
	}
}

// Start засевает состояние из свежего кэша и запускает подписки опроса
func (s *syncService) Start() {
	log := s.logger.WithField("service", "sync")

	// Засев из кэша: свежий снимок виден потребителям до первого тика
	if entry, ok := s.cache.Read(context.Background(), KeyAlerts); ok {
		s.mu.Lock()
		s.alerts = entry.Alerts
		s.statsSnap = stats.Compute(entry.Alerts)
		s.mu.Unlock()
		log.WithField("count", len(entry.Alerts)).Info("Seeded alerts from cache")
	}
	if entry, ok := s.cache.Read(context.Background(), KeyNotifications); ok {
		s.mu.Lock()
		s.notifications = entry.Notifications
		s.mu.Unlock()
		log.WithField("count", len(entry.Notifications)).Info("Seeded notifications from cache")
	}

	s.mu.Lock()
	s.subs[KeyAlerts] = s.sched.Subscribe(KeyAlerts, s.cfg.AlertsPollInterval, s.fetchAlerts)
	s.subs[KeyAlertsActive] = s.sched.Subscribe(KeyAlertsActive, s.cfg.AlertsPollInterval, s.fetchActiveAlert)
	s.subs[KeyDashboard] = s.sched.Subscribe(KeyDashboard, s.cfg.DashboardPollInterval, s.fetchDashboard)
	if s.cfg.AdminMode {
		s.subs[KeyProfessionals] = s.sched.Subscribe(KeyProfessionals, s.cfg.ProfessionalsPollInterval, s.fetchProfessionals)
	}
	s.mu.Unlock()

	log.Info("Sync service started")
}

// Stop останавливает все подписки. Обязателен при завершении: каждая
// незакрытая подписка - утекший фоновый цикл опроса.
func (s *syncService) Stop() {
	s.mu.Lock()
	subs := make([]*scheduler.Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.subs = make(map[string]*scheduler.Subscription)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Stop()
	}
	s.logger.WithField("service", "sync").Info("Sync service stopped")
}

// SetUser сообщает ядру id пользователя: с этого момента начинается
// опрос его уведомлений
func (s *syncService) SetUser(userID string) {
	s.mu.Lock()
	if s.userID == userID {
		s.mu.Unlock()
		return
	}
	s.userID = userID
	if old, ok := s.subs[KeyNotifications]; ok {
		old.Stop()
		delete(s.subs, KeyNotifications)
	}
	if userID != "" {
		s.subs[KeyNotifications] = s.sched.Subscribe(KeyNotifications, s.cfg.NotificationsPollInterval, s.fetchNotifications)
	}
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{"service": "sync", "user_id": userID}).Info("User changed, notification polling updated")
}

// ForceRefresh инвалидирует кэш и запускает внеплановые тики всех подписок
func (s *syncService) ForceRefresh() {
	ctx := context.Background()
	s.cache.Invalidate(ctx, KeyAlerts)
	s.cache.Invalidate(ctx, KeyNotifications)

	s.mu.Lock()
	subs := make([]*scheduler.Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Refresh()
	}
}

// Resume возобновляет опрос после обновления сессионного токена хостом
func (s *syncService) Resume() {
	s.mu.Lock()
	subs := make([]*scheduler.Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Resume()
	}
}

// fetchAlerts - тик подписки на тревоги: сеть, сквозная запись кэша,
// замена коллекции, пересчет статистики, сверка выбора
func (s *syncService) fetchAlerts(ctx context.Context) error {
	alerts, err := s.api.ListAlerts(ctx)
	if err != nil {
		return fmt.Errorf("service: could not refresh alerts: %w", err)
	}
	// Результат отмененного вызова не должен трогать состояние
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.cache.Write(ctx, KeyAlerts, cache.Entry{Alerts: alerts})
	s.applyAlerts(alerts)
	return nil
}

// applyAlerts заменяет коллекцию тревог и прогоняет производный путь:
// статистика и сверка открытой карточки
func (s *syncService) applyAlerts(alerts []models.Alert) {
	s.mu.Lock()
	s.alerts = alerts
	s.statsSnap = stats.Compute(alerts)
	s.mu.Unlock()

	s.reconcileAlerts(alerts)
}

func (s *syncService) reconcileAlerts(alerts []models.Alert) {
	sel := s.alertSel.Snapshot()
	if sel.Phase != reconcile.PhaseClosed {
		for i := range alerts {
			if alerts[i].ID == sel.ID {
				// Свежая версия выбранной тревоги материализует
				// или обновляет детальный снимок
				found := alerts[i]
				if sel.Phase == reconcile.PhaseFetching {
					s.alertSel.Complete(sel.ID, &found)
				} else {
					s.alertSel.Apply(sel.ID, &found)
				}
				break
			}
		}
	}

	ids := make([]string, len(alerts))
	for i := range alerts {
		ids[i] = alerts[i].ID
	}
	s.alertSel.CollectionUpdated(ids)
}

func (s *syncService) fetchActiveAlert(ctx context.Context) error {
	active, err := s.api.ActiveAlert(ctx)
	if err != nil {
		return fmt.Errorf("service: could not refresh active alert flag: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.mu.Lock()
	s.activeAlert = active
	s.mu.Unlock()
	return nil
}

func (s *syncService) fetchNotifications(ctx context.Context) error {
	s.mu.RLock()
	userID := s.userID
	s.mu.RUnlock()
	if userID == "" {
		return nil
	}

	notifications, err := s.api.ListNotifications(ctx, userID)
	if err != nil {
		return fmt.Errorf("service: could not refresh notifications: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.cache.Write(ctx, KeyNotifications, cache.Entry{Notifications: notifications})
	s.mu.Lock()
	s.notifications = notifications
	s.mu.Unlock()
	return nil
}

func (s *syncService) fetchProfessionals(ctx context.Context) error {
	professionals, err := s.api.ListProfessionals(ctx)
	if err != nil {
		return fmt.Errorf("service: could not refresh professionals: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.mu.Lock()
	s.professionals = professionals
	s.mu.Unlock()

	sel := s.profSel.Snapshot()
	if sel.Phase != reconcile.PhaseClosed {
		for i := range professionals {
			if professionals[i].ID == sel.ID {
				found := professionals[i]
				if sel.Phase == reconcile.PhaseFetching {
					s.profSel.Complete(sel.ID, &found)
				} else {
					s.profSel.Apply(sel.ID, &found)
				}
				break
			}
		}
	}

	ids := make([]string, len(professionals))
	for i := range professionals {
		ids[i] = professionals[i].ID
	}
	s.profSel.CollectionUpdated(ids)
	return nil
}

func (s *syncService) fetchDashboard(ctx context.Context) error {
	rollup, err := s.api.DashboardStats(ctx)
	if err != nil {
		return fmt.Errorf("service: could not refresh dashboard rollup: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.mu.Lock()
	s.rollup = rollup
	s.mu.Unlock()
	return nil
}

// Alerts возвращает копию текущей коллекции тревог
func (s *syncService) Alerts() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

func (s *syncService) ActiveAlert() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeAlert
}

// Notifications возвращает копию текущей коллекции уведомлений
func (s *syncService) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// Professionals возвращает копию административного списка специалистов
func (s *syncService) Professionals() []models.Professional {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Professional, len(s.professionals))
	copy(out, s.professionals)
	return out
}

func (s *syncService) Stats() models.StatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statsSnap
}

func (s *syncService) Rollup() models.DashboardRollup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rollup
}

// SyncError возвращает всплывшую ошибку читающего пути ("не удалось
// обновить"), если она есть у какой-либо подписки
func (s *syncService) SyncError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.subs {
		if err := sub.Err(); err != nil {
			return err
		}
	}
	return nil
}

// SessionExpired сообщает, остановлен ли опрос из-за недействительной сессии
func (s *syncService) SessionExpired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.subs {
		if sub.Halted() {
			return true
		}
	}
	return false
}

// SelectAlert открывает детальную карточку тревоги. Если тревога уже есть
// в коллекции, детальный снимок материализуется сразу; иначе карточка
// остается в фазе загрузки до следующего обновления коллекции.
func (s *syncService) SelectAlert(id string) {
	s.alertSel.Select(id)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			found := s.alerts[i]
			s.alertSel.Complete(id, &found)
			return
		}
	}
}

func (s *syncService) CloseAlert() {
	s.alertSel.Close()
}

func (s *syncService) AlertSelection() reconcile.Selection[models.Alert] {
	return s.alertSel.Snapshot()
}

func (s *syncService) SelectProfessional(id string) {
	s.profSel.Select(id)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.professionals {
		if s.professionals[i].ID == id {
			found := s.professionals[i]
			s.profSel.Complete(id, &found)
			return
		}
	}
}

func (s *syncService) CloseProfessional() {
	s.profSel.Close()
}

func (s *syncService) ProfessionalSelection() reconcile.Selection[models.Professional] {
	return s.profSel.Snapshot()
}

// FoldAlertCreated вносит только что созданную тревогу в коллекцию,
// не дожидаясь следующего тика опроса
func (s *syncService) FoldAlertCreated(alert models.Alert) {
	s.mu.Lock()
	s.alerts = append([]models.Alert{alert}, s.alerts...)
	s.statsSnap = stats.Compute(s.alerts)
	s.activeAlert = true
	alerts := make([]models.Alert, len(s.alerts))
	copy(alerts, s.alerts)
	s.mu.Unlock()

	s.reconcileAlerts(alerts)
}

// FoldAlertStatus отражает смену статуса тревоги. Статусы монотонны:
// откат назад игнорируется, клиент лишь отражает наблюдаемое направление.
func (s *syncService) FoldAlertStatus(id, status string) {
	s.mu.Lock()
	var updated *models.Alert
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			if models.StatusRank(status) > models.StatusRank(s.alerts[i].Status) {
				s.alerts[i].Status = status
			}
			found := s.alerts[i]
			updated = &found
			break
		}
	}
	s.statsSnap = stats.Compute(s.alerts)
	s.mu.Unlock()

	if updated != nil {
		s.alertSel.Apply(id, updated)
	}
}

// FoldAlertMessage отражает отправленное сообщение в детальном снимке
func (s *syncService) FoldAlertMessage(id, text string) {
	s.mu.Lock()
	var updated *models.Alert
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].LastMessage = text
			found := s.alerts[i]
			updated = &found
			break
		}
	}
	s.mu.Unlock()

	if updated != nil {
		s.alertSel.Apply(id, updated)
	}
}

// FoldNotificationRead отмечает уведомление прочитанным локально,
// не дожидаясь следующего тика опроса
func (s *syncService) FoldNotificationRead(id string) {
	s.mu.Lock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			break
		}
	}
	s.mu.Unlock()
}
