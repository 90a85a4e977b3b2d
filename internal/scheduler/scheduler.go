package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shenikar/alert_sync_client/internal/auth"
	"github.com/sirupsen/logrus"
)

// FetchFunc выполняет один сетевой вызов подписки. Функция обязана уважать
// отмену контекста: результат отмененного вызова не должен трогать состояние.
type FetchFunc func(ctx context.Context) error

// Scheduler - фабрика подписок опроса с общими настройками ретраев
type Scheduler struct {
	tokens     auth.TokenProvider
	retryMax   int
	retryDelay time.Duration
	logger     *logrus.Logger
}

func New(tokens auth.TokenProvider, retryMax int, retryDelay time.Duration, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		tokens:     tokens,
		retryMax:   retryMax,
		retryDelay: retryDelay,
		logger:     logger,
	}
}

// Subscribe запускает опрос ресурса: немедленный первый тик, затем каждый
// интервал до Stop. Каждая подписка обязана быть остановлена при завершении
// потребителя, иначе фоновый цикл опроса течет до конца процесса.
func (s *Scheduler) Subscribe(key string, interval time.Duration, fetch FetchFunc) *Subscription {
	sub := &Subscription{
		key:        key,
		interval:   interval,
		fetch:      fetch,
		tokens:     s.tokens,
		retryMax:   s.retryMax,
		retryDelay: s.retryDelay,
		logger: s.logger.WithFields(logrus.Fields{
			"component": "scheduler",
			"resource":  key,
		}),
		refreshCh: make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	go sub.run()
	return sub
}

// Subscription - один цикл опроса ресурса. Владеет таймером, счетчиком
// ретраев и токеном отмены незавершенного вызова.
type Subscription struct {
	key        string
	interval   time.Duration
	fetch      FetchFunc
	tokens     auth.TokenProvider
	retryMax   int
	retryDelay time.Duration
	logger     *logrus.Entry

	refreshCh chan struct{}
	done      chan struct{}
	stopOnce  sync.Once

	mu             sync.Mutex
	generation     uint64
	cancelInFlight context.CancelFunc
	retryTimer     *time.Timer
	retries        int
	surfacedErr    error
	halted         bool
	stopped        bool
}

func (sub *Subscription) run() {
	ticker := time.NewTicker(sub.interval)
	defer ticker.Stop()

	// Немедленный первый тик при подписке
	sub.tick()

	for {
		select {
		case <-sub.done:
			return
		case <-ticker.C:
			sub.tick()
		case <-sub.refreshCh:
			sub.tick()
		}
	}
}

// tick выполняет один проход: проверка токена, отмена незавершенного вызова
// предыдущего тика, запуск нового вызова
func (sub *Subscription) tick() {
	sub.mu.Lock()
	if sub.stopped || sub.halted {
		sub.mu.Unlock()
		return
	}
	// Плановый тик перекрывает ожидающий ретрай
	if sub.retryTimer != nil {
		sub.retryTimer.Stop()
		sub.retryTimer = nil
	}
	sub.mu.Unlock()

	if _, err := sub.tokens.Token(); err != nil {
		sub.logger.Warn("Session token is missing or expired, polling halted")
		sub.mu.Lock()
		sub.halted = true
		sub.surfacedErr = auth.ErrUnauthenticated
		sub.mu.Unlock()
		return
	}

	sub.mu.Lock()
	// Отмена вызова, оставшегося от предыдущего тика. Правило действует
	// безусловно: без него медленный устаревший ответ мог бы затереть
	// более новый снимок.
	if sub.cancelInFlight != nil {
		sub.cancelInFlight()
	}
	ctx, cancel := context.WithCancel(context.Background())
	sub.cancelInFlight = cancel
	sub.generation++
	gen := sub.generation
	sub.mu.Unlock()

	go func() {
		err := sub.fetch(ctx)
		sub.onFetchDone(gen, ctx, cancel, err)
	}()
}

// onFetchDone применяет исход вызова. Результат, чье поколение уже не
// совпадает с текущим, отброшен: он принадлежит отмененному тику.
func (sub *Subscription) onFetchDone(gen uint64, ctx context.Context, cancel context.CancelFunc, err error) {
	cancel()

	sub.mu.Lock()
	defer sub.mu.Unlock()

	if sub.stopped || gen != sub.generation {
		return
	}
	sub.cancelInFlight = nil

	if err == nil {
		sub.retries = 0
		sub.surfacedErr = nil
		return
	}

	if errors.Is(err, context.Canceled) {
		return
	}

	if errors.Is(err, auth.ErrUnauthenticated) {
		sub.logger.Warn("Backend rejected session token, polling halted")
		sub.halted = true
		sub.surfacedErr = err
		return
	}

	sub.retries++
	if sub.retries < sub.retryMax {
		sub.logger.WithError(err).WithField("retry", sub.retries).
			Warnf("Fetch failed, retrying in %v", sub.retryDelay)
		sub.retryTimer = time.AfterFunc(sub.retryDelay, sub.tick)
		return
	}

	// Бюджет ретраев исчерпан: ошибка всплывает потребителю,
	// следующая попытка - только на плановой границе интервала
	sub.logger.WithError(err).Error("Fetch failed after retries, waiting for next interval tick")
	sub.surfacedErr = err
}

// Refresh запускает внеплановый тик (принудительное обновление)
func (sub *Subscription) Refresh() {
	select {
	case sub.refreshCh <- struct{}{}:
	default:
	}
}

// Resume возобновляет опрос после остановки по недействительной сессии
func (sub *Subscription) Resume() {
	sub.mu.Lock()
	if !sub.halted || sub.stopped {
		sub.mu.Unlock()
		return
	}
	sub.halted = false
	sub.surfacedErr = nil
	sub.retries = 0
	sub.mu.Unlock()

	sub.logger.Info("Polling resumed")
	sub.Refresh()
}

// Stop останавливает таймер и отменяет незавершенный вызов
func (sub *Subscription) Stop() {
	sub.stopOnce.Do(func() {
		sub.mu.Lock()
		sub.stopped = true
		if sub.retryTimer != nil {
			sub.retryTimer.Stop()
			sub.retryTimer = nil
		}
		if sub.cancelInFlight != nil {
			sub.cancelInFlight()
			sub.cancelInFlight = nil
		}
		sub.mu.Unlock()
		close(sub.done)
	})
}

// Err возвращает всплывшую ошибку подписки. Ошибки ретраев невидимы,
// пока бюджет не исчерпан; очищается следующим успешным тиком.
func (sub *Subscription) Err() error {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	return sub.surfacedErr
}

// Halted сообщает, остановлен ли опрос из-за недействительной сессии
func (sub *Subscription) Halted() bool {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	return sub.halted
}

// Key возвращает ресурсный ключ подписки
func (sub *Subscription) Key() string {
	return sub.key
}
