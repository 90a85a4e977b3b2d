package reconcile

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Phase - фаза открытой детальной карточки
type Phase string

const (
	// PhaseClosed - карточка закрыта, выбора нет
	PhaseClosed Phase = "closed"
	// PhaseFetching - сущность выбрана, детальный снимок еще грузится
	PhaseFetching Phase = "fetching"
	// PhaseStable - детальный снимок материализован
	PhaseStable Phase = "stable"
)

// Selection - состояние выбора: id сущности, материализованный детальный
// снимок и фаза
type Selection[T any] struct {
	ID     string `json:"id,omitempty"`
	Detail *T     `json:"detail,omitempty"`
	Phase  Phase  `json:"phase"`
}

// Reconciler сверяет открытую детальную карточку с живой коллекцией,
// которая мутирует под ней. Единственный писатель состояния выбора.
// Один и тот же автомат обслуживает тревоги и специалистов: гонка
// "список против открытой модалки" в продукте одна и та же.
type Reconciler[T any] struct {
	mu     sync.Mutex
	sel    Selection[T]
	logger *logrus.Entry
}

func New[T any](resource string, logger *logrus.Logger) *Reconciler[T] {
	return &Reconciler[T]{
		sel: Selection[T]{Phase: PhaseClosed},
		logger: logger.WithFields(logrus.Fields{
			"component": "reconcile",
			"resource":  resource,
		}),
	}
}

// Select открывает карточку: выбор переходит в фазу загрузки
func (r *Reconciler[T]) Select(id string) {
	r.mu.Lock()
	r.sel = Selection[T]{ID: id, Phase: PhaseFetching}
	r.mu.Unlock()
}

// Complete материализует детальный снимок. Игнорируется, если пользователь
// успел закрыть карточку или выбрать другую сущность.
func (r *Reconciler[T]) Complete(id string, detail *T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sel.Phase != PhaseFetching || r.sel.ID != id {
		return
	}
	r.sel.Detail = detail
	r.sel.Phase = PhaseStable
}

// Fail закрывает карточку, если загрузка детального снимка не удалась
func (r *Reconciler[T]) Fail(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sel.Phase != PhaseFetching || r.sel.ID != id {
		return
	}
	r.logger.WithField("id", id).Warn("Detail fetch failed, closing selection")
	r.sel = Selection[T]{Phase: PhaseClosed}
}

// Apply синхронно обновляет материализованный снимок после мутации,
// нацеленной на выбранную сущность: открытая карточка отражает действие
// пользователя сразу, не дожидаясь следующего тика опроса
func (r *Reconciler[T]) Apply(id string, detail *T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sel.Phase == PhaseClosed || r.sel.ID != id {
		return
	}
	r.sel.Detail = detail
	r.sel.Phase = PhaseStable
}

// CollectionUpdated решает судьбу открытой карточки после обновления
// коллекции. Автозакрытие возможно только из стабильной фазы: пока
// детальный снимок грузится, отсутствие id в коллекции не повод закрывать
// карточку - незавершенная загрузка не означает, что сущность удалена.
func (r *Reconciler[T]) CollectionUpdated(ids []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sel.Phase != PhaseStable {
		return
	}

	for _, id := range ids {
		if id == r.sel.ID {
			return
		}
	}

	r.logger.WithField("id", r.sel.ID).Info("Selected entity left the collection, closing selection")
	r.sel = Selection[T]{Phase: PhaseClosed}
}

// Close - явное закрытие пользователем, выигрывает в любом состоянии
func (r *Reconciler[T]) Close() {
	r.mu.Lock()
	r.sel = Selection[T]{Phase: PhaseClosed}
	r.mu.Unlock()
}

// Snapshot возвращает копию текущего состояния выбора
func (r *Reconciler[T]) Snapshot() Selection[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sel
}
