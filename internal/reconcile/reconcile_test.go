package reconcile

import (
	"bytes"
	"testing"

	"github.com/shenikar/alert_sync_client/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReconciler(t *testing.T) *Reconciler[models.Alert] {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return New[models.Alert]("alerts", logger)
}

func TestSelect_EntersFetching(t *testing.T) {
	// Подготовка
	r := newTestReconciler(t)

	// Действие
	r.Select("a1")

	// Проверки
	sel := r.Snapshot()
	assert.Equal(t, PhaseFetching, sel.Phase)
	assert.Equal(t, "a1", sel.ID)
	assert.Nil(t, sel.Detail)
}

func TestComplete_MaterializesDetail(t *testing.T) {
	// Подготовка
	r := newTestReconciler(t)
	r.Select("a1")
	detail := &models.Alert{ID: "a1", Status: models.AlertStatusActive}

	// Действие
	r.Complete("a1", detail)

	// Проверки
	sel := r.Snapshot()
	assert.Equal(t, PhaseStable, sel.Phase)
	require.NotNil(t, sel.Detail)
	assert.Equal(t, "a1", sel.Detail.ID)
}

func TestComplete_IgnoredAfterClose(t *testing.T) {
	// Подготовка
	r := newTestReconciler(t)
	r.Select("a1")
	r.Close()

	// Действие: запоздавший детальный снимок не воскрешает карточку
	r.Complete("a1", &models.Alert{ID: "a1"})

	// Проверки
	assert.Equal(t, PhaseClosed, r.Snapshot().Phase)
}

func TestComplete_IgnoredForStaleID(t *testing.T) {
	// Подготовка: пользователь успел выбрать другую сущность
	r := newTestReconciler(t)
	r.Select("a1")
	r.Select("a2")

	// Действие
	r.Complete("a1", &models.Alert{ID: "a1"})

	// Проверки
	sel := r.Snapshot()
	assert.Equal(t, PhaseFetching, sel.Phase)
	assert.Equal(t, "a2", sel.ID)
	assert.Nil(t, sel.Detail)
}

func TestFail_ClosesFetchingSelection(t *testing.T) {
	// Подготовка
	r := newTestReconciler(t)
	r.Select("a1")

	// Действие
	r.Fail("a1")

	// Проверки
	assert.Equal(t, PhaseClosed, r.Snapshot().Phase)
}

func TestCollectionUpdated_NoAutoCloseWhileFetching(t *testing.T) {
	// Подготовка: снимок еще грузится, id в коллекции нет
	r := newTestReconciler(t)
	r.Select("a1")

	// Действие
	r.CollectionUpdated([]string{"a2", "a3"})

	// Проверки: незавершенная загрузка не означает, что сущность удалена
	sel := r.Snapshot()
	assert.Equal(t, PhaseFetching, sel.Phase)
	assert.Equal(t, "a1", sel.ID)
}

func TestCollectionUpdated_AutoClosesStableSelection(t *testing.T) {
	// Подготовка
	r := newTestReconciler(t)
	r.Select("a1")
	r.Complete("a1", &models.Alert{ID: "a1"})

	// Действие: выбранная сущность пропала из коллекции
	r.CollectionUpdated([]string{"a2", "a3"})

	// Проверки
	assert.Equal(t, PhaseClosed, r.Snapshot().Phase)
}

func TestCollectionUpdated_KeepsStableSelectionWhenPresent(t *testing.T) {
	// Подготовка
	r := newTestReconciler(t)
	r.Select("a1")
	r.Complete("a1", &models.Alert{ID: "a1"})

	// Действие
	r.CollectionUpdated([]string{"a2", "a1"})

	// Проверки
	sel := r.Snapshot()
	assert.Equal(t, PhaseStable, sel.Phase)
	assert.Equal(t, "a1", sel.ID)
}

func TestApply_UpdatesSelectedDetail(t *testing.T) {
	// Подготовка
	r := newTestReconciler(t)
	r.Select("a1")
	r.Complete("a1", &models.Alert{ID: "a1", Status: models.AlertStatusActive})

	// Действие
	r.Apply("a1", &models.Alert{ID: "a1", Status: models.AlertStatusProcessed})

	// Проверки
	sel := r.Snapshot()
	require.NotNil(t, sel.Detail)
	assert.Equal(t, models.AlertStatusProcessed, sel.Detail.Status)
}

func TestApply_IgnoredForOtherEntity(t *testing.T) {
	// Подготовка
	r := newTestReconciler(t)
	r.Select("a1")
	r.Complete("a1", &models.Alert{ID: "a1", Status: models.AlertStatusActive})

	// Действие: мутация нацелена не на выбранную сущность
	r.Apply("a2", &models.Alert{ID: "a2", Status: models.AlertStatusProcessed})

	// Проверки
	sel := r.Snapshot()
	assert.Equal(t, "a1", sel.ID)
	assert.Equal(t, models.AlertStatusActive, sel.Detail.Status)
}

func TestClose_WinsInAnyState(t *testing.T) {
	// Подготовка
	r := newTestReconciler(t)
	r.Select("a1")
	r.Complete("a1", &models.Alert{ID: "a1"})

	// Действие
	r.Close()

	// Проверки
	sel := r.Snapshot()
	assert.Equal(t, PhaseClosed, sel.Phase)
	assert.Empty(t, sel.ID)
	assert.Nil(t, sel.Detail)
}
