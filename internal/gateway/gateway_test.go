package gateway_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/alert_sync_client/internal/auth"
	"github.com/shenikar/alert_sync_client/internal/gateway"
	"github.com/shenikar/alert_sync_client/internal/gateway/mocks"
	"github.com/shenikar/alert_sync_client/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestGateway - вспомогательная функция для создания шлюза с моками
func newTestGateway(t *testing.T, token string) (gateway.Gateway, *mocks.MockBackendDispatcher, *mocks.MockStateFolder) {
	ctrl := gomock.NewController(t)
	apiMock := mocks.NewMockBackendDispatcher(ctrl)
	stateMock := mocks.NewMockStateFolder(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	gw := gateway.NewGateway(apiMock, stateMock, auth.NewSessionTokenProvider(token), logger)
	return gw, apiMock, stateMock
}

func TestCreateEmergency_Success(t *testing.T) {
	// Подготовка
	gw, apiMock, stateMock := newTestGateway(t, "token")
	ctx := context.Background()
	loc := &gateway.Location{Latitude: 55.75, Longitude: 37.61, Accuracy: 12}

	// Ожидания
	apiMock.EXPECT().
		CreateEmergency(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.EmergencyRequest) (string, int, error) {
			assert.NotEmpty(t, req.ClientRef)
			assert.Equal(t, loc.Latitude, req.Latitude)
			assert.Equal(t, loc.Longitude, req.Longitude)
			assert.Equal(t, "help", req.Message)
			return "a9", 4, nil
		}).Times(1)

	stateMock.EXPECT().
		FoldAlertCreated(gomock.Any()).
		Do(func(alert models.Alert) {
			assert.Equal(t, "a9", alert.ID)
			assert.Equal(t, models.AlertStatusActive, alert.Status)
			assert.Equal(t, loc.Latitude, alert.Latitude)
		}).Times(1)

	// Действие
	notified, err := gw.CreateEmergency(ctx, loc, "help")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 4, notified)
}

func TestCreateEmergency_NoLocationFailsBeforeNetwork(t *testing.T) {
	// Подготовка
	gw, apiMock, stateMock := newTestGateway(t, "token")

	// Ожидания: ни сеть, ни состояние не трогаются
	apiMock.EXPECT().CreateEmergency(gomock.Any(), gomock.Any()).Times(0)
	stateMock.EXPECT().FoldAlertCreated(gomock.Any()).Times(0)

	// Действие
	_, err := gw.CreateEmergency(context.Background(), nil, "help")

	// Проверки
	assert.ErrorIs(t, err, gateway.ErrLocationUnavailable)
}

func TestCreateEmergency_NoSessionFailsBeforeNetwork(t *testing.T) {
	// Подготовка
	gw, apiMock, stateMock := newTestGateway(t, "")

	// Ожидания
	apiMock.EXPECT().CreateEmergency(gomock.Any(), gomock.Any()).Times(0)
	stateMock.EXPECT().FoldAlertCreated(gomock.Any()).Times(0)

	// Действие
	_, err := gw.CreateEmergency(context.Background(), &gateway.Location{Latitude: 1, Longitude: 2}, "help")

	// Проверки
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}

func TestCreateEmergency_BackendErrorDoesNotFold(t *testing.T) {
	// Подготовка
	gw, apiMock, stateMock := newTestGateway(t, "token")
	backendErr := errors.New("fan-out failed")

	// Ожидания: мутация отправляется ровно один раз, без ретраев,
	// состояние при ошибке не трогается
	apiMock.EXPECT().
		CreateEmergency(gomock.Any(), gomock.Any()).
		Return("", 0, backendErr).
		Times(1)
	stateMock.EXPECT().FoldAlertCreated(gomock.Any()).Times(0)

	// Действие
	_, err := gw.CreateEmergency(context.Background(), &gateway.Location{Latitude: 1, Longitude: 2}, "help")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, backendErr)
	assert.ErrorContains(t, err, "could not create emergency alert")
}

func TestMarkProcessed_Success(t *testing.T) {
	// Подготовка
	gw, apiMock, stateMock := newTestGateway(t, "token")
	ctx := context.Background()

	// Ожидания
	apiMock.EXPECT().ProcessAlert(ctx, "a1").Return(nil).Times(1)
	stateMock.EXPECT().FoldAlertStatus("a1", models.AlertStatusProcessed).Times(1)

	// Действие
	err := gw.MarkProcessed(ctx, "a1")

	// Проверки
	require.NoError(t, err)
}

func TestMarkProcessed_BackendErrorDoesNotFold(t *testing.T) {
	// Подготовка
	gw, apiMock, stateMock := newTestGateway(t, "token")
	backendErr := errors.New("alert not found")

	// Ожидания
	apiMock.EXPECT().ProcessAlert(gomock.Any(), "a1").Return(backendErr).Times(1)
	stateMock.EXPECT().FoldAlertStatus(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := gw.MarkProcessed(context.Background(), "a1")

	// Проверки
	assert.ErrorIs(t, err, backendErr)
}

func TestSendMessage_Success(t *testing.T) {
	// Подготовка
	gw, apiMock, stateMock := newTestGateway(t, "token")
	ctx := context.Background()

	// Ожидания
	apiMock.EXPECT().SendAlertMessage(ctx, "a1", "on my way").Return(nil).Times(1)
	stateMock.EXPECT().FoldAlertMessage("a1", "on my way").Times(1)

	// Действие
	err := gw.SendMessage(ctx, "a1", "on my way")

	// Проверки
	require.NoError(t, err)
}

func TestMarkRead_Success(t *testing.T) {
	// Подготовка
	gw, apiMock, stateMock := newTestGateway(t, "token")
	ctx := context.Background()

	// Ожидания
	apiMock.EXPECT().MarkNotificationRead(ctx, "n1").Return(nil).Times(1)
	stateMock.EXPECT().FoldNotificationRead("n1").Times(1)

	// Действие
	err := gw.MarkRead(ctx, "n1")

	// Проверки
	require.NoError(t, err)
}

func TestMarkRead_NoSessionFailsBeforeNetwork(t *testing.T) {
	// Подготовка
	gw, apiMock, stateMock := newTestGateway(t, "")

	// Ожидания
	apiMock.EXPECT().MarkNotificationRead(gomock.Any(), gomock.Any()).Times(0)
	stateMock.EXPECT().FoldNotificationRead(gomock.Any()).Times(0)

	// Действие
	err := gw.MarkRead(context.Background(), "n1")

	// Проверки
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}
