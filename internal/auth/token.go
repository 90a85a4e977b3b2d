package auth

import (
	"errors"
	"sync"
)

// ErrUnauthenticated возвращается, когда сессионный токен отсутствует или отозван.
// Опрос при этой ошибке останавливается, мутации не отправляются.
var ErrUnauthenticated = errors.New("unauthenticated: session token is missing or expired")

// TokenProvider определяет контракт доступа к сессионному токену
type TokenProvider interface {
	Token() (string, error)
}

// SessionTokenProvider - потокобезопасный держатель сессионного токена.
// Хост-приложение владеет логином и подменяет токен при обновлении сессии.
type SessionTokenProvider struct {
	mu    sync.RWMutex
	token string
}

func NewSessionTokenProvider(token string) *SessionTokenProvider {
	return &SessionTokenProvider{token: token}
}

// Token возвращает текущий токен или ErrUnauthenticated, если его нет
func (p *SessionTokenProvider) Token() (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.token == "" {
		return "", ErrUnauthenticated
	}
	return p.token, nil
}

// SetToken устанавливает новый сессионный токен
func (p *SessionTokenProvider) SetToken(token string) {
	p.mu.Lock()
	p.token = token
	p.mu.Unlock()
}

// Clear сбрасывает токен (завершение сессии)
func (p *SessionTokenProvider) Clear() {
	p.SetToken("")
}
