package sessionservice

import (
	"context"
	"sync"

	"github.com/ringside-club/ringside/app/modules/gateway"
	sessiondomain "github.com/ringside-club/ringside/app/modules/session/domain"
)

// ------------------------
// Fake Auth API
// ------------------------

type FakeAuthAPI struct {
	mu    sync.Mutex
	trace []string

	LoginFunc func(ctx context.Context, username, password string) (*gateway.LoginResult, error)
	MeFunc    func(ctx context.Context) (*sessiondomain.Identity, error)
}

func NewFakeAuthAPI() *FakeAuthAPI {
	return &FakeAuthAPI{trace: []string{}}
}

func (f *FakeAuthAPI) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeAuthAPI) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.trace...)
}

func (f *FakeAuthAPI) Login(ctx context.Context, username, password string) (*gateway.LoginResult, error) {
	f.record("Login")
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, username, password)
	}
	return nil, gateway.ErrUnauthorized
}

func (f *FakeAuthAPI) Me(ctx context.Context) (*sessiondomain.Identity, error) {
	f.record("Me")
	if f.MeFunc != nil {
		return f.MeFunc(ctx)
	}
	return nil, gateway.ErrUnauthorized
}
