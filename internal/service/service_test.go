package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/storefront/internal/localstore"
	"github.com/example/storefront/internal/model"
)

// fakeRemote is a scripted stand-in for the API client
type fakeRemote struct {
	err       error            // returned from every call when set
	errOn     map[string]error // "METHOD path" -> error for that call only
	responses map[string]any   // "METHOD path" -> response payload
	calls     []remoteCall
}

type remoteCall struct {
	method string
	path   string
	body   any
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{responses: map[string]any{}, errOn: map[string]error{}}
}

func (f *fakeRemote) respond(method, path string, payload any) {
	f.responses[method+" "+path] = payload
}

func (f *fakeRemote) do(method, path string, body, out any) error {
	f.calls = append(f.calls, remoteCall{method: method, path: path, body: body})
	if f.err != nil {
		return f.err
	}
	if err, ok := f.errOn[method+" "+path]; ok {
		return err
	}
	if payload, ok := f.responses[method+" "+path]; ok && out != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, out)
	}
	return nil
}

func (f *fakeRemote) Get(_ context.Context, path string, out any) error {
	return f.do("GET", path, nil, out)
}

func (f *fakeRemote) Post(_ context.Context, path string, body, out any) error {
	return f.do("POST", path, body, out)
}

func (f *fakeRemote) Put(_ context.Context, path string, body, out any) error {
	return f.do("PUT", path, body, out)
}

func (f *fakeRemote) Delete(_ context.Context, path string, out any) error {
	return f.do("DELETE", path, nil, out)
}

// stubProber reports a fixed availability and counts probes
type stubProber struct {
	available bool
	probes    int
}

func (p *stubProber) Available(_ context.Context) bool {
	p.probes++
	return p.available
}

// failSender always fails, for secondary-effect isolation tests
type failSender struct {
	calls int
}

func (s *failSender) SendOrderConfirmation(string, model.Order) error {
	s.calls++
	return errors.New("smtp down")
}

func (s *failSender) SendNewsletterWelcome(string) error {
	s.calls++
	return errors.New("smtp down")
}

func (s *failSender) SendContactAck(string, string) error {
	s.calls++
	return errors.New("smtp down")
}

// recordSender records what was sent
type recordSender struct {
	orders     []model.Order
	welcomes   []string
	contactAck []string
}

func (s *recordSender) SendOrderConfirmation(_ string, o model.Order) error {
	s.orders = append(s.orders, o)
	return nil
}

func (s *recordSender) SendNewsletterWelcome(to string) error {
	s.welcomes = append(s.welcomes, to)
	return nil
}

func (s *recordSender) SendContactAck(to, _ string) error {
	s.contactAck = append(s.contactAck, to)
	return nil
}

type fixture struct {
	remote *fakeRemote
	local  *localstore.Store
	prober *stubProber
	router *Router
}

func newFixture(t *testing.T, backendEnabled, backendUp bool) *fixture {
	t.Helper()
	local, err := localstore.New("")
	require.NoError(t, err)

	prober := &stubProber{available: backendUp}
	router := NewRouter(func() bool { return backendEnabled }, prober, nil)
	return &fixture{
		remote: newFakeRemote(),
		local:  local,
		prober: prober,
		router: router,
	}
}
