package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/clubsite/internal/model"
)

type doneToken struct{ err error }

func (t doneToken) Wait() bool                     { return true }
func (t doneToken) WaitTimeout(time.Duration) bool { return true }
func (t doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t doneToken) Error() error { return t.err }

type published struct {
	topic   string
	payload []byte
}

type fakeClient struct {
	mu         sync.Mutex
	published  []published
	handlers   map[string]mqtt.MessageHandler
	publishErr error
}

func (f *fakeClient) Publish(topic string, _ byte, _ bool, payload interface{}) mqtt.Token {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, published{topic: topic, payload: payload.([]byte)})
	return doneToken{err: f.publishErr}
}

func (f *fakeClient) Subscribe(topic string, _ byte, cb mqtt.MessageHandler) mqtt.Token {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.handlers == nil {
		f.handlers = map[string]mqtt.MessageHandler{}
	}
	f.handlers[topic] = cb
	return doneToken{}
}

func (f *fakeClient) Disconnect(uint) {}

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 1 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 1 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

type fakePurger struct {
	prefixes []string
	err      error
}

func (p *fakePurger) Purge(_ context.Context, prefix string) (int, error) {
	p.prefixes = append(p.prefixes, prefix)
	return 1, p.err
}

func TestContentUpdatePurgesCache(t *testing.T) {
	fc := &fakeClient{}
	purger := &fakePurger{}
	n := New(fc, Topics{}, purger)
	require.NoError(t, n.Subscribe())

	handler := fc.handlers[DefaultContentTopic]
	require.NotNil(t, handler)

	handler(nil, fakeMessage{topic: DefaultContentTopic, payload: []byte(`{"resource":"/gallery"}`)})
	handler(nil, fakeMessage{topic: DefaultContentTopic})
	handler(nil, fakeMessage{topic: DefaultContentTopic, payload: []byte(`not json`)})

	assert.Equal(t, []string{"content:/gallery", "content:"}, purger.prefixes)
}

func TestPurgeErrorIsSwallowed(t *testing.T) {
	purger := &fakePurger{err: errors.New("redis down")}
	n := New(&fakeClient{}, Topics{}, purger)
	assert.NotPanics(t, func() {
		n.handleContentUpdate(nil, fakeMessage{payload: []byte(`{"resource":"/events"}`)})
	})
}

func TestEnquiryReceivedPublishes(t *testing.T) {
	fc := &fakeClient{}
	n := New(fc, Topics{Enquiry: "club/enquiries"}, &fakePurger{})

	err := n.EnquiryReceived(model.Enquiry{ID: "e-1", Kind: model.EnquiryGuest, Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	require.Len(t, fc.published, 1)
	assert.Equal(t, "club/enquiries", fc.published[0].topic)

	var ev EnquiryEvent
	require.NoError(t, json.Unmarshal(fc.published[0].payload, &ev))
	assert.Equal(t, "e-1", ev.ID)
	assert.Equal(t, model.EnquiryGuest, ev.Kind)

	fc.publishErr = errors.New("not connected")
	assert.Error(t, n.EnquiryReceived(model.Enquiry{ID: "e-2"}))
}
