package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"holocron/config"
	"holocron/internal/domain/constants"
	"holocron/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.FavoriteEvent {
	return &service.FavoriteEvent{
		EventID:    "evt-1",
		Type:       service.FavoriteEventAdded,
		RequestID:  "req-1",
		UserID:     3,
		ItemType:   "planet",
		ItemID:     7,
		OccurredAt: time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishFavoriteEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishFavoriteEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "2024-05-04T12:00:00Z", received.Message.PublishTime)
	assert.Equal(t, "3", received.Message.Attributes["user_id"])
	assert.Equal(t, "planet", received.Message.Attributes["item_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.FavoriteEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, uint(7), event.ItemID)
	assert.Equal(t, service.FavoriteEventAdded, event.Type)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishFavoriteEvent(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "502")
}

func TestNewPublisher(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "nil config", cfg: nil},
		{name: "noop", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "project ID"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(ctx, tt.cfg, logger)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(discardLogger())
	assert.NoError(t, publisher.PublishFavoriteEvent(context.Background(), sampleEvent()))
}
