package http

import (
	"context"
	"net/http"
	"time"

	"reading-stats/internal/events"
	"reading-stats/internal/streams"
	"reading-stats/internal/syncs"
)

const enqueueTimeout = 2 * time.Second

type AcceptedResponse struct {
	RequestID string `json:"requestId"`
	Reason    string `json:"reason"`
}

type reloadHandler struct {
	producer streams.RefreshProducer
}

func NewReloadHandler(producer streams.RefreshProducer) AppHttpHandler {
	return &reloadHandler{producer: producer}
}

// Handle serves POST /stats/reload: rotate then reload everything from disk.
func (h *reloadHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return enqueue(w, r, h.producer, &events.RefreshEvent{Reason: events.ReasonManual, Rotate: true})
}

type syncHandler struct {
	producer    streams.RefreshProducer
	syncService syncs.SyncService
}

// NewSyncHandler serves POST /sync. syncService is nil when sync is disabled.
func NewSyncHandler(producer streams.RefreshProducer, syncService syncs.SyncService) AppHttpHandler {
	return &syncHandler{producer: producer, syncService: syncService}
}

func (h *syncHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if h.syncService == nil {
		return errSyncDisabled()
	}
	return enqueue(w, r, h.producer, &events.RefreshEvent{Reason: events.ReasonSync, Rotate: true, Upload: true})
}

type syncStatusHandler struct {
	syncService syncs.SyncService
}

func NewSyncStatusHandler(syncService syncs.SyncService) AppHttpHandler {
	return &syncStatusHandler{syncService: syncService}
}

// Handle serves GET /sync.
func (h *syncStatusHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if h.syncService == nil {
		return errSyncDisabled()
	}
	writeJSON(w, http.StatusOK, h.syncService.Status(r.Context()))
	return nil
}

func enqueue(w http.ResponseWriter, r *http.Request, producer streams.RefreshProducer, event *events.RefreshEvent) error {
	ctx, cancel := context.WithTimeout(r.Context(), enqueueTimeout)
	defer cancel()

	if err := producer.Produce(ctx, event); err != nil {
		return errEnqueueFailed(err)
	}
	writeJSON(w, http.StatusAccepted, AcceptedResponse{RequestID: event.ID, Reason: event.Reason})
	return nil
}
