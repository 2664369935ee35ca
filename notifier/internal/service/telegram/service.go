package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	converter "github.com/you-humble/consultancy-desk/notifier/internal/converter/telegram"
	"github.com/you-humble/consultancy-desk/notifier/internal/model"
	"github.com/you-humble/consultancy-desk/platform/logger"
)

// seenLimit bounds how many event ids are remembered for redelivery checks.
const seenLimit = 1024

type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type service struct {
	client MessageSender

	mu    sync.RWMutex
	chats map[int64]struct{}

	seenMu sync.Mutex
	// seen holds, per event, the chats that already received it.
	seen  map[uuid.UUID]map[int64]struct{}
	order []uuid.UUID
}

func NewTgService(client MessageSender) *service {
	return &service{
		client: client,
		chats:  map[int64]struct{}{},
		seen:   map[uuid.UUID]map[int64]struct{}{},
	}
}

// NotifyPaymentResolved sends the event to every subscribed chat.
// On redelivery only the chats that have not received it yet are sent to.
func (svc *service) NotifyPaymentResolved(ctx context.Context, event model.PaymentResolved) error {
	chats := svc.chatIDs()
	if len(chats) == 0 {
		logger.Warn(ctx, "no telegram chats subscribed",
			logger.String("form_id", event.FormID.String()),
		)
		return nil
	}

	pending := make([]int64, 0, len(chats))
	for _, chatID := range chats {
		if !svc.delivered(event.EventID, chatID) {
			pending = append(pending, chatID)
		}
	}
	if len(pending) == 0 {
		logger.Info(ctx, "duplicate payment resolved event skipped",
			logger.String("event_id", event.EventID.String()),
		)
		return nil
	}

	msg, err := converter.BuildPaymentResolved(event)
	if err != nil {
		return err
	}

	var errs []error
	for _, chatID := range pending {
		if err := svc.client.SendMessage(ctx, chatID, msg); err != nil {
			errs = append(errs, err)
			continue
		}
		svc.markDelivered(event.EventID, chatID)
	}

	return errors.Join(errs...)
}

func (svc *service) AddChatID(_ context.Context, chatID int64) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.chats[chatID] = struct{}{}
}

func (svc *service) chatIDs() []int64 {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	ids := make([]int64, 0, len(svc.chats))
	for id := range svc.chats {
		ids = append(ids, id)
	}
	return ids
}

func (svc *service) delivered(id uuid.UUID, chatID int64) bool {
	svc.seenMu.Lock()
	defer svc.seenMu.Unlock()
	_, ok := svc.seen[id][chatID]
	return ok
}

func (svc *service) markDelivered(id uuid.UUID, chatID int64) {
	svc.seenMu.Lock()
	defer svc.seenMu.Unlock()

	if chats, ok := svc.seen[id]; ok {
		chats[chatID] = struct{}{}
		return
	}
	svc.seen[id] = map[int64]struct{}{chatID: {}}
	svc.order = append(svc.order, id)

	if len(svc.order) > seenLimit {
		delete(svc.seen, svc.order[0])
		svc.order = svc.order[1:]
	}
}
