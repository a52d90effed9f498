package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	mocks "github.com/SergeyBogomolovv/shop-order-service/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	msgs      []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		return kafka.Message{}, context.Canceled
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func statusMessage(offset int64, value string) kafka.Message {
	return kafka.Message{Topic: "order-status", Offset: offset, Value: []byte(value)}
}

func TestKafkaHandler_HandleStatusEvent(t *testing.T) {
	orderID := uuid.New()

	testCases := []struct {
		name         string
		value        string
		mockBehavior func(applier *mocks.MockStatusApplier)
		wantErr      error
		wantAnyErr   bool
	}{
		{
			name:  "applied",
			value: `{"order_id":"` + orderID.String() + `","status":"shipped"}`,
			mockBehavior: func(applier *mocks.MockStatusApplier) {
				applier.EXPECT().ApplyFulfillmentStatus(mock.Anything, orderID, entities.StatusShipped).
					Return(entities.Order{ID: orderID, Status: entities.StatusShipped}, nil).Once()
			},
		},
		{
			name:         "broken json",
			value:        `{"order_id":`,
			mockBehavior: func(applier *mocks.MockStatusApplier) {},
			wantAnyErr:   true,
		},
		{
			name:         "unknown status",
			value:        `{"order_id":"` + orderID.String() + `","status":"lost"}`,
			mockBehavior: func(applier *mocks.MockStatusApplier) {},
			wantAnyErr:   true,
		},
		{
			name:         "malformed order id",
			value:        `{"order_id":"123","status":"shipped"}`,
			mockBehavior: func(applier *mocks.MockStatusApplier) {},
			wantAnyErr:   true,
		},
		{
			name:  "illegal transition",
			value: `{"order_id":"` + orderID.String() + `","status":"delivered"}`,
			mockBehavior: func(applier *mocks.MockStatusApplier) {
				applier.EXPECT().ApplyFulfillmentStatus(mock.Anything, orderID, entities.StatusDelivered).
					Return(entities.Order{}, entities.ErrIllegalTransition).Once()
			},
			wantErr: entities.ErrIllegalTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			applier := mocks.NewMockStatusApplier(t)
			tc.mockBehavior(applier)

			h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), &fakeReader{}, &fakeWriter{}, applier)
			err := h.handleStatusEvent(context.Background(), statusMessage(1, tc.value))

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantAnyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestKafkaHandler_Consume(t *testing.T) {
	orderID := uuid.New()
	good := statusMessage(1, `{"order_id":"`+orderID.String()+`","status":"processing"}`)
	bad := statusMessage(2, `not json`)

	applier := mocks.NewMockStatusApplier(t)
	applier.EXPECT().ApplyFulfillmentStatus(mock.Anything, orderID, entities.StatusProcessing).
		Return(entities.Order{ID: orderID, Status: entities.StatusProcessing}, nil).Once()

	reader := &fakeReader{msgs: []kafka.Message{good, bad}}
	dlq := &fakeWriter{}
	h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, applier)

	h.Consume(context.Background())

	require.Len(t, reader.committed, 2)
	require.Len(t, dlq.msgs, 1)
	assert.Equal(t, "order-status-dlq", dlq.msgs[0].Topic)
	assert.Equal(t, "not json", string(dlq.msgs[0].Value))
	require.NotEmpty(t, dlq.msgs[0].Headers)
	assert.Equal(t, "dlq_error", dlq.msgs[0].Headers[len(dlq.msgs[0].Headers)-1].Key)
}

func TestKafkaHandler_Consume_DLQFailureSkipsCommit(t *testing.T) {
	reader := &fakeReader{msgs: []kafka.Message{statusMessage(1, `{}`)}}
	dlq := &fakeWriter{err: errors.New("broker down")}
	h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, mocks.NewMockStatusApplier(t))

	h.Consume(context.Background())

	assert.Empty(t, reader.committed)
}
