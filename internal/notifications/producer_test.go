package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"baerstudio/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisherSendsNotification(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var sent Notification
		if err := json.Unmarshal(val, &sent); err != nil {
			return err
		}
		if sent.Type != TypeBookingConfirmation {
			return errors.New("unexpected notification type")
		}
		if sent.RecipientEmail != "a@x.com" {
			return errors.New("unexpected recipient")
		}
		if sent.BookingID != "booking_abc" {
			return errors.New("unexpected booking id")
		}
		return nil
	})

	publisher := NewKafkaPublisherWithProducer(producer, "studio-notifications")

	n := New(TypeBookingConfirmation, "a@x.com")
	n.BookingID = "booking_abc"
	n.Date = "2026-03-02"
	n.Time = "2:00 PM"
	n.Amount = 200

	require.NoError(t, publisher.Publish(context.Background(), n))
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisherSendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := NewKafkaPublisherWithProducer(producer, "studio-notifications")

	err := publisher.Publish(context.Background(), New(TypePaymentReceipt, "a@x.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	require.NoError(t, publisher.Close())
}

func TestNotificationPartitionKeyIsRecipient(t *testing.T) {
	n := New(TypeContactReceived, "a@x.com")
	assert.Equal(t, "a@x.com", n.PartitionKey())
}

func TestLogPublisherNeverFails(t *testing.T) {
	publisher := NewLogPublisher(logger.GetDefault())

	n := New(TypeContactReceived, "a@x.com")
	n.ContactID = "contact_abc"

	require.NoError(t, publisher.Publish(context.Background(), n))
	require.NoError(t, publisher.Close())
}
