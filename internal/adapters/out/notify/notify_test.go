package notify_test

import (
	"io"
	"log/slog"
	"testing"

	"waterdelivery/internal/adapters/out/notify"
	"waterdelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_NewLogNotificationSink_RequiresLogger(t *testing.T) {
	_, err := notify.NewLogNotificationSink(nil)
	assert.Error(t, err)
}

func Test_LogNotificationSink_Send(t *testing.T) {
	sink, err := notify.NewLogNotificationSink(discardLogger())
	require.NoError(t, err)

	assert.NoError(t, sink.Send(t.Context(), "operator:1", "order pending"))
	assert.Error(t, sink.Send(t.Context(), "", "order pending"))
	assert.Error(t, sink.Send(t.Context(), "operator:1", ""))
}

func Test_NewStaticUserDirectory_Validation(t *testing.T) {
	_, err := notify.NewStaticUserDirectory(nil)
	assert.Error(t, err)

	_, err = notify.NewStaticUserDirectory([]string{"operator:1", ""})
	assert.Error(t, err)
}

func Test_StaticUserDirectory_OperatorContacts_CopiesInput(t *testing.T) {
	source := []string{"operator:1", "operator:2"}
	directory, err := notify.NewStaticUserDirectory(source)
	require.NoError(t, err)

	source[0] = "mutated"

	contacts, err := directory.OperatorContacts(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"operator:1", "operator:2"}, contacts)
}

func Test_StaticUserDirectory_UserContact(t *testing.T) {
	directory, err := notify.NewStaticUserDirectory([]string{"operator:1"})
	require.NoError(t, err)

	userID := kernel.NewUUID()
	contact, err := directory.UserContact(t.Context(), userID)
	require.NoError(t, err)
	assert.Equal(t, "user:"+userID.String(), contact)

	_, err = directory.UserContact(t.Context(), kernel.UUID{})
	assert.Error(t, err)
}
