package export_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"waterdelivery/internal/adapters/out/export"
	"waterdelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewLogExportSink_RequiresLogger(t *testing.T) {
	_, err := export.NewLogExportSink(nil)
	assert.Error(t, err)
}

func Test_LogExportSink_Export(t *testing.T) {
	sink, err := export.NewLogExportSink(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	record := ports.OrderExportRecord{
		OrderID:      "5e3c7a36-7b4e-4adb-8e54-5a1b2f3c4d5e",
		UserID:       "0b1f2e3d-4c5b-6a79-8897-a6b5c4d3e2f1",
		QtyA:         2,
		QtyB:         1,
		TotalQty:     3,
		DeliveryDate: "2025-06-02",
		Status:       "cancelled",
		CreatedAt:    time.Now().UTC(),
	}
	assert.NoError(t, sink.Export(t.Context(), record))

	record.OrderID = ""
	assert.Error(t, sink.Export(t.Context(), record))
}
