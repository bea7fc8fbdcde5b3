package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.elastic.co/apm"
	"go.elastic.co/apm/apmtest"
)

func TestTracer_BackgroundTx(t *testing.T) {
	recordingTracer := apmtest.NewRecordingTracer()
	defer recordingTracer.Close()
	tracer := tracerImpl{getApmTracer: func() *apm.Tracer {
		return recordingTracer.Tracer
	}}

	tx := tracer.BackgroundTx("setup-database")
	assert.NotNil(t, apm.TransactionFromContext(tx.Context()))
	tx.End()
	recordingTracer.Flush(nil)

	payloads := recordingTracer.Payloads()
	if assert.Len(t, payloads.Transactions, 1) {
		assert.EqualValues(t, "setup-database", payloads.Transactions[0].Name)
		assert.EqualValues(t, "setup", payloads.Transactions[0].Type)
	}
}

func TestNoopTracer(t *testing.T) {
	tx := NoopTracer{}.BackgroundTx("whatever")
	assert.NotNil(t, tx.Context())
	assert.NotPanics(t, tx.End)
}
