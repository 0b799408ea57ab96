package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendHistoryPreservesOrder(t *testing.T) {
	job := &TrainingJob{}

	require.NoError(t, job.AppendHistory(StatusEvent{Status: JobStatusQueued, At: time.Now().UTC(), Message: "job created"}))
	require.NoError(t, job.AppendHistory(StatusEvent{Status: JobStatusRunning, At: time.Now().UTC()}))
	require.NoError(t, job.AppendHistory(StatusEvent{Status: JobStatusSucceeded, At: time.Now().UTC()}))

	events, err := job.History()
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, JobStatusQueued, events[0].Status)
	assert.Equal(t, "job created", events[0].Message)
	assert.Equal(t, JobStatusRunning, events[1].Status)
	assert.Equal(t, JobStatusSucceeded, events[2].Status)
}

func TestHistoryEmptyByDefault(t *testing.T) {
	job := &TrainingJob{}
	events, err := job.History()
	assert.NoError(t, err)
	assert.Nil(t, events)
}

func TestBillingRecordRoundTrip(t *testing.T) {
	job := &TrainingJob{}
	recordedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, job.SetBillingRecord(&BillingRecord{
		Source:     BillingSourceCard,
		AmountUsd:  10.0,
		Currency:   "usd",
		ChargeID:   "ch_1",
		RecordedAt: recordedAt,
	}))

	record, err := job.BillingRecord()
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, BillingSourceCard, record.Source)
	assert.Equal(t, 10.0, record.AmountUsd)
	assert.Equal(t, "ch_1", record.ChargeID)
	assert.True(t, record.RecordedAt.Equal(recordedAt))
}

func TestBillingRecordNilWhenUnset(t *testing.T) {
	job := &TrainingJob{}
	record, err := job.BillingRecord()
	assert.NoError(t, err)
	assert.Nil(t, record)
}
