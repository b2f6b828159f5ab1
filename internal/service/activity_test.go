package service

import (
	"errors"
	"hr_console/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivity_ReportsOutcome(t *testing.T) {
	act := newTestActivity()
	ctx := operatorCtx(4)

	act.Done(ctx, "manager.create", "m@x.com", nil, "Manager created successfully")
	act.Done(ctx, "manager.delete", "manager:2", errors.New("Failed to delete manager"), "ignored")

	notices, err := act.Notices.List(ctx, 4)
	require.NoError(t, err)
	require.Len(t, notices, 2)
	assert.Equal(t, model.NoticeSuccess, notices[0].Kind)
	assert.Equal(t, "Manager created successfully", notices[0].Message)
	assert.Equal(t, model.NoticeError, notices[1].Kind)
	assert.Equal(t, "Failed to delete manager", notices[1].Message)

	require.Len(t, act.audit.entries, 2)
	assert.Equal(t, uint(4), act.audit.entries[1].OperatorID)
	assert.Equal(t, model.OutcomeFailure, act.audit.entries[1].Outcome)
	assert.Equal(t, "Failed to delete manager", act.audit.entries[1].Detail)
}

func TestNoticeService_UsesTTL(t *testing.T) {
	store := &memNotices{}
	svc := NewNoticeService(store, 3*time.Second)
	ctx := operatorCtx(1)

	require.NoError(t, svc.Push(ctx, 1, model.NoticeSuccess, "saved"))
	n := store.notices[1][0]
	assert.Equal(t, 3*time.Second, n.ExpiresAt.Sub(n.CreatedAt))

	got, err := store.List(ctx, 1, n.CreatedAt.Add(3*time.Second))
	require.NoError(t, err)
	assert.Empty(t, got)

	svc.SetTTL(0)
	assert.Equal(t, 3*time.Second, svc.TTL())
}

func TestActivity_NilIsSafe(t *testing.T) {
	var act *Activity
	assert.NotPanics(t, func() {
		act.Done(operatorCtx(1), "x", "y", nil, "ok")
	})
}
