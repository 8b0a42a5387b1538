package navigation

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testURL = "https://example.test/"

// mockNavigator records every call made by GotoWithRetry.
type mockNavigator struct {
	mock.Mock
}

func (m *mockNavigator) SetDefaultNavigationTimeout(d time.Duration) {
	m.Called(d)
}

func (m *mockNavigator) Goto(url string, until ReadyState) error {
	return m.Called(url, until).Error(0)
}

func (m *mockNavigator) WaitForTimeout(d time.Duration) {
	m.Called(d)
}

func newMockNavigator() *mockNavigator {
	m := &mockNavigator{}
	m.On("SetDefaultNavigationTimeout", mock.Anything).Return()
	m.On("WaitForTimeout", mock.Anything).Return()
	return m
}

func TestGotoWithRetry_SucceedsFirstAttempt(t *testing.T) {
	nav := newMockNavigator()
	nav.On("Goto", testURL, ReadyDOMContentLoaded).Return(nil).Once()

	err := GotoWithRetry(nav, testURL)
	require.NoError(t, err)

	nav.AssertNumberOfCalls(t, "Goto", 1)
	nav.AssertNumberOfCalls(t, "WaitForTimeout", 0)
	nav.AssertCalled(t, "SetDefaultNavigationTimeout", DefaultBaseTimeout)
}

func TestGotoWithRetry_SucceedsOnThirdAttempt(t *testing.T) {
	nav := newMockNavigator()
	errTransient := errors.New("net::ERR_CONNECTION_RESET")
	nav.On("Goto", testURL, ReadyDOMContentLoaded).Return(errTransient).Twice()
	nav.On("Goto", testURL, ReadyDOMContentLoaded).Return(nil).Once()

	err := GotoWithRetry(nav, testURL, WithAttempts(3), WithBaseTimeout(60*time.Second))
	require.NoError(t, err)

	nav.AssertNumberOfCalls(t, "Goto", 3)
	nav.AssertNumberOfCalls(t, "WaitForTimeout", 2)

	var waits []time.Duration
	var timeouts []time.Duration
	for _, c := range nav.Calls {
		switch c.Method {
		case "WaitForTimeout":
			waits = append(waits, c.Arguments.Get(0).(time.Duration))
		case "SetDefaultNavigationTimeout":
			timeouts = append(timeouts, c.Arguments.Get(0).(time.Duration))
		}
	}
	assert.Equal(t, []time.Duration{1000 * time.Millisecond, 2000 * time.Millisecond}, waits)
	assert.Equal(t, []time.Duration{60 * time.Second, 120 * time.Second, 180 * time.Second}, timeouts)
}

func TestGotoWithRetry_SingleAttemptNoBackoff(t *testing.T) {
	nav := newMockNavigator()
	errNav := errors.New("navigation timeout")
	nav.On("Goto", testURL, ReadyDOMContentLoaded).Return(errNav)

	err := GotoWithRetry(nav, testURL, WithAttempts(1))
	require.Error(t, err)

	nav.AssertNumberOfCalls(t, "Goto", 1)
	nav.AssertNumberOfCalls(t, "WaitForTimeout", 0)
}

func TestGotoWithRetry_PropagatesLastErrorUnchanged(t *testing.T) {
	nav := newMockNavigator()
	errFirst := errors.New("first failure")
	errLast := errors.New("last failure")
	nav.On("Goto", testURL, ReadyDOMContentLoaded).Return(errFirst).Once()
	nav.On("Goto", testURL, ReadyDOMContentLoaded).Return(errLast).Once()

	err := GotoWithRetry(nav, testURL, WithAttempts(2))

	// Same value, not a wrapper around it.
	assert.Same(t, errLast, err)
	nav.AssertNumberOfCalls(t, "WaitForTimeout", 1)
	nav.AssertCalled(t, "WaitForTimeout", time.Second)
}

func TestGotoWithRetry_TimeoutGrowsLinearly(t *testing.T) {
	nav := newMockNavigator()
	nav.On("Goto", testURL, ReadyDOMContentLoaded).Return(errors.New("boom"))

	err := GotoWithRetry(nav, testURL, WithAttempts(4), WithBaseTimeout(250*time.Millisecond))
	require.Error(t, err)

	nav.AssertNumberOfCalls(t, "Goto", 4)
	for i := 1; i <= 4; i++ {
		nav.AssertCalled(t, "SetDefaultNavigationTimeout", time.Duration(i)*250*time.Millisecond)
	}
	for i := 1; i <= 3; i++ {
		nav.AssertCalled(t, "WaitForTimeout", time.Duration(i)*time.Second)
	}
	nav.AssertNotCalled(t, "WaitForTimeout", 4*time.Second)
}

func TestGotoWithRetry_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		url  string
		opts []Option
	}{
		{name: "zero attempts", url: testURL, opts: []Option{WithAttempts(0)}},
		{name: "negative attempts", url: testURL, opts: []Option{WithAttempts(-2)}},
		{name: "zero base timeout", url: testURL, opts: []Option{WithBaseTimeout(0)}},
		{name: "empty url", url: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := newMockNavigator()

			err := GotoWithRetry(nav, tt.url, tt.opts...)
			assert.ErrorIs(t, err, ErrInvalidOption)
			nav.AssertNotCalled(t, "Goto", mock.Anything, mock.Anything)
		})
	}
}

func TestGotoWithRetry_NilNavigator(t *testing.T) {
	var err error
	assert.NotPanics(t, func() {
		err = GotoWithRetry(nil, testURL)
	})
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestGotoWithRetry_LogsAttempts(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	nav := newMockNavigator()
	nav.On("Goto", testURL, ReadyDOMContentLoaded).Return(errors.New("reset")).Once()
	nav.On("Goto", testURL, ReadyDOMContentLoaded).Return(nil).Once()

	require.NoError(t, GotoWithRetry(nav, testURL, WithLogger(logger)))

	out := buf.String()
	assert.Contains(t, out, "navigation attempt failed")
	assert.Contains(t, out, "attempt=1")
	assert.Contains(t, out, "navigated")
	assert.Contains(t, out, "attempt=2")
}

func TestReadyState_String(t *testing.T) {
	assert.Equal(t, "load", ReadyLoad.String())
	assert.Equal(t, "domcontentloaded", ReadyDOMContentLoaded.String())
	assert.Equal(t, "unknown", ReadyState(42).String())
}
