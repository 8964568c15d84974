package chain

import (
	"context"
	"errors"
	"testing"

	portmocks "github.com/bnema/workout-coach-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func initWith(err error) func(context.Context, func(error)) {
	return func(_ context.Context, done func(error)) {
		done(err)
	}
}

func TestEngineUsesPrimaryWhenItInitializes(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSpeechEngine(t)
	fallback := portmocks.NewMockSpeechEngine(t)
	engine := NewEngine(primary, fallback)

	primary.EXPECT().Init(mock.Anything, mock.Anything).Run(initWith(nil)).Once()
	primary.EXPECT().Speak("Get ready", "u-1").Once()

	var initErr error
	engine.Init(context.Background(), func(err error) { initErr = err })
	require.NoError(t, initErr)
	assert.False(t, engine.UsingFallback())

	engine.Speak("Get ready", "u-1")
}

func TestEngineFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSpeechEngine(t)
	fallback := portmocks.NewMockSpeechEngine(t)
	engine := NewEngine(primary, fallback)

	primary.EXPECT().Init(mock.Anything, mock.Anything).Run(initWith(errors.New("espeak-ng missing"))).Once()
	fallback.EXPECT().Init(mock.Anything, mock.Anything).Run(initWith(nil)).Once()
	fallback.EXPECT().SetLocale(language.Korean).Return(nil).Once()
	fallback.EXPECT().Speak("Rest for 30 seconds", "u-2").Once()

	var initErr error
	engine.Init(context.Background(), func(err error) { initErr = err })
	require.NoError(t, initErr)
	assert.True(t, engine.UsingFallback())

	require.NoError(t, engine.SetLocale(language.Korean))
	engine.Speak("Rest for 30 seconds", "u-2")
}

func TestEngineReturnsCombinedErrorWhenBothFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSpeechEngine(t)
	fallback := portmocks.NewMockSpeechEngine(t)
	engine := NewEngine(primary, fallback)

	primary.EXPECT().Init(mock.Anything, mock.Anything).Run(initWith(errors.New("espeak failed"))).Once()
	fallback.EXPECT().Init(mock.Anything, mock.Anything).Run(initWith(errors.New("console failed"))).Once()

	var initErr error
	engine.Init(context.Background(), func(err error) { initErr = err })

	require.Error(t, initErr)
	assert.ErrorContains(t, initErr, "primary speech engine")
	assert.ErrorContains(t, initErr, "fallback speech engine")
	assert.ErrorContains(t, initErr, "espeak failed")
	assert.ErrorContains(t, initErr, "console failed")
}

func TestEngineSkipsFallbackWhenContextCanceled(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSpeechEngine(t)
	fallback := portmocks.NewMockSpeechEngine(t)
	engine := NewEngine(primary, fallback)

	primary.EXPECT().Init(mock.Anything, mock.Anything).Run(initWith(context.Canceled)).Once()

	var initErr error
	engine.Init(context.Background(), func(err error) { initErr = err })

	require.ErrorIs(t, initErr, context.Canceled)
	fallback.AssertNotCalled(t, "Init", mock.Anything, mock.Anything)
}

func TestEngineSetsListenerAndShutsDownBoth(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSpeechEngine(t)
	fallback := portmocks.NewMockSpeechEngine(t)
	engine := NewEngine(primary, fallback)

	primary.EXPECT().SetListener(nil).Once()
	fallback.EXPECT().SetListener(nil).Once()
	primary.EXPECT().Shutdown().Once()
	fallback.EXPECT().Shutdown().Once()

	engine.SetListener(nil)
	engine.Shutdown()
}

func TestNewEngineCheckedRejectsNil(t *testing.T) {
	t.Parallel()

	_, err := NewEngineChecked(nil, portmocks.NewMockSpeechEngine(t))
	require.ErrorIs(t, err, errNilPrimaryEngine)

	_, err = NewEngineChecked(portmocks.NewMockSpeechEngine(t), nil)
	require.ErrorIs(t, err, errNilFallbackEngine)
}
