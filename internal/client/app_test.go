package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-backup-keeper/internal/logger"
	"github.com/MKhiriev/go-backup-keeper/internal/mock"
	"github.com/MKhiriev/go-backup-keeper/internal/tui"
)

type fakeUI struct {
	err   error
	calls int
}

func (f *fakeUI) Run(context.Context) error {
	f.calls++
	return f.err
}

func TestNewApp_RequiresUI(t *testing.T) {
	app, err := NewApp(nil, nil, nil, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{"normal exit", nil, false},
		{"ctrl+c", tui.ErrUserQuit, false},
		{"ui failure", errors.New("terminal gone"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := mock.NewMockTransport(gomock.NewController(t))
			transport.EXPECT().Close().Return(nil)
			ui := &fakeUI{err: tt.uiErr}

			app, err := NewApp(ui, nil, transport, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())

			assert.Equal(t, 1, ui.calls)
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.uiErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
