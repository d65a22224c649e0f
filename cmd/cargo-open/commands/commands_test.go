package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargo-open/cmd/cargo-open/commands"
	"go.trai.ch/cargo-open/internal/app"
	"go.trai.ch/cargo-open/internal/build"
)

type mockApp struct {
	openFunc func(ctx context.Context, opts app.OpenOptions) error
	infoFunc func(ctx context.Context, opts app.LocateOptions, w io.Writer, format app.Format) error
}

func (m *mockApp) Open(ctx context.Context, opts app.OpenOptions) error {
	if m.openFunc != nil {
		return m.openFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Info(ctx context.Context, opts app.LocateOptions, w io.Writer, format app.Format) error {
	if m.infoFunc != nil {
		return m.infoFunc(ctx, opts, w, format)
	}
	return nil
}

func TestCommands_Open(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.OpenOptions
		called := false

		mock := &mockApp{
			openFunc: func(_ context.Context, opts app.OpenOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"open", "serde@1", "--root", "/work", "--print", "--no-verify"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, app.OpenOptions{
			LocateOptions: app.LocateOptions{Root: "/work", Spec: "serde@1", Verify: false},
			PrintOnly:     true,
		}, captured)
	})

	t.Run("verifies by default", func(t *testing.T) {
		var captured app.OpenOptions
		mock := &mockApp{
			openFunc: func(_ context.Context, opts app.OpenOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"open", "-r", "/work", "serde"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, captured.Verify)
		assert.False(t, captured.PrintOnly)
		assert.Equal(t, "/work", captured.Root)
	})

	t.Run("returns error on open failure", func(t *testing.T) {
		mock := &mockApp{
			openFunc: func(_ context.Context, _ app.OpenOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"open", "serde"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires exactly one crate", func(t *testing.T) {
		mock := &mockApp{
			openFunc: func(_ context.Context, _ app.OpenOptions) error {
				panic("should not be called")
			},
		}

		for _, args := range [][]string{{"open"}, {"open", "serde", "tokio"}} {
			cli := commands.New(mock)
			cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
			cli.SetArgs(args)

			err := cli.Execute(context.Background())
			require.Error(t, err)
		}
	})
}

func TestCommands_Info(t *testing.T) {
	var captured app.LocateOptions
	var capturedFormat app.Format

	mock := &mockApp{
		infoFunc: func(_ context.Context, opts app.LocateOptions, w io.Writer, format app.Format) error {
			captured = opts
			capturedFormat = format
			_, err := io.WriteString(w, "rendered\n")
			return err
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, new(bytes.Buffer))
	cli.SetArgs([]string{"info", "tokio", "--format", "yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.LocateOptions{Spec: "tokio", Verify: true}, captured)
	assert.Equal(t, app.FormatYAML, capturedFormat)
	assert.Equal(t, "rendered\n", buf.String())
}

func TestCommands_Info_DefaultFormat(t *testing.T) {
	var capturedFormat app.Format
	mock := &mockApp{
		infoFunc: func(_ context.Context, _ app.LocateOptions, _ io.Writer, format app.Format) error {
			capturedFormat = format
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"info", "tokio"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.FormatText, capturedFormat)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "cargo-open version "+build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}
