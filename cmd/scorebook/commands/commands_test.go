package commands_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scorebook/cmd/scorebook/commands"
	"go.trai.ch/scorebook/internal/app"
	"go.trai.ch/scorebook/internal/build"
	"go.trai.ch/scorebook/internal/core/domain"
)

type mockApp struct {
	configured *app.ConfigureOptions
	show       *app.ShowOptions
	imported   *app.ImportOptions
	verified   bool
	cleaned    *app.CleanOptions
	err        error
}

func (m *mockApp) Configure(_ context.Context, opts app.ConfigureOptions) (domain.Config, error) {
	m.configured = &opts
	return domain.DefaultConfig(), nil
}

func (m *mockApp) Show(_ context.Context, opts app.ShowOptions, w io.Writer) error {
	m.show = &opts
	_, _ = fmt.Fprintln(w, "sheet#1")
	return m.err
}

func (m *mockApp) Import(_ context.Context, opts app.ImportOptions) error {
	m.imported = &opts
	return m.err
}

func (m *mockApp) Verify(_ context.Context, _ app.VerifyOptions, _ io.Writer) error {
	m.verified = true
	return m.err
}

func (m *mockApp) Clean(_ context.Context, opts app.CleanOptions) error {
	m.cleaned = &opts
	return m.err
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Show(t *testing.T) {
	t.Run("sheet only", func(t *testing.T) {
		m := &mockApp{}
		out, err := execute(t, m, "show", "1")
		require.NoError(t, err)
		require.NotNil(t, m.show)
		assert.Equal(t, app.ShowOptions{Sheet: 1}, *m.show)
		assert.Equal(t, "sheet#1\n", out)
	})

	t.Run("sheet and artifact", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "show", "12", domain.HorizontalArtifact)
		require.NoError(t, err)
		assert.Equal(t, app.ShowOptions{Sheet: 12, Artifact: domain.HorizontalArtifact}, *m.show)
	})

	t.Run("invalid sheet", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "show", "first")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidSheetNumber.Error())
		assert.Nil(t, m.show)
	})

	t.Run("app error", func(t *testing.T) {
		m := &mockApp{err: errors.New("simulated error")}
		_, err := execute(t, m, "show", "1")
		assert.ErrorContains(t, err, "simulated error")
	})
}

func TestCommands_Import(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "import", "2", domain.BinaryArtifact, "table.yaml")
	require.NoError(t, err)
	assert.Equal(t, app.ImportOptions{Sheet: 2, Artifact: domain.BinaryArtifact, Source: "table.yaml"}, *m.imported)

	_, err = execute(t, &mockApp{}, "import", "2", domain.BinaryArtifact)
	assert.Error(t, err)
}

func TestCommands_Verify(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "verify")
	require.NoError(t, err)
	assert.True(t, m.verified)
}

func TestCommands_Clean(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "clean")
	require.NoError(t, err)
	assert.Equal(t, app.CleanOptions{}, *m.cleaned)

	m = &mockApp{}
	_, err = execute(t, m, "clean", "--sheet", "4")
	require.NoError(t, err)
	assert.Equal(t, app.CleanOptions{Sheet: 4}, *m.cleaned)

	m = &mockApp{}
	_, err = execute(t, m, "clean", "--sheet", "0")
	assert.ErrorContains(t, err, domain.ErrInvalidSheetNumber.Error())
	assert.Nil(t, m.cleaned)
}

func TestCommands_GlobalFlags(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "--book", "/books/mass", "--json", "--debug", "verify")
	require.NoError(t, err)
	require.NotNil(t, m.configured)
	assert.Equal(t, app.ConfigureOptions{Book: "/books/mass", JSON: true, Debug: true}, *m.configured)
}

func TestCommands_Version(t *testing.T) {
	m := &mockApp{}
	out, err := execute(t, m, "version")
	require.NoError(t, err)

	assert.Contains(t, out, build.Version)
	assert.Nil(t, m.configured)
}
