package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/scorebook/internal/adapters/codec"
	"go.trai.ch/scorebook/internal/adapters/telemetry"
	"go.trai.ch/scorebook/internal/app"
	"go.trai.ch/scorebook/internal/core/domain"
	"go.trai.ch/scorebook/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const horizontalTable = `
orientation: HORIZONTAL
width: 8
height: 3
sequences:
  - [{start: 0, length: 3}, {start: 5, length: 2}]
  - []
  - [{start: 1, length: 6}]
`

const verticalTable = `
orientation: VERTICAL
width: 2
height: 4
sequences:
  - [{start: 0, length: 4}]
  - [{start: 2, length: 1}]
`

type fixture struct {
	app      *app.App
	book     string
	recorder *tracetest.SpanRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	bookDir := t.TempDir()
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).Return(domain.Config{
		Book:             bookDir,
		LogLevel:         domain.LogInfo,
		FlushConcurrency: 2,
	}, nil).AnyTimes()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracerWithProvider(tp, telemetry.InstrumentationName)

	return &fixture{
		app:      app.New(mockLoader, mockLogger, codec.NewFramed[domain.RunTable](), tracer),
		book:     bookDir,
		recorder: recorder,
	}
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func (f *fixture) importTable(t *testing.T, sheet int, artifact, content string) {
	t.Helper()
	err := f.app.Import(t.Context(), app.ImportOptions{
		Sheet:    sheet,
		Artifact: artifact,
		Source:   writeSource(t, content),
	})
	require.NoError(t, err)
}

func TestApp_ImportAndShow(t *testing.T) {
	f := newFixture(t)
	f.importTable(t, 1, domain.BinaryArtifact, horizontalTable)

	assert.FileExists(t, filepath.Join(f.book, "sheet#1", domain.BinaryArtifact))

	var out bytes.Buffer
	err := f.app.Show(t.Context(), app.ShowOptions{Sheet: 1}, &out)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "show_sheet", out.Bytes())
}

func TestApp_Show_SingleArtifact(t *testing.T) {
	f := newFixture(t)
	f.importTable(t, 3, domain.VerticalArtifact, verticalTable)

	var out bytes.Buffer
	err := f.app.Show(t.Context(), app.ShowOptions{Sheet: 3, Artifact: domain.VerticalArtifact}, &out)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "show_artifact", out.Bytes())

	var loads int
	for _, s := range f.recorder.Ended() {
		if s.Name() == "artifact.load" {
			loads++
		}
	}
	assert.Equal(t, 1, loads)
}

func TestApp_Show_NotAvailable(t *testing.T) {
	f := newFixture(t)

	var out bytes.Buffer
	err := f.app.Show(t.Context(), app.ShowOptions{Sheet: 1, Artifact: domain.BinaryArtifact}, &out)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrArtifactNotAvailable.Error())
	assert.Empty(t, out.String())

	err = f.app.Show(t.Context(), app.ShowOptions{Sheet: 1}, &out)
	assert.ErrorContains(t, err, domain.ErrArtifactNotAvailable.Error())
}

func TestApp_Show_InvalidInput(t *testing.T) {
	f := newFixture(t)

	err := f.app.Show(t.Context(), app.ShowOptions{Sheet: 1, Artifact: "color.png"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, domain.ErrUnknownArtifact.Error())

	err = f.app.Show(t.Context(), app.ShowOptions{Sheet: 0}, &bytes.Buffer{})
	assert.ErrorContains(t, err, domain.ErrInvalidSheetNumber.Error())
}

func TestApp_Import_Errors(t *testing.T) {
	tests := []struct {
		name     string
		artifact string
		content  string
		wantErr  error
	}{
		{
			name:     "unknown artifact",
			artifact: "staff.runs",
			content:  horizontalTable,
			wantErr:  domain.ErrUnknownArtifact,
		},
		{
			name:     "orientation mismatch",
			artifact: domain.VerticalArtifact,
			content:  horizontalTable,
			wantErr:  domain.ErrInvalidRunTable,
		},
		{
			name:     "overlapping runs",
			artifact: domain.BinaryArtifact,
			content:  "orientation: HORIZONTAL\nwidth: 4\nheight: 1\nsequences:\n  - [{start: 0, length: 2}, {start: 1, length: 2}]\n",
			wantErr:  domain.ErrInvalidRunTable,
		},
		{
			name:     "not yaml",
			artifact: domain.BinaryArtifact,
			content:  "orientation: [",
			wantErr:  domain.ErrImportFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			err := f.app.Import(t.Context(), app.ImportOptions{
				Sheet:    1,
				Artifact: tt.artifact,
				Source:   writeSource(t, tt.content),
			})
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
			assert.NoFileExists(t, filepath.Join(f.book, "sheet#1", tt.artifact))
		})
	}
}

func TestApp_Import_MissingSource(t *testing.T) {
	f := newFixture(t)
	err := f.app.Import(t.Context(), app.ImportOptions{
		Sheet:    1,
		Artifact: domain.BinaryArtifact,
		Source:   filepath.Join(t.TempDir(), "missing.yaml"),
	})
	assert.ErrorContains(t, err, domain.ErrImportFailed.Error())
}

func TestApp_Verify(t *testing.T) {
	f := newFixture(t)
	f.importTable(t, 1, domain.BinaryArtifact, horizontalTable)
	f.importTable(t, 2, domain.HorizontalArtifact, horizontalTable)
	f.importTable(t, 2, domain.VerticalArtifact, verticalTable)

	var out bytes.Buffer
	require.NoError(t, f.app.Verify(t.Context(), app.VerifyOptions{}, &out))

	g := goldie.New(t)
	g.Assert(t, "verify_ok", out.Bytes())
}

func TestApp_Verify_Corrupt(t *testing.T) {
	f := newFixture(t)
	f.importTable(t, 1, domain.BinaryArtifact, horizontalTable)

	corrupt := filepath.Join(f.book, "sheet#1", domain.VerticalArtifact)
	require.NoError(t, os.WriteFile(corrupt, []byte("garbage"), domain.FilePerm))

	var out bytes.Buffer
	err := f.app.Verify(t.Context(), app.VerifyOptions{}, &out)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrVerifyFailed.Error())

	assert.Contains(t, out.String(), "✓ sheet#1/binary.runs\n")
	assert.Contains(t, out.String(), "✗ sheet#1/vertical.runs: ")
	assert.Contains(t, out.String(), domain.ErrPayloadMalformed.Error())
}

func TestApp_Verify_EmptyBook(t *testing.T) {
	f := newFixture(t)

	var out bytes.Buffer
	require.NoError(t, f.app.Verify(t.Context(), app.VerifyOptions{}, &out))
	assert.Empty(t, out.String())
}

func TestApp_Clean(t *testing.T) {
	f := newFixture(t)
	f.importTable(t, 1, domain.BinaryArtifact, horizontalTable)
	f.importTable(t, 2, domain.BinaryArtifact, horizontalTable)

	require.NoError(t, f.app.Clean(t.Context(), app.CleanOptions{Sheet: 1}))
	assert.NoFileExists(t, filepath.Join(f.book, "sheet#1", domain.BinaryArtifact))
	assert.FileExists(t, filepath.Join(f.book, "sheet#2", domain.BinaryArtifact))

	require.NoError(t, f.app.Clean(t.Context(), app.CleanOptions{}))
	assert.NoFileExists(t, filepath.Join(f.book, "sheet#2", domain.BinaryArtifact))

	err := f.app.Clean(t.Context(), app.CleanOptions{Sheet: -1})
	assert.ErrorContains(t, err, domain.ErrInvalidSheetNumber.Error())
}

func TestApp_BookOverride(t *testing.T) {
	f := newFixture(t)
	other := t.TempDir()

	err := f.app.Import(t.Context(), app.ImportOptions{
		Book:     other,
		Sheet:    1,
		Artifact: domain.BinaryArtifact,
		Source:   writeSource(t, horizontalTable),
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(other, "sheet#1", domain.BinaryArtifact))
	assert.NoFileExists(t, filepath.Join(f.book, "sheet#1", domain.BinaryArtifact))
}
