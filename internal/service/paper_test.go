package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	gwMocks "exampaper/internal/llm/mocks"
	"exampaper/internal/loader"
	loaderMocks "exampaper/internal/loader/mocks"
	"exampaper/internal/model"
	"exampaper/internal/paper"
	paperMocks "exampaper/internal/paper/mocks"
	"exampaper/internal/storage"
	storeMocks "exampaper/internal/storage/mocks"
)

const fakePDF = "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n"

type deps struct {
	loader   *loaderMocks.MockLoader
	gateway  *gwMocks.MockGateway
	renderer *paperMocks.MockRenderer
	store    *storeMocks.MockStorage
}

func newTestService(t *testing.T, opts ...Option) (PaperService, deps) {
	t.Helper()
	d := deps{
		loader:   new(loaderMocks.MockLoader),
		gateway:  new(gwMocks.MockGateway),
		renderer: new(paperMocks.MockRenderer),
		store:    new(storeMocks.MockStorage),
	}
	opts = append([]Option{WithStorage(d.store)}, opts...)
	return NewPaperService(d.loader, d.gateway, d.renderer, opts...), d
}

func TestPaperService_Extract(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		contentType string
		body        io.Reader
		setup       func(d deps)
		want        *model.ExtractedText
		wantErr     error
	}{
		{
			name:        "happy path",
			contentType: "application/pdf",
			body:        strings.NewReader(fakePDF),
			setup: func(d deps) {
				d.loader.On("Load", ctx, mock.Anything).
					Run(func(args mock.Arguments) {
						all, err := io.ReadAll(args.Get(1).(io.Reader))
						assert.NoError(t, err)
						assert.Equal(t, fakePDF, string(all))
					}).
					Return(&model.ExtractedText{Text: "Hello\nWorld", Pages: 2}, nil).Once()
			},
			want: &model.ExtractedText{Text: "Hello\nWorld", Pages: 2},
		},
		{
			name:        "octet-stream declared but pdf content",
			contentType: "application/octet-stream",
			body:        strings.NewReader(fakePDF),
			setup: func(d deps) {
				d.loader.On("Load", ctx, mock.Anything).Return(&model.ExtractedText{Text: "x", Pages: 1}, nil).Once()
			},
			want: &model.ExtractedText{Text: "x", Pages: 1},
		},
		{
			name:        "large body is passed through whole",
			contentType: "application/pdf; charset=binary",
			body:        strings.NewReader(fakePDF + strings.Repeat("A", 10000)),
			setup: func(d deps) {
				d.loader.On("Load", ctx, mock.Anything).
					Run(func(args mock.Arguments) {
						all, _ := io.ReadAll(args.Get(1).(io.Reader))
						assert.Len(t, all, len(fakePDF)+10000)
					}).
					Return(&model.ExtractedText{Pages: 1}, nil).Once()
			},
			want: &model.ExtractedText{Pages: 1},
		},
		{
			name:        "junk before the pdf header",
			contentType: "application/pdf",
			body:        strings.NewReader("\r\n\r\n" + fakePDF),
			setup: func(d deps) {
				d.loader.On("Load", ctx, mock.Anything).Return(&model.ExtractedText{Text: "y", Pages: 1}, nil).Once()
			},
			want: &model.ExtractedText{Text: "y", Pages: 1},
		},
		{
			name:        "declared non-pdf",
			contentType: "text/plain",
			body:        strings.NewReader(fakePDF),
			setup:       func(d deps) {},
			wantErr:     ErrUnsupportedMediaType,
		},
		{
			name:        "content is not pdf",
			contentType: "application/pdf",
			body:        strings.NewReader("hello world"),
			setup:       func(d deps) {},
			wantErr:     ErrUnsupportedMediaType,
		},
		{
			name:    "nil body",
			setup:   func(d deps) {},
			wantErr: loader.ErrReaderNil,
		},
		{
			name:        "extraction fault propagates",
			contentType: "application/pdf",
			body:        strings.NewReader(fakePDF),
			setup: func(d deps) {
				d.loader.On("Load", ctx, mock.Anything).Return(nil, loader.ErrInvalidDocument).Once()
			},
			wantErr: loader.ErrInvalidDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newTestService(t)
			tt.setup(d)

			got, err := svc.Extract(ctx, model.UploadedDocument{
				Filename:    "syllabus.pdf",
				ContentType: tt.contentType,
				Body:        tt.body,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			d.loader.AssertExpectations(t)
		})
	}
}

func TestPaperService_ExtractObject(t *testing.T) {
	ctx := context.Background()

	t.Run("storage disabled", func(t *testing.T) {
		svc := NewPaperService(new(loaderMocks.MockLoader), new(gwMocks.MockGateway), new(paperMocks.MockRenderer))
		_, err := svc.ExtractObject(ctx, "syllabus.pdf")
		assert.ErrorIs(t, err, ErrStorageDisabled)
	})

	t.Run("key required", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.ExtractObject(ctx, "  ")
		assert.ErrorIs(t, err, ErrKeyRequired)
	})

	t.Run("missing object", func(t *testing.T) {
		svc, d := newTestService(t)
		d.store.On("Get", ctx, "nope.pdf").Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound).Once()

		_, err := svc.ExtractObject(ctx, "nope.pdf")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
		d.store.AssertExpectations(t)
	})

	t.Run("success", func(t *testing.T) {
		svc, d := newTestService(t)
		d.store.On("Get", ctx, "syllabus.pdf").
			Return(io.NopCloser(strings.NewReader(fakePDF)), storage.ObjectInfo{Key: "syllabus.pdf", ContentType: "application/pdf"}, nil).Once()
		d.loader.On("Load", mock.Anything, mock.Anything).Return(&model.ExtractedText{Text: "Unit 1", Pages: 1}, nil).Once()

		got, err := svc.ExtractObject(ctx, "syllabus.pdf")
		require.NoError(t, err)
		assert.Equal(t, "Unit 1", got.Text)
		d.store.AssertExpectations(t)
		d.loader.AssertExpectations(t)
	})
}

func TestPaperService_Generate(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	svc, d := newTestService(t, WithMetrics(m))

	d.gateway.On("Generate", mock.Anything, "Summarize:\n\nHello\nWorld").
		Return(model.Reply{Text: "Module 1\nQ1 (a) [10 marks]"}).Once()
	d.gateway.On("Generate", mock.Anything, "\n\n").
		Return(model.FailedReply(model.FailureInvalidStructure, []byte(`{}`))).Once()

	gen := svc.Generate(ctx, "Summarize:", "Hello\nWorld")
	assert.Equal(t, "Summarize:\n\nHello\nWorld", gen.PromptRequest)
	assert.Equal(t, "Module 1\nQ1 (a) [10 marks]", gen.Text)
	assert.True(t, gen.OK())

	gen = svc.Generate(ctx, "", "")
	assert.Equal(t, model.SentinelInvalidStructure, gen.Text)
	assert.Equal(t, model.FailureInvalidStructure, gen.Failure)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.replies.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.replies.WithLabelValues("invalid_structure")))
	d.gateway.AssertExpectations(t)
}

func TestPaperService_Render(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	svc, d := newTestService(t, WithMetrics(m))

	d.renderer.On("Render", "Module 1").
		Return(&model.RenderedPaper{Filename: paper.FileName, Pages: 2, Body: bytes.NewReader([]byte("%PDF"))}, nil).Once()
	d.renderer.On("Render", "boom").Return(nil, errors.New("write pdf: closed")).Once()

	out, err := svc.Render(ctx, "Module 1")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Pages)
	assert.Equal(t, 1, testutil.CollectAndCount(m.pages))

	_, err = svc.Render(ctx, "boom")
	assert.EqualError(t, err, "render paper: write pdf: closed")
	d.renderer.AssertExpectations(t)
}

func TestPaperService_PingAndDefaults(t *testing.T) {
	svc, d := newTestService(t)
	d.gateway.On("Ping", mock.Anything).Return(nil).Once()

	assert.NoError(t, svc.Ping(context.Background()))
	assert.True(t, strings.HasPrefix(svc.DefaultInstruction(), "Design a model exam paper"))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)
	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

type lineCanvas struct{ lines []string }

func (c *lineCanvas) SetFont(paper.Font)                    {}
func (c *lineCanvas) DrawString(_, _ float64, text string) { c.lines = append(c.lines, text) }
func (c *lineCanvas) ShowPage()                             {}
func (c *lineCanvas) Save(w io.Writer) error                { _, err := w.Write([]byte("%PDF")); return err }

func TestPaperService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	ldr := new(loaderMocks.MockLoader)
	gw := new(gwMocks.MockGateway)
	canvas := &lineCanvas{}
	svc := NewPaperService(ldr, gw, paper.NewRenderer(paper.WithCanvas(func() paper.Canvas { return canvas })))

	ldr.On("Load", mock.Anything, mock.Anything).Return(&model.ExtractedText{Text: "Hello\nWorld", Pages: 2}, nil).Once()
	gw.On("Generate", mock.Anything, "Summarize:\n\nHello\nWorld").Return(model.Reply{Text: "Module 1\nQ1 (a) [10 marks]"}).Once()

	text, err := svc.Extract(ctx, model.UploadedDocument{ContentType: "application/pdf", Body: strings.NewReader(fakePDF)})
	require.NoError(t, err)

	gen := svc.Generate(ctx, "Summarize:", text.Text)
	assert.Equal(t, "Summarize:\n\nHello\nWorld", gen.PromptRequest)

	out, err := svc.Render(ctx, gen.Text)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Pages)

	want := make([]string, 0, len(paper.Letterhead)+2)
	for _, h := range paper.Letterhead {
		want = append(want, h.Text)
	}
	want = append(want, "Module 1", "Q1 (a) [10 marks]")
	assert.Equal(t, want, canvas.lines)
}
