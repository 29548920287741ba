package stylist

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/joshua-takyi/wearorithm/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewWithoutClientIsMock(t *testing.T) {
	s := New(nil, Options{}, discardLogger())
	if _, ok := s.(*MockStylist); !ok {
		t.Fatalf("New(nil) = %T, want *MockStylist", s)
	}
}

func TestMockStylistPayloads(t *testing.T) {
	m := NewMockStylist(discardLogger())
	ctx := context.Background()

	recs, err := m.Recommend(ctx, RecommendRequest{Occasion: "work", Mood: "confident", Count: 5})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].Name != "Perfect work Look" || recs[0].ConfidenceScore != 85 {
		t.Errorf("first recommendation = %q/%d", recs[0].Name, recs[0].ConfidenceScore)
	}
	if recs[1].Name != "Casual confident Style" || recs[1].ConfidenceScore != 80 {
		t.Errorf("second recommendation = %q/%d", recs[1].Name, recs[1].ConfidenceScore)
	}
	for _, r := range recs {
		if r.Occasion != "work" || r.Mood != "confident" {
			t.Errorf("recommendation echoes %q/%q", r.Occasion, r.Mood)
		}
	}

	analysis, err := m.AnalyzeImage(ctx, []byte{0x89, 'P', 'N', 'G'}, "image/png")
	if err != nil {
		t.Fatalf("AnalyzeImage: %v", err)
	}
	if analysis.Suitability != 75 || analysis.StyleMatch.Confidence != 80 {
		t.Errorf("analysis = %d/%d, want 75/80", analysis.Suitability, analysis.StyleMatch.Confidence)
	}

	palette, err := m.Palette(ctx, []string{"#000000"})
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	if len(palette) != 8 {
		t.Errorf("palette has %d colors, want 8", len(palette))
	}
}

func fakeGenerator(reply string, err error, calls *[]string) generateFunc {
	return func(ctx context.Context, model string, schema *genai.Schema, parts ...genai.Part) (string, error) {
		*calls = append(*calls, model)
		return reply, err
	}
}

func TestGeminiRecommendParsesReply(t *testing.T) {
	reply := `{"recommendations":[
		{"name":"Sharp","occasion":"work","mood":"bold","items":{"top":"shirt","bottom":"chinos","shoes":"loafers","accessories":["watch"]},
		 "colors":["#000000"],"confidenceScore":87.6,"feedback":"good","impact":"strong","suggestions":["add belt"]},
		{"name":"Soft","occasion":"work","mood":"bold","items":{"top":"tee","bottom":"jeans","shoes":"sneakers","accessories":[]},
		 "colors":["#FFFFFF"],"confidenceScore":140,"feedback":"ok","impact":"calm","suggestions":[]},
		{"name":"Extra","occasion":"work","mood":"bold","items":{"top":"a","bottom":"b","shoes":"c","accessories":[]},
		 "colors":[],"confidenceScore":50,"feedback":"","impact":"","suggestions":[]}
	]}`
	var calls []string
	s := newGeminiStylist(fakeGenerator(reply, nil, &calls), Options{})

	recs, err := s.Recommend(context.Background(), RecommendRequest{
		Profile:  models.DefaultProfile(uuid.New()),
		Occasion: "work",
		Mood:     "bold",
		Count:    2,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].ConfidenceScore != 88 {
		t.Errorf("score = %d, want 88", recs[0].ConfidenceScore)
	}
	if recs[1].ConfidenceScore != 100 {
		t.Errorf("score = %d, want clamped 100", recs[1].ConfidenceScore)
	}
	if recs[0].Items.Shoes != "loafers" {
		t.Errorf("shoes = %q", recs[0].Items.Shoes)
	}
	if len(calls) != 1 || calls[0] != DefaultModel {
		t.Errorf("models called = %v, want [%s]", calls, DefaultModel)
	}
}

func TestGeminiAnalyzeAndPalette(t *testing.T) {
	var calls []string
	analysis := `{"suitability":72.4,"feedback":"fine","suggestions":["hat"],
		"colorAnalysis":{"dominantColors":["#111111"],"complementaryColors":["#EEEEEE"]},
		"styleMatch":{"occasion":"date","mood":"warm","confidence":66}}`
	s := newGeminiStylist(fakeGenerator(analysis, nil, &calls), Options{Model: "m-pro", FastModel: "m-fast"})

	res, err := s.AnalyzeImage(context.Background(), []byte("img"), "image/jpeg")
	if err != nil {
		t.Fatalf("AnalyzeImage: %v", err)
	}
	if res.Suitability != 72 || res.StyleMatch.Confidence != 66 || res.StyleMatch.Occasion != "date" {
		t.Errorf("analysis = %+v", res)
	}

	s.generate = fakeGenerator(`{"complementaryColors":["#123456","#654321"]}`, nil, &calls)
	palette, err := s.Palette(context.Background(), []string{"#000000"})
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	if len(palette) != 2 {
		t.Errorf("palette = %v", palette)
	}
	if strings.Join(calls, ",") != "m-pro,m-fast" {
		t.Errorf("models called = %v", calls)
	}
}

func TestGeminiErrors(t *testing.T) {
	var calls []string
	s := newGeminiStylist(fakeGenerator("not json", nil, &calls), Options{})
	if _, err := s.Palette(context.Background(), []string{"#000"}); err == nil {
		t.Error("expected a parse error")
	}

	boom := errors.New("quota exceeded")
	s.generate = fakeGenerator("", boom, &calls)
	if _, err := s.Recommend(context.Background(), RecommendRequest{Count: 2}); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

type countingStylist struct {
	calls atomic.Int32
	err   error
	delay time.Duration
}

func (c *countingStylist) Recommend(ctx context.Context, req RecommendRequest) ([]Recommendation, error) {
	c.calls.Add(1)
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if c.err != nil {
		return nil, c.err
	}
	return []Recommendation{{Name: "ok"}}, nil
}

func (c *countingStylist) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (*models.AnalysisResult, error) {
	c.calls.Add(1)
	return &models.AnalysisResult{Suitability: 50}, c.err
}

func (c *countingStylist) Palette(ctx context.Context, baseColors []string) ([]string, error) {
	c.calls.Add(1)
	return []string{"#FFFFFF"}, c.err
}

func TestGuardPassesThrough(t *testing.T) {
	next := &countingStylist{}
	g := NewGuard(next, Options{Rate: 100, Burst: 10}, discardLogger())

	recs, err := g.Recommend(context.Background(), RecommendRequest{Count: 1})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 1 || recs[0].Name != "ok" {
		t.Errorf("recs = %+v", recs)
	}
	if res, err := g.AnalyzeImage(context.Background(), nil, "image/png"); err != nil || res.Suitability != 50 {
		t.Errorf("AnalyzeImage = %+v, %v", res, err)
	}
	if p, err := g.Palette(context.Background(), nil); err != nil || len(p) != 1 {
		t.Errorf("Palette = %v, %v", p, err)
	}
}

func TestGuardOpensBreaker(t *testing.T) {
	next := &countingStylist{err: errors.New("upstream down")}
	g := NewGuard(next, Options{Rate: 1000, Burst: 100, BreakerFailures: 3}, discardLogger())

	for i := 0; i < 3; i++ {
		if _, err := g.Palette(context.Background(), nil); !errors.Is(err, ErrStylistUnavailable) {
			t.Fatalf("call %d: err = %v, want ErrStylistUnavailable", i, err)
		}
	}
	if got := next.calls.Load(); got != 3 {
		t.Fatalf("upstream calls = %d, want 3", got)
	}

	_, err := g.Palette(context.Background(), nil)
	if !errors.Is(err, ErrStylistUnavailable) {
		t.Fatalf("err = %v, want ErrStylistUnavailable", err)
	}
	if got := next.calls.Load(); got != 3 {
		t.Errorf("open breaker still reached upstream: %d calls", got)
	}
}

func TestGuardTimeout(t *testing.T) {
	next := &countingStylist{delay: time.Second}
	g := NewGuard(next, Options{Rate: 100, Burst: 10, Timeout: 20 * time.Millisecond}, discardLogger())

	_, err := g.Recommend(context.Background(), RecommendRequest{})
	if !errors.Is(err, ErrStylistUnavailable) || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded wrapped in ErrStylistUnavailable", err)
	}
}

func TestGuardCancelledContextSkipsUpstream(t *testing.T) {
	next := &countingStylist{}
	g := NewGuard(next, Options{Rate: 0.001, Burst: 1}, discardLogger())

	if _, err := g.Palette(context.Background(), nil); err != nil {
		t.Fatalf("first call: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.Palette(ctx, nil); !errors.Is(err, ErrStylistUnavailable) {
		t.Errorf("err = %v, want ErrStylistUnavailable", err)
	}
	if got := next.calls.Load(); got != 1 {
		t.Errorf("upstream calls = %d, want 1", got)
	}
}
