package assist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khoahotran/inkwell/internal/application/service"
	"github.com/khoahotran/inkwell/internal/domain/history"
	"github.com/khoahotran/inkwell/pkg/apperror"
	"github.com/khoahotran/inkwell/pkg/logger"
)

type stubLLM struct {
	response string
	err      error
	calls    int
	lastReq  service.CompletionRequest
}

func (s *stubLLM) GenerateCompletion(_ context.Context, req service.CompletionRequest) (string, error) {
	s.calls++
	s.lastReq = req
	return s.response, s.err
}

type stubCache struct {
	values map[string]string
	sets   int
}

func newStubCache() *stubCache {
	return &stubCache{values: map[string]string{}}
}

func (s *stubCache) key(req service.CompletionRequest) string {
	return req.Model + "|" + req.SystemPrompt + "|" + req.UserPrompt
}

func (s *stubCache) Get(_ context.Context, req service.CompletionRequest) (string, bool, error) {
	v, ok := s.values[s.key(req)]
	return v, ok, nil
}

func (s *stubCache) Set(_ context.Context, req service.CompletionRequest, response string) error {
	s.sets++
	s.values[s.key(req)] = response
	return nil
}

type stubHistoryRepo struct {
	entries []*history.Entry
	err     error
}

func (s *stubHistoryRepo) Append(_ context.Context, entry *history.Entry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubHistoryRepo) List(_ context.Context, limit int) ([]*history.Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit > 0 && limit < len(s.entries) {
		return s.entries[len(s.entries)-limit:], nil
	}
	return s.entries, nil
}

func (s *stubHistoryRepo) Clear(_ context.Context) error {
	if s.err != nil {
		return s.err
	}
	s.entries = nil
	return nil
}

type stubPublisher struct {
	events []service.CompletionEvent
}

func (s *stubPublisher) PublishCompletion(_ context.Context, ev service.CompletionEvent) error {
	s.events = append(s.events, ev)
	return nil
}

var testLogger = logger.NewZapLogger("development")

func TestPlotUseCase_Success(t *testing.T) {
	llm := &stubLLM{response: "Three plot outlines."}
	repo := &stubHistoryRepo{}
	pub := &stubPublisher{}
	uc := NewPlotUseCase(llm, nil, repo, pub, testLogger, "google/gemma-2-9b-it:free")

	out, err := uc.Execute(context.Background(), PlotInput{Keywords: "lighthouse, storm, letter"})

	assert.NoError(t, err)
	assert.Equal(t, "Three plot outlines.", out)
	assert.Equal(t, 1, llm.calls)
	assert.Equal(t, "google/gemma-2-9b-it:free", llm.lastReq.Model)
	assert.Equal(t, defaultPlotPrompt, llm.lastReq.SystemPrompt)

	if assert.Len(t, repo.entries, 1) {
		assert.Equal(t, history.KindPlot, repo.entries[0].Kind)
		assert.Equal(t, "lighthouse, storm, letter", repo.entries[0].UserText)
		assert.Equal(t, "Three plot outlines.", repo.entries[0].AIText)
	}

	if assert.Len(t, pub.events, 1) {
		assert.Equal(t, history.KindPlot, pub.events[0].Kind)
		assert.False(t, pub.events[0].CacheHit)
	}
}

func TestPlotUseCase_CustomContext(t *testing.T) {
	llm := &stubLLM{response: "ok"}
	uc := NewPlotUseCase(llm, nil, &stubHistoryRepo{}, nil, testLogger, "m")

	_, err := uc.Execute(context.Background(), PlotInput{Keywords: "sea", Context: "You are a mystery novelist."})

	assert.NoError(t, err)
	assert.Equal(t, "You are a mystery novelist.", llm.lastReq.SystemPrompt)
}

func TestPlotUseCase_EmptyInput(t *testing.T) {
	uc := NewPlotUseCase(&stubLLM{}, nil, &stubHistoryRepo{}, nil, testLogger, "m")

	_, err := uc.Execute(context.Background(), PlotInput{Keywords: "   "})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestPlotUseCase_TooManyKeywords(t *testing.T) {
	llm := &stubLLM{}
	uc := NewPlotUseCase(llm, nil, &stubHistoryRepo{}, nil, testLogger, "m")

	_, err := uc.Execute(context.Background(), PlotInput{Keywords: "a b c d e f g h i j k"})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, 0, llm.calls)
}

func TestPlotUseCase_JapaneseCommaSeparators(t *testing.T) {
	llm := &stubLLM{response: "ok"}
	uc := NewPlotUseCase(llm, nil, &stubHistoryRepo{}, nil, testLogger, "m")

	// 11 keywords joined with the Japanese comma must be rejected too.
	keywords := strings.Repeat("word、", 10) + "word"
	_, err := uc.Execute(context.Background(), PlotInput{Keywords: keywords})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestPlotUseCase_MissingAPIKey(t *testing.T) {
	repo := &stubHistoryRepo{}
	uc := NewPlotUseCase(nil, nil, repo, nil, testLogger, "m")

	_, err := uc.Execute(context.Background(), PlotInput{Keywords: "sea"})

	assert.ErrorIs(t, err, apperror.ErrInternal)
	assert.Empty(t, repo.entries)
}

func TestPlotUseCase_UpstreamFailure(t *testing.T) {
	llm := &stubLLM{err: errors.New("429 too many requests")}
	repo := &stubHistoryRepo{}
	pub := &stubPublisher{}
	uc := NewPlotUseCase(llm, nil, repo, pub, testLogger, "m")

	_, err := uc.Execute(context.Background(), PlotInput{Keywords: "sea"})

	assert.ErrorIs(t, err, apperror.ErrUpstream)
	assert.Empty(t, repo.entries)
	assert.Empty(t, pub.events)
}

func TestPlotUseCase_CacheHitSkipsLLM(t *testing.T) {
	llm := &stubLLM{response: "fresh"}
	cache := newStubCache()
	repo := &stubHistoryRepo{}
	uc := NewPlotUseCase(llm, cache, repo, nil, testLogger, "m")

	out1, err := uc.Execute(context.Background(), PlotInput{Keywords: "sea"})
	assert.NoError(t, err)
	assert.Equal(t, "fresh", out1)
	assert.Equal(t, 1, llm.calls)
	assert.Equal(t, 1, cache.sets)

	out2, err := uc.Execute(context.Background(), PlotInput{Keywords: "sea"})
	assert.NoError(t, err)
	assert.Equal(t, "fresh", out2)
	assert.Equal(t, 1, llm.calls, "second request must be served from cache")

	// Cache hits still land in history.
	assert.Len(t, repo.entries, 2)
}

func TestNameUseCase_SurnameDefault(t *testing.T) {
	llm := &stubLLM{response: "- Name one"}
	repo := &stubHistoryRepo{}
	uc := NewNameUseCase(llm, nil, repo, nil, testLogger, "mistralai/mistral-7b-instruct:free")

	out, err := uc.Execute(context.Background(), NameInput{Keyword: "Frost"})

	assert.NoError(t, err)
	assert.Equal(t, "- Name one", out)
	assert.Contains(t, llm.lastReq.SystemPrompt, "SURNAME")
	if assert.Len(t, repo.entries, 1) {
		assert.Equal(t, history.KindName, repo.entries[0].Kind)
		assert.Contains(t, repo.entries[0].UserText, "surname")
	}
}

func TestNameUseCase_GivenName(t *testing.T) {
	llm := &stubLLM{response: "ok"}
	uc := NewNameUseCase(llm, nil, &stubHistoryRepo{}, nil, testLogger, "m")

	_, err := uc.Execute(context.Background(), NameInput{Keyword: "Sol", Type: NameTypeGivenName})

	assert.NoError(t, err)
	assert.Contains(t, llm.lastReq.SystemPrompt, "GIVEN NAME")
}

func TestNameUseCase_MultipleKeywords(t *testing.T) {
	llm := &stubLLM{}
	uc := NewNameUseCase(llm, nil, &stubHistoryRepo{}, nil, testLogger, "m")

	_, err := uc.Execute(context.Background(), NameInput{Keyword: "two words"})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, 0, llm.calls)
}

func TestNameUseCase_UnknownType(t *testing.T) {
	uc := NewNameUseCase(&stubLLM{}, nil, &stubHistoryRepo{}, nil, testLogger, "m")

	_, err := uc.Execute(context.Background(), NameInput{Keyword: "Sol", Type: "middle_name"})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestProofreadUseCase_Success(t *testing.T) {
	llm := &stubLLM{response: "Corrected text."}
	repo := &stubHistoryRepo{}
	uc := NewProofreadUseCase(llm, nil, repo, nil, testLogger, "m")

	out, err := uc.Execute(context.Background(), ProofreadInput{Text: "Their going to the libary."})

	assert.NoError(t, err)
	assert.Equal(t, "Corrected text.", out)
	assert.Equal(t, proofreadPrompt, llm.lastReq.SystemPrompt)
	if assert.Len(t, repo.entries, 1) {
		assert.Equal(t, history.KindProofread, repo.entries[0].Kind)
	}
}

func TestProofreadUseCase_TooLongCountsRunes(t *testing.T) {
	llm := &stubLLM{response: "ok"}
	uc := NewProofreadUseCase(llm, nil, &stubHistoryRepo{}, nil, testLogger, "m")

	// 500 multibyte runes pass; 501 do not.
	_, err := uc.Execute(context.Background(), ProofreadInput{Text: strings.Repeat("あ", 500)})
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), ProofreadInput{Text: strings.Repeat("あ", 501)})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Equal(t, 1, llm.calls)
}

func TestThesaurusUseCase_Success(t *testing.T) {
	llm := &stubLLM{response: "Three synonyms."}
	repo := &stubHistoryRepo{}
	uc := NewThesaurusUseCase(llm, nil, repo, nil, testLogger, "m")

	out, err := uc.Execute(context.Background(), ThesaurusInput{Keyword: "luminous"})

	assert.NoError(t, err)
	assert.Equal(t, "Three synonyms.", out)
	assert.Contains(t, llm.lastReq.SystemPrompt, "luminous")
	if assert.Len(t, repo.entries, 1) {
		assert.Equal(t, history.KindThesaurus, repo.entries[0].Kind)
	}
}

func TestThesaurusUseCase_MultipleKeywords(t *testing.T) {
	uc := NewThesaurusUseCase(&stubLLM{}, nil, &stubHistoryRepo{}, nil, testLogger, "m")

	_, err := uc.Execute(context.Background(), ThesaurusInput{Keyword: "bright、shining"})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestHistoryUseCase_ListAndClear(t *testing.T) {
	repo := &stubHistoryRepo{}
	llm := &stubLLM{response: "ok"}
	plotUC := NewPlotUseCase(llm, nil, repo, nil, testLogger, "m")
	historyUC := NewHistoryUseCase(repo, testLogger)

	_, err := plotUC.Execute(context.Background(), PlotInput{Keywords: "sea"})
	assert.NoError(t, err)

	entries, err := historyUC.List(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	assert.NoError(t, historyUC.Clear(context.Background()))

	entries, err = historyUC.List(context.Background(), 0)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryUseCase_NewestEntryVisiblePastDefaultLimit(t *testing.T) {
	repo := &stubHistoryRepo{}
	llm := &stubLLM{response: "ok"}
	plotUC := NewPlotUseCase(llm, nil, repo, nil, testLogger, "m")
	historyUC := NewHistoryUseCase(repo, testLogger)

	for i := 0; i < defaultHistoryLimit; i++ {
		_, err := plotUC.Execute(context.Background(), PlotInput{Keywords: fmt.Sprintf("kw%d", i)})
		assert.NoError(t, err)
	}
	_, err := plotUC.Execute(context.Background(), PlotInput{Keywords: "newest"})
	assert.NoError(t, err)

	entries, err := historyUC.List(context.Background(), 0)
	assert.NoError(t, err)
	if assert.Len(t, entries, defaultHistoryLimit) {
		assert.Equal(t, "newest", entries[len(entries)-1].UserText)
		assert.Equal(t, "kw1", entries[0].UserText)
	}
}

func TestHistoryUseCase_RepoFailure(t *testing.T) {
	repo := &stubHistoryRepo{err: errors.New("connection refused")}
	historyUC := NewHistoryUseCase(repo, testLogger)

	_, err := historyUC.List(context.Background(), 0)
	assert.ErrorIs(t, err, apperror.ErrInternal)

	assert.ErrorIs(t, historyUC.Clear(context.Background()), apperror.ErrInternal)
}

func TestHistoryAppendFailureDoesNotFailCompletion(t *testing.T) {
	repo := &stubHistoryRepo{err: errors.New("insert failed")}
	llm := &stubLLM{response: "still fine"}
	uc := NewPlotUseCase(llm, nil, repo, nil, testLogger, "m")

	out, err := uc.Execute(context.Background(), PlotInput{Keywords: "sea"})

	assert.NoError(t, err)
	assert.Equal(t, "still fine", out)
}

func TestKeywordCount(t *testing.T) {
	assert.Equal(t, 0, keywordCount("   "))
	assert.Equal(t, 1, keywordCount("sea"))
	assert.Equal(t, 3, keywordCount("a, b、c"))
	assert.Equal(t, 2, keywordCount("one    two"))
}
