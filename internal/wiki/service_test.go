package wiki

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/wikiwally/internal/mediawiki"
	"github.com/jonathan/wikiwally/internal/types"
	"github.com/jonathan/wikiwally/internal/wiki/mocks"
)

func newTestService(t *testing.T) (*Service, *mocks.MockKnowledgeBase, *observer.ObservedLogs) {
	t.Helper()
	ctrl := gomock.NewController(t)
	kb := mocks.NewMockKnowledgeBase(ctrl)
	core, logs := observer.New(zap.DebugLevel)
	svc := NewService(kb, zap.New(core), &ResolverConfig{Pick: func(int) int { return 0 }})
	return svc, kb, logs
}

func TestService_Page_QuantumMechanics(t *testing.T) {
	svc, kb, _ := newTestService(t)
	ctx := context.Background()

	kb.EXPECT().Search(ctx, "Quantum mechanics", 0).Return([]string{"Quantum mechanics"}, nil)
	kb.EXPECT().Page(ctx, "Quantum mechanics").Return(quantumPage(), nil)
	kb.EXPECT().Summary(ctx, "Quantum mechanics", 2).Return(quantumSummary, nil)

	p := svc.Page(ctx, "Quantum mechanics", "alice")
	require.NoError(t, p.Validate())
	require.Equal(t, types.KindArticle, p.Kind)

	article := p.Article.Article
	assert.Equal(t, "Quantum mechanics", article.Title)
	assert.NotEmpty(t, article.URL)
	assert.Equal(t, 2, strings.Count(article.Summary, ". ")+1)
	assert.True(t, strings.HasSuffix(article.Summary, "atoms."))
	assert.Equal(t, "https://upload.wikimedia.org/c.png", p.Article.Image)
	assert.Equal(t, "Requested by: alice", p.Footer())
}

func TestService_Page_NotFound(t *testing.T) {
	svc, kb, _ := newTestService(t)
	kb.EXPECT().Search(gomock.Any(), "asdfghjkl", 0).Return(nil, nil)

	p := svc.Page(context.Background(), "asdfghjkl", "bob")
	assert.True(t, p.IsError(types.ErrPageNotFound))
}

func TestService_Page_Disambiguation(t *testing.T) {
	svc, kb, _ := newTestService(t)
	options := make([]string, 30)
	for i := range options {
		options[i] = fmt.Sprintf("Mercury (%d)", i)
	}
	kb.EXPECT().Search(gomock.Any(), "mercury", 0).Return([]string{"Mercury"}, nil)
	kb.EXPECT().Page(gomock.Any(), "Mercury").Return(nil, &mediawiki.DisambiguationError{Title: "Mercury", Options: options})

	p := svc.Page(context.Background(), "mercury", "carol")
	require.True(t, p.IsError(types.ErrDisambiguated))
	assert.Len(t, p.Error.Options, 19)
	assert.Equal(t, "Query inputted: mercury", p.Error.Message)
}

func TestService_Page_Unavailable(t *testing.T) {
	svc, kb, logs := newTestService(t)
	kb.EXPECT().Search(gomock.Any(), "q", 0).Return(nil, &mediawiki.Error{URL: "https://en.wikipedia.org/w/api.php", Message: "HTTP status 503"})

	p := svc.Page(context.Background(), "q", "dave")
	assert.True(t, p.IsError(types.ErrServiceUnavailable))
	assert.Equal(t, 1, logs.FilterMessage("Knowledge base request failed").Len())
}

func TestService_Random_InvalidCount(t *testing.T) {
	svc, _, _ := newTestService(t)

	p := svc.Random(context.Background(), strPtr("15"), "erin")
	require.True(t, p.IsError(types.ErrInvalidCount))
	assert.Equal(t, `The query "15" is not a valid input.`, p.Error.Title)
	assert.Contains(t, p.Error.Message, "1 to 10")

	p = svc.Random(context.Background(), strPtr("ten"), "erin")
	assert.True(t, p.IsError(types.ErrInvalidType))
}

func TestService_Random_Single(t *testing.T) {
	svc, kb, _ := newTestService(t)
	ctx := context.Background()

	page := pageFor("Lake Baikal")
	page.Images = []string{"https://upload.wikimedia.org/map.png", "https://upload.wikimedia.org/lake.jpg"}
	kb.EXPECT().Random(ctx, 1).Return([]string{"Lake Baikal"}, nil)
	kb.EXPECT().Page(ctx, "Lake Baikal").Return(page, nil)
	kb.EXPECT().Summary(ctx, "Lake Baikal", 2).Return("Lake Baikal is a rift lake. It is the deepest. It is old.", nil)

	p := svc.Random(ctx, nil, "frank")
	require.NoError(t, p.Validate())
	require.Equal(t, types.KindArticle, p.Kind)
	assert.Equal(t, "Lake Baikal is a rift lake. It is the deepest.", p.Article.Article.Summary)
	assert.Equal(t, "https://upload.wikimedia.org/lake.jpg", p.Article.Image)
}

func TestService_Random_SingleUnresolved(t *testing.T) {
	svc, kb, _ := newTestService(t)
	kb.EXPECT().Random(gomock.Any(), 1).Return([]string{"Gone"}, nil)
	kb.EXPECT().Page(gomock.Any(), "Gone").Return(nil, &mediawiki.PageError{Title: "Gone"})

	p := svc.Random(context.Background(), strPtr("1"), "gina")
	assert.True(t, p.IsError(types.ErrPageNotFound))
}

func TestService_Random_List(t *testing.T) {
	svc, kb, logs := newTestService(t)
	ctx := context.Background()

	kb.EXPECT().Random(ctx, 3).Return([]string{"A", "B", "C"}, nil)
	kb.EXPECT().Page(ctx, "A").Return(pageFor("A"), nil)
	kb.EXPECT().Page(ctx, "B").Return(nil, &mediawiki.PageError{Title: "B"})
	kb.EXPECT().Page(ctx, "C").Return(pageFor("C"), nil)

	p := svc.Random(ctx, strPtr("3"), "hank")
	require.NoError(t, p.Validate())
	require.Equal(t, types.KindArticleList, p.Kind)
	require.Len(t, p.ArticleList.Entries, 2)
	assert.Equal(t, "A", p.ArticleList.Entries[0].Title)
	assert.Equal(t, "C", p.ArticleList.Entries[1].Title)
	assert.Equal(t, []types.SkippedItem{{Title: "B", Reason: "not_found"}}, p.ArticleList.Skipped)
	assert.Equal(t, 1, logs.FilterMessage("Skipped random article").Len())
}

func TestService_Random_Unavailable(t *testing.T) {
	svc, kb, _ := newTestService(t)
	kb.EXPECT().Random(gomock.Any(), 2).Return(nil, &mediawiki.Error{Message: "down"})

	p := svc.Random(context.Background(), strPtr("2"), "ivy")
	assert.True(t, p.IsError(types.ErrServiceUnavailable))
}

func TestService_Options(t *testing.T) {
	svc, kb, _ := newTestService(t)
	kb.EXPECT().Search(gomock.Any(), "python", 20).Return([]string{"Python (programming language)", "Python (genus)"}, nil)

	p := svc.Options(context.Background(), "python", "jack")
	require.NoError(t, p.Validate())
	require.Equal(t, types.KindOptions, p.Kind)
	assert.Equal(t, []string{"Python (programming language)", "Python (genus)"}, p.Options.Options)
}

func TestService_Options_None(t *testing.T) {
	svc, kb, _ := newTestService(t)
	kb.EXPECT().Search(gomock.Any(), "qqqqzzzz", 20).Return([]string{}, nil)

	p := svc.Options(context.Background(), "qqqqzzzz", "kate")
	assert.True(t, p.IsError(types.ErrNoOptionsFound))
}

func TestService_Options_Unavailable(t *testing.T) {
	svc, kb, _ := newTestService(t)
	kb.EXPECT().Search(gomock.Any(), "x", 20).Return(nil, &mediawiki.Error{Message: "down"})

	p := svc.Options(context.Background(), "x", "liam")
	assert.True(t, p.IsError(types.ErrServiceUnavailable))
}

func TestService_Help(t *testing.T) {
	svc := NewService(nil, nil, nil)
	p := svc.Help("mona")
	require.NoError(t, p.Validate())
	assert.Equal(t, types.KindHelp, p.Kind)
	assert.Equal(t, "mona", p.RequestedBy)
}
