package wiki

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jonathan/wikiwally/internal/mediawiki"
	"github.com/jonathan/wikiwally/internal/wiki/mocks"
)

const quantumSummary = "Quantum mechanics is a fundamental theory in physics. It describes nature at the scale of atoms. It is the foundation of quantum chemistry."

func quantumPage() *mediawiki.Page {
	return &mediawiki.Page{
		PageID: 25202,
		Title:  "Quantum mechanics",
		URL:    "https://en.wikipedia.org/wiki/Quantum_mechanics",
		Images: []string{"https://upload.wikimedia.org/a.svg", "https://upload.wikimedia.org/b.jpg", "https://upload.wikimedia.org/c.png"},
	}
}

func newTestResolver(t *testing.T, pick func(int) int) (*Resolver, *mocks.MockKnowledgeBase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	kb := mocks.NewMockKnowledgeBase(ctrl)
	return NewResolver(kb, &ResolverConfig{Pick: pick}), kb
}

func TestResolver_ResolveQuery_Resolved(t *testing.T) {
	r, kb := newTestResolver(t, nil)
	ctx := context.Background()

	kb.EXPECT().Search(ctx, "quantum mech", 0).Return([]string{"Quantum mechanics", "Quantum field theory"}, nil)
	kb.EXPECT().Page(ctx, "Quantum mechanics").Return(quantumPage(), nil)
	kb.EXPECT().Summary(ctx, "Quantum mechanics", 2).Return(quantumSummary, nil)

	outcome, err := r.ResolveQuery(ctx, "quantum mech")
	require.NoError(t, err)
	require.Equal(t, Resolved, outcome.Kind)
	require.NotNil(t, outcome.Article)
	assert.Equal(t, "Quantum mechanics", outcome.Article.Title)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Quantum_mechanics", outcome.Article.URL)
	assert.Equal(t, "Quantum mechanics is a fundamental theory in physics. It describes nature at the scale of atoms.", outcome.Article.Summary)
	assert.Len(t, outcome.Article.Images, 3)
	assert.Nil(t, outcome.Disambiguation)
}

func TestResolver_ResolveQuery_NoCandidates(t *testing.T) {
	r, kb := newTestResolver(t, nil)
	ctx := context.Background()

	kb.EXPECT().Search(ctx, "xyzzyplugh", 0).Return([]string{}, nil)

	outcome, err := r.ResolveQuery(ctx, "xyzzyplugh")
	require.NoError(t, err)
	assert.Equal(t, NotFound, outcome.Kind)
	assert.Nil(t, outcome.Article)
}

func TestResolver_ResolveQuery_Disambiguated(t *testing.T) {
	r, kb := newTestResolver(t, nil)
	ctx := context.Background()

	kb.EXPECT().Search(ctx, "mercury", 0).Return([]string{"Mercury"}, nil)
	kb.EXPECT().Page(ctx, "Mercury").Return(nil, &mediawiki.DisambiguationError{
		Title:   "Mercury",
		Options: []string{"Mercury (element)", "Mercury (planet)"},
	})

	outcome, err := r.ResolveQuery(ctx, "mercury")
	require.NoError(t, err)
	require.Equal(t, Disambiguated, outcome.Kind)
	assert.Equal(t, "Mercury", outcome.Disambiguation.QueriedTitle)
	assert.Equal(t, []string{"Mercury (element)", "Mercury (planet)"}, outcome.Disambiguation.Options)
}

func TestResolver_ResolveQuery_MissingPage(t *testing.T) {
	r, kb := newTestResolver(t, nil)
	ctx := context.Background()

	kb.EXPECT().Search(ctx, "ghost", 0).Return([]string{"Ghost page"}, nil)
	kb.EXPECT().Page(ctx, "Ghost page").Return(nil, &mediawiki.PageError{Title: "Ghost page"})

	outcome, err := r.ResolveQuery(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, NotFound, outcome.Kind)
}

func TestResolver_ResolveQuery_SummaryMissing(t *testing.T) {
	r, kb := newTestResolver(t, nil)
	ctx := context.Background()

	kb.EXPECT().Search(ctx, "quantum", 0).Return([]string{"Quantum mechanics"}, nil)
	kb.EXPECT().Page(ctx, "Quantum mechanics").Return(quantumPage(), nil)
	kb.EXPECT().Summary(ctx, "Quantum mechanics", 2).Return("", &mediawiki.PageError{Title: "Quantum mechanics"})

	outcome, err := r.ResolveQuery(ctx, "quantum")
	require.NoError(t, err)
	assert.Equal(t, NotFound, outcome.Kind)
}

func TestResolver_ResolveQuery_TransportErrors(t *testing.T) {
	boom := &mediawiki.Error{URL: "https://en.wikipedia.org/w/api.php", Message: "HTTP status 503"}

	t.Run("search", func(t *testing.T) {
		r, kb := newTestResolver(t, nil)
		kb.EXPECT().Search(gomock.Any(), "q", 0).Return(nil, boom)

		_, err := r.ResolveQuery(context.Background(), "q")
		require.Error(t, err)
		var mwErr *mediawiki.Error
		assert.True(t, errors.As(err, &mwErr))
	})

	t.Run("page", func(t *testing.T) {
		r, kb := newTestResolver(t, nil)
		kb.EXPECT().Search(gomock.Any(), "q", 0).Return([]string{"Q"}, nil)
		kb.EXPECT().Page(gomock.Any(), "Q").Return(nil, boom)

		_, err := r.ResolveQuery(context.Background(), "q")
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("summary", func(t *testing.T) {
		r, kb := newTestResolver(t, nil)
		kb.EXPECT().Search(gomock.Any(), "q", 0).Return([]string{"Q"}, nil)
		kb.EXPECT().Page(gomock.Any(), "Q").Return(&mediawiki.Page{Title: "Q", URL: "https://en.wikipedia.org/wiki/Q"}, nil)
		kb.EXPECT().Summary(gomock.Any(), "Q", 2).Return("", boom)

		_, err := r.ResolveQuery(context.Background(), "q")
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})
}

func TestResolver_ResolveTitle_Strict(t *testing.T) {
	r, kb := newTestResolver(t, func(int) int {
		t.Fatal("strict resolution must not pick an option")
		return 0
	})
	ctx := context.Background()

	kb.EXPECT().Page(ctx, "Mercury").Return(nil, &mediawiki.DisambiguationError{
		Title:   "Mercury",
		Options: []string{"Mercury (element)", "Mercury (planet)"},
	})

	outcome, err := r.ResolveTitle(ctx, "Mercury", Strict)
	require.NoError(t, err)
	assert.Equal(t, Disambiguated, outcome.Kind)
}

func TestResolver_ResolveTitle_RandomFallback(t *testing.T) {
	var pickedFrom int
	r, kb := newTestResolver(t, func(n int) int {
		pickedFrom = n
		return 1
	})
	ctx := context.Background()

	kb.EXPECT().Page(ctx, "Mercury").Return(nil, &mediawiki.DisambiguationError{
		Title:   "Mercury",
		Options: []string{"Mercury (element)", "Mercury (planet)", "Mercury (mythology)"},
	})
	kb.EXPECT().Page(ctx, "Mercury (planet)").Return(&mediawiki.Page{
		Title: "Mercury (planet)",
		URL:   "https://en.wikipedia.org/wiki/Mercury_(planet)",
	}, nil)
	kb.EXPECT().Summary(ctx, "Mercury (planet)", 2).Return("Mercury is the first planet. It is small.", nil)

	outcome, err := r.ResolveTitle(ctx, "Mercury", RandomFallback)
	require.NoError(t, err)
	require.Equal(t, Resolved, outcome.Kind)
	assert.Equal(t, 3, pickedFrom)
	assert.Equal(t, "Mercury (planet)", outcome.Article.Title)
	assert.Equal(t, "Mercury is the first planet. It is small.", outcome.Article.Summary)
}

func TestResolver_ResolveTitle_FallbackDoesNotRecurse(t *testing.T) {
	r, kb := newTestResolver(t, func(int) int { return 0 })
	ctx := context.Background()

	kb.EXPECT().Page(ctx, "A").Return(nil, &mediawiki.DisambiguationError{Title: "A", Options: []string{"B"}})
	kb.EXPECT().Page(ctx, "B").Return(nil, &mediawiki.DisambiguationError{Title: "B", Options: []string{"C"}})

	outcome, err := r.ResolveTitle(ctx, "A", RandomFallback)
	require.NoError(t, err)
	require.Equal(t, Disambiguated, outcome.Kind)
	assert.Equal(t, "B", outcome.Disambiguation.QueriedTitle)
}

func TestResolver_ResolveTitle_FallbackWithoutOptions(t *testing.T) {
	r, kb := newTestResolver(t, nil)
	ctx := context.Background()

	kb.EXPECT().Page(ctx, "Empty").Return(nil, &mediawiki.DisambiguationError{Title: "Empty"})

	outcome, err := r.ResolveTitle(ctx, "Empty", RandomFallback)
	require.NoError(t, err)
	assert.Equal(t, Disambiguated, outcome.Kind)
	assert.Empty(t, outcome.Disambiguation.Options)
}

func TestNewResolver_Defaults(t *testing.T) {
	r := NewResolver(nil, nil)
	assert.Equal(t, DefaultBatchConcurrency, r.concurrency)
	assert.NotNil(t, r.pick)

	r = NewResolver(nil, &ResolverConfig{BatchConcurrency: 9})
	assert.Equal(t, 9, r.concurrency)
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "resolved", Resolved.String())
	assert.Equal(t, "disambiguated", Disambiguated.String())
	assert.Equal(t, "not_found", NotFound.String())
}
