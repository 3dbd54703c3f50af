package wiki

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/jonathan/wikiwally/internal/types"
)

// OptionsLimit is the number of search candidates an options lookup asks for.
const OptionsLimit = types.MaxOptions

// Commands describes the bot's commands for the help listing.
var Commands = []types.CommandHelp{
	{Name: "page", Help: "Fetches an article given user input"},
	{Name: "random", Help: "Fetches a random Wikipedia article. An integer from 1 to 10 can also be entered for a list of 1 to 10 random Wikipedia articles (e.g. *.wiki random 10)*."},
	{Name: "options", Help: "Look for query options/suggestions for a given input. This may be helpful if you can't find the article you're looking for using the *page* command."},
	{Name: "help", Help: "Help page for WikiWally Bot"},
}

// Service runs the bot commands. Every command returns a payload; failures
// are reported as error payloads rather than Go errors.
type Service struct {
	kb       KnowledgeBase
	resolver *Resolver
	logger   *zap.Logger
}

// NewService creates a service over kb. A nil logger discards output and a
// nil config uses resolver defaults.
func NewService(kb KnowledgeBase, logger *zap.Logger, config *ResolverConfig) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		kb:       kb,
		resolver: NewResolver(kb, config),
		logger:   logger,
	}
}

// Page looks up the article best matching text.
func (s *Service) Page(ctx context.Context, text, requestedBy string) *types.Payload {
	compose := Composer{RequestedBy: requestedBy}
	log := s.logger.With(zap.String("command", "page"), zap.String("requested_by", requestedBy))
	log.Debug("Resolving query", zap.String("query", text))

	outcome, err := s.resolver.ResolveQuery(ctx, text)
	if err != nil {
		return s.unavailable(log, compose, err)
	}
	log.Info("Query resolved", zap.Stringer("outcome", outcome.Kind))

	switch outcome.Kind {
	case Resolved:
		return compose.Article(*outcome.Article, General)
	case Disambiguated:
		return compose.Disambiguation(text, *outcome.Disambiguation)
	default:
		return compose.PageNotFound()
	}
}

// Random returns one random article, or a listing when raw asks for more.
// A nil raw means one article.
func (s *Service) Random(ctx context.Context, raw *string, requestedBy string) *types.Payload {
	compose := Composer{RequestedBy: requestedBy}
	log := s.logger.With(zap.String("command", "random"), zap.String("requested_by", requestedBy))

	req, err := NormalizeCount(raw)
	if err != nil {
		var countErr *CountError
		if errors.As(err, &countErr) {
			log.Info("Rejected random count", zap.String("raw", countErr.Raw), zap.String("kind", string(countErr.Kind)))
			return compose.CountError(countErr)
		}
		return s.unavailable(log, compose, err)
	}
	log.Debug("Drawing random articles", zap.Int("count", req.Count))

	batch, err := s.resolver.ResolveRandomBatch(ctx, req.Count)
	if err != nil {
		return s.unavailable(log, compose, err)
	}
	for _, item := range batch.Skipped {
		log.Warn("Skipped random article", zap.String("title", item.Title), zap.String("reason", item.Reason))
	}

	if req.Count == 1 {
		if batch.Single == nil {
			return compose.PageNotFound()
		}
		log.Info("Random article resolved", zap.String("title", batch.Single.Title))
		return compose.Article(*batch.Single, RandomSingle)
	}

	log.Info("Random articles resolved", zap.Int("entries", len(batch.Entries)), zap.Int("skipped", len(batch.Skipped)))
	return compose.ArticleList(batch.Entries, batch.Skipped)
}

// Options lists up to twenty search candidates for text.
func (s *Service) Options(ctx context.Context, text, requestedBy string) *types.Payload {
	compose := Composer{RequestedBy: requestedBy}
	log := s.logger.With(zap.String("command", "options"), zap.String("requested_by", requestedBy))

	options, err := s.kb.Search(ctx, text, OptionsLimit)
	if err != nil {
		return s.unavailable(log, compose, err)
	}
	log.Info("Options found", zap.String("query", text), zap.Int("count", len(options)))
	return compose.Options(text, options)
}

// Help lists the available commands.
func (s *Service) Help(requestedBy string) *types.Payload {
	return Composer{RequestedBy: requestedBy}.Help(Commands)
}

func (s *Service) unavailable(log *zap.Logger, compose Composer, err error) *types.Payload {
	log.Error("Knowledge base request failed", zap.Error(err))
	return compose.ServiceUnavailable()
}
