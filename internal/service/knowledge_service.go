package service

import (
	"context"
	"time"

	"campus-ai-be/internal/dto"
	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/pkg/logger"
	"campus-ai-be/internal/repository/specification"
	"campus-ai-be/internal/repository/unitofwork"
	"campus-ai-be/pkg/connectivity"
	"campus-ai-be/pkg/knowledge"
	"campus-ai-be/pkg/storage"

	"github.com/patrickmn/go-cache"
)

const (
	knowledgeSourceBase = "base"
	knowledgeSourceLive = "live"

	contextCacheKey = "knowledge_context"
	contextCacheTTL = 5 * time.Minute
)

// IKnowledgeService assembles the grounding context for the assistant. The
// static catalog always serves; enabled remote documents are merged in on top
// when the blob store is reachable.
type IKnowledgeService interface {
	GetContext(ctx context.Context) (*dto.KnowledgeContextResponse, error)
	// RenderedContext returns the prompt-ready string form of the context.
	RenderedContext(ctx context.Context) (string, error)
}

type knowledgeService struct {
	uowFactory unitofwork.RepositoryFactory
	fetcher    storage.PayloadFetcher
	latch      *connectivity.Latch
	logger     logger.ILogger
	cache      *cache.Cache
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	fetcher storage.PayloadFetcher,
	latch *connectivity.Latch,
	log logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory: uowFactory,
		fetcher:    fetcher,
		latch:      latch,
		logger:     log,
		cache:      cache.New(contextCacheTTL, 10*time.Minute),
	}
}

func (s *knowledgeService) GetContext(ctx context.Context) (*dto.KnowledgeContextResponse, error) {
	items, source := s.assemble(ctx)

	res := &dto.KnowledgeContextResponse{
		Items:  make([]dto.KnowledgeItemDTO, 0, len(items)),
		Source: source,
	}
	for _, it := range items {
		res.Items = append(res.Items, dto.KnowledgeItemDTO{
			Id:       it.Id,
			Category: string(it.Category),
			Title:    it.Title,
			Content:  it.Content,
			Link:     it.Link,
		})
	}

	return res, nil
}

func (s *knowledgeService) RenderedContext(ctx context.Context) (string, error) {
	if cached, found := s.cache.Get(contextCacheKey); found {
		return cached.(string), nil
	}

	items, source := s.assemble(ctx)
	rendered := knowledge.RenderContext(items)

	// Only cache the live view. The base view is free to rebuild and caching
	// it would delay recovery once documents become reachable again.
	if source == knowledgeSourceLive {
		s.cache.Set(contextCacheKey, rendered, cache.DefaultExpiration)
	}

	return rendered, nil
}

// assemble never fails: any augmentation error degrades to the static
// catalog. Partial success is kept, a single unreadable document does not
// discard the others.
func (s *knowledgeService) assemble(ctx context.Context) ([]entity.KnowledgeItem, string) {
	items := knowledge.Catalog()

	if !s.latch.Online() {
		return items, knowledgeSourceBase
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.RagDocumentRepository().FindAll(ctx,
		specification.EnabledOnly{},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		// Listing failures feed the latch too: a permission denial here must
		// stop every later remote call, not just payload fetches.
		s.latch.Observe(err)
		s.logger.Warn("KnowledgeService", "Failed to list remote documents, serving base catalog", map[string]interface{}{"error": err.Error()})
		return items, knowledgeSourceBase
	}

	live := false
	for _, doc := range docs {
		contents, err := s.fetcher.Fetch(ctx, doc.ActivePath)
		if err != nil {
			if s.latch.Observe(err) == connectivity.StateOffline {
				s.logger.Warn("KnowledgeService", "Blob store denied access, latching offline", map[string]interface{}{"path": doc.ActivePath})
				break
			}
			s.logger.Warn("KnowledgeService", "Failed to fetch document payload", map[string]interface{}{"path": doc.ActivePath, "error": err.Error()})
			continue
		}
		items = append(items, knowledge.ExpandPayload(doc, contents)...)
		live = true
	}

	if live {
		return items, knowledgeSourceLive
	}
	return items, knowledgeSourceBase
}
