package recommend

import (
	"context"

	"github.com/hasnainyaqub/Microservice-App/internal/llm"
	"github.com/hasnainyaqub/Microservice-App/internal/menu"
)

// Cache is the menu cache seen by the service. Both operations are
// best-effort; implementations must never fail a request.
type Cache interface {
	Get(ctx context.Context, branch int) ([]menu.Item, bool)
	Set(ctx context.Context, branch int, items []menu.Item)
}

type Service struct {
	repo   menu.Repository
	cache  Cache
	policy BudgetPolicy
	llm    llm.Client
	config Config
}

func NewService(
	repo menu.Repository,
	cache Cache,
	policy BudgetPolicy,
	llmClient llm.Client,
	config Config,
) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		policy: policy,
		llm:    llmClient,
		config: config,
	}
}

func (s *Service) Mode() Mode {
	return s.config.Mode
}

// --------------------------------------------------
// Menu resolution: cache → store, write-through
// --------------------------------------------------
func (s *Service) resolveMenu(ctx context.Context, branch int) ([]menu.Item, error) {
	if items, ok := s.cache.Get(ctx, branch); ok && len(items) > 0 {
		return items, nil
	}

	items, err := s.repo.FetchMenu(ctx, branch)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, branch, items)
	return items, nil
}

// --------------------------------------------------
// Local variant: score, sort, build 3 rotated deals
// --------------------------------------------------
func (s *Service) Recommend(
	ctx context.Context,
	branch int,
	q Question,
) (*Recommendation, error) {

	envelope := s.policy.Range(q.Peoples, q.Budget, q.Mood)

	items, err := s.resolveMenu(ctx, branch)
	if err != nil {
		return nil, err
	}

	popularity, err := s.repo.FetchRecentOrders(ctx, branch, s.config.PopularityWindowDays)
	if err != nil {
		return nil, err
	}

	scored := s.config.FilterAndScore(items, q, popularity)

	rec := &Recommendation{
		Branch:      branch,
		Peoples:     q.Peoples,
		Mood:        q.Mood,
		MealTime:    q.MealTime,
		BudgetType:  q.Budget,
		BudgetLimit: envelope.Hard,
		Deals:       []Deal{},
	}

	if len(scored) == 0 {
		return rec, nil
	}

	priority := s.config.CategoryPriority(q.MealTime)

	for i, shift := range s.config.RotationOffsets {
		dealItems, totalCost := BuildDeal(scored, q.Peoples, envelope, priority, shift)

		rec.Deals = append(rec.Deals, Deal{
			DealNumber: i + 1,
			Items:      dealItems,
			TotalCost:  totalCost,
		})
	}

	return rec, nil
}

// --------------------------------------------------
// LLM variant: prompt, complete, parse
// --------------------------------------------------

type SuggestionResponse struct {
	Branch      int              `json:"branch"`
	Suggestions []llm.Suggestion `json:"suggestions"`
}

func (s *Service) RecommendLLM(
	ctx context.Context,
	branch int,
	q Question,
) (*SuggestionResponse, error) {

	items, err := s.resolveMenu(ctx, branch)
	if err != nil {
		return nil, err
	}

	resp := &SuggestionResponse{
		Branch:      branch,
		Suggestions: []llm.Suggestion{},
	}

	// An empty branch menu has nothing to rank; skip the model call.
	if len(items) == 0 {
		return resp, nil
	}

	popularity, err := s.repo.FetchRecentOrders(ctx, branch, s.config.PopularityWindowDays)
	if err != nil {
		return nil, err
	}

	prompt := llm.BuildRecommendPrompt(branch, items, popularity, llm.Preferences{
		Peoples: q.Peoples,
		Mood:    q.Mood,
		Spice:   q.SpiceLvl,
		Avoid:   q.AvoidAnything,
		Budget:  q.Budget,
	})

	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	suggestions, err := llm.ParseSuggestions(raw)
	if err != nil {
		return nil, err
	}

	// The avoid filter holds for model output too.
	kept := []llm.Suggestion{}
	for _, sug := range suggestions {
		if Excluded(menu.Item{Name: sug.Name}, q.AvoidAnything) {
			continue
		}
		kept = append(kept, sug)
	}

	resp.Suggestions = kept
	return resp, nil
}
