package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"finsage/domain"
	"finsage/llm"
	"finsage/repository"
)

// AdvisorService turns profile data into prompts for a text generator.
// Generation failures are never returned: every operation degrades to its
// canned answer.
type AdvisorService struct {
	gen      llm.Generator
	cache    repository.CacheRepository
	profiles *ProfileService
	logger   *logrus.Logger
	ttl      time.Duration
}

// NewAdvisorService creates an AdvisorService. gen may be nil, in which case
// every operation answers with its fallback text.
func NewAdvisorService(
	gen llm.Generator,
	cache repository.CacheRepository,
	profiles *ProfileService,
	logger *logrus.Logger,
	ttl time.Duration,
) *AdvisorService {
	if ttl <= 0 {
		ttl = DefaultAdviceTTL
	}
	return &AdvisorService{gen: gen, cache: cache, profiles: profiles, logger: logger, ttl: ttl}
}

// Enabled reports whether a generator is configured.
func (s *AdvisorService) Enabled() bool {
	return s.gen != nil
}

// Advice asks for a financial health review of the given digest.
func (s *AdvisorService) Advice(ctx context.Context, req domain.AdviceRequest) domain.AdviceResponse {
	goals := req.Goals
	if goals == "" {
		goals = "Not specified"
	}

	prompt := fmt.Sprintf(`
As a financial advisor, provide personalized advice based on the following financial information:

Monthly Income: ₹%s
Fixed Expenses: ₹%s
Variable Expenses: ₹%s
Investments: %s
Loans: %s

Financial Goals: %s

Please provide:
1. A brief analysis of current financial health
2. 3-5 specific actionable recommendations for improvement
3. Potential investment opportunities considering Indian market conditions
4. Suggestions for expense optimization

Format your response in clear sections with bullet points where appropriate.
`,
		jsNumber(req.Income), jsNumber(req.FixedExpenses), jsNumber(req.VariableExpenses),
		toJSON(req.Investments), toJSON(req.Loans), goals)

	return s.generate(ctx, "advice", prompt, FallbackAdvice)
}

// AdviceForUser builds the digest from the user's stored profile.
func (s *AdvisorService) AdviceForUser(ctx context.Context, userID, goals string) (domain.AdviceResponse, error) {
	f, err := s.profiles.GetFinances(ctx, userID)
	if err != nil {
		return domain.AdviceResponse{}, err
	}

	return s.Advice(ctx, adviceRequest(f, goals)), nil
}

// Ask answers a free-form question in the context of the user's profile.
func (s *AdvisorService) Ask(ctx context.Context, userID, question string) (domain.AdviceResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.AdviceResponse{}, invalid("question", "is required")
	}
	if len(question) > MaxQuestionLen {
		return domain.AdviceResponse{}, invalid("question", "must be at most %d characters", MaxQuestionLen)
	}

	f, err := s.profiles.GetFinances(ctx, userID)
	if err != nil {
		return domain.AdviceResponse{}, err
	}

	prompt := fmt.Sprintf(`
As a financial advisor, answer the following question from a user with this financial profile:

Monthly Income: ₹%s
Fixed Expenses: ₹%s
Variable Expenses: ₹%s
Investments: %s
Loans: %s

User's question: "%s"

Provide a detailed, helpful response focused on Indian financial context. Format your response in markdown with headings, bullet points, and emphasis where appropriate.
`,
		jsNumber(f.Income.Total()), jsNumber(f.FixedExpenses.Total()), jsNumber(f.VariableExpenses.Total()),
		toJSON(f.Investments), toJSON(f.Loans), question)

	return s.generate(ctx, "ask", prompt, FallbackQuestion), nil
}

// SimulateScenario asks for a narrative projection of a what-if scenario.
func (s *AdvisorService) SimulateScenario(ctx context.Context, req domain.ScenarioAdviceRequest) (domain.AdviceResponse, error) {
	if len(req.Scenario) == 0 {
		return domain.AdviceResponse{}, invalid("scenario", "is required")
	}

	prompt := fmt.Sprintf(`
As a financial simulator, analyze this "What If" scenario:

Current financial situation:
%s

Scenario to simulate:
%s

Please provide:
1. Numerical projections over 1, 5, and 10 years
2. Impact on savings, net worth, and debt-to-income ratio
3. Pros and cons of this scenario
4. Alternative approaches to consider

Please focus on realistic outcomes relevant to the Indian financial context.
`, toJSON(req.Current), toJSON(req.Scenario))

	return s.generate(ctx, "scenario", prompt, FallbackScenario), nil
}

// AnalyzeSpending asks for a review of spending behavior.
func (s *AdvisorService) AnalyzeSpending(ctx context.Context, transactions []domain.Transaction) (domain.AdviceResponse, error) {
	if len(transactions) == 0 {
		return domain.AdviceResponse{}, invalid("transactions", "at least one transaction is required")
	}

	prompt := fmt.Sprintf(`
As a spending behavior analyst, review these transactions:

%s

Please provide:
1. Key spending patterns and categories breakdown
2. Unusual or inefficient spending patterns
3. 3-5 specific recommendations for saving money
4. Categorize spending into essential vs non-essential

Consider Indian context and local spending categories like UPI, e-commerce, etc.
`, toJSON(transactions))

	return s.generate(ctx, "spending", prompt, FallbackSpending), nil
}

// BackwardAnalysis reviews past decisions. Decisions without a description
// or a positive amount are dropped; if none remain the generator is not
// called.
func (s *AdvisorService) BackwardAnalysis(ctx context.Context, decisions []domain.HistoricalDecision) domain.AdviceResponse {
	valid := make([]domain.HistoricalDecision, 0, len(decisions))
	for _, d := range decisions {
		if strings.TrimSpace(d.Description) != "" && d.Amount > 0 {
			valid = append(valid, d)
		}
	}

	if len(valid) == 0 {
		return domain.AdviceResponse{Text: NoDecisionsMessage, Fallback: true}
	}

	prompt := fmt.Sprintf(`
As a financial analyst, review these past financial decisions:

%s

Please provide:
1. Analysis of what would have happened if these decisions were different
2. Compare actual returns with potential alternative investments
3. Lessons to learn from these past decisions
4. Recommendations for similar future decisions

Focus on Indian financial context, including Nifty/Sensex performance, real estate trends, FD rates, etc.
`, toJSON(valid))

	return s.generate(ctx, "backward", prompt, FallbackBackward)
}

func (s *AdvisorService) generate(ctx context.Context, op, prompt, fallback string) domain.AdviceResponse {
	key := cacheKey(op, prompt)
	log := s.logger.WithField("op", op)

	if s.cache != nil {
		if text, ok := s.cache.Get(ctx, key); ok {
			log.Debug("advice served from cache")
			return domain.AdviceResponse{Text: text, Cached: true}
		}
	}

	if s.gen == nil {
		return domain.AdviceResponse{Text: fallback, Fallback: true}
	}

	text, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		log.WithError(err).WithField("provider", s.gen.Name()).Error("text generation failed")
		return domain.AdviceResponse{Text: fallback, Fallback: true}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, s.ttl); err != nil {
			log.WithError(err).Warn("failed to cache advice")
		}
	}

	return domain.AdviceResponse{Text: text}
}

// cacheKey identifies a prompt without storing it.
func cacheKey(op, prompt string) string {
	return "advice:" + op + ":" + strconv.FormatUint(xxhash.Sum64String(prompt), 16)
}

func adviceRequest(f domain.Finances, goals string) domain.AdviceRequest {
	return domain.AdviceRequest{
		Income:           f.Income.Total(),
		FixedExpenses:    f.FixedExpenses.Total(),
		VariableExpenses: f.VariableExpenses.Total(),
		Investments:      f.Investments,
		Loans:            f.Loans,
		Goals:            goals,
	}
}

// jsNumber prints a number the way a template literal would.
func jsNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func toJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
