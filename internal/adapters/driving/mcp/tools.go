package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

// Choices accepted by the choose tool.
const (
	ChoiceFaqJA     = "faq_ja"
	ChoiceFaqEN     = "faq_en"
	ChoiceAskAnyway = "ask_anyway"
	ChoiceUseCache  = "use_cache"
	ChoiceAskRemote = "ask_remote"
	ChoiceCancel    = "cancel"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question about the RSJP/RWJP programs"`
}

// ChooseInput is the input schema for the choose tool.
type ChooseInput struct {
	SuggestionID string `json:"suggestion_id" jsonschema:"the suggestion_id returned by ask"`
	Choice       string `json:"choice" jsonschema:"one of faq_ja, faq_en, ask_anyway, use_cache, ask_remote, cancel"`
}

// FaqMatchInput is the input schema for the faq_match tool.
type FaqMatchInput struct {
	Question string `json:"question" jsonschema:"the question to match against the built-in FAQ"`
}

// ResolutionOutput is the pipeline state returned by ask and choose.
type ResolutionOutput struct {
	State        string           `json:"state"`
	Question     string           `json:"question,omitempty"`
	SuggestionID string           `json:"suggestion_id,omitempty"`
	Choices      []string         `json:"choices,omitempty"`
	Faq          *FaqSuggestion   `json:"faq,omitempty"`
	Cache        *CacheSuggestion `json:"cache,omitempty"`
	Banner       string           `json:"banner,omitempty"`
	Answer       string           `json:"answer,omitempty"`
	Note         string           `json:"note,omitempty"`
	Error        string           `json:"error,omitempty"`
	Disclaimer   string           `json:"disclaimer,omitempty"`
}

// FaqSuggestion describes a matched FAQ group.
type FaqSuggestion struct {
	Title    string  `json:"title"`
	Phrasing string  `json:"matched_phrasing"`
	Score    float64 `json:"score"`
	AnswerJA string  `json:"answer_ja"`
	AnswerEN string  `json:"answer_en"`
}

// CacheSuggestion describes a similar saved question.
type CacheSuggestion struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	SavedAt  string  `json:"saved_at"`
	Score    float64 `json:"score"`
}

// FaqMatchOutput is the output schema for the faq_match tool.
type FaqMatchOutput struct {
	Matched bool           `json:"matched"`
	Match   *FaqSuggestion `json:"match,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "ask",
		Description: "Ask a question about the RSJP/RWJP programs. " +
			"If a built-in FAQ entry or a saved answer matches, the result is a suggestion " +
			"that must be answered with the choose tool.",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "choose",
		Description: "Answer a pending suggestion returned by ask",
	}, s.handleChoose)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "faq_match",
		Description: "Find the best matching built-in FAQ entry without asking anything",
	}, s.handleFaqMatch)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, ResolutionOutput, error) {
	// Questions the resolver will refuse do not consume the cooldown.
	refused := strings.TrimSpace(input.Question) == "" || s.ports.Resolver.Current().Kind.IsAwaiting()
	if gate := s.ports.Cooldown; gate != nil && !refused && !gate.Allow() {
		return nil, ResolutionOutput{}, fmt.Errorf("%w (%ds)", domain.ErrCooldownActive, gate.RemainingSeconds())
	}

	res, err := s.ports.Resolver.Ask(ctx, input.Question)
	return s.resolutionResult(res, err)
}

// handleChoose handles the choose tool invocation.
func (s *Server) handleChoose(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ChooseInput,
) (*mcp.CallToolResult, ResolutionOutput, error) {
	r := s.ports.Resolver
	id := input.SuggestionID

	var (
		res domain.Resolution
		err error
	)
	switch input.Choice {
	case ChoiceFaqJA:
		res, err = r.UseFaqAnswer(id, domain.LanguageJA)
	case ChoiceFaqEN:
		res, err = r.UseFaqAnswer(id, domain.LanguageEN)
	case ChoiceAskAnyway:
		res, err = r.AskAnyway(ctx, id)
	case ChoiceUseCache:
		res, err = r.UseCachedAnswer(id)
	case ChoiceAskRemote:
		res, err = r.AskRemoteInstead(ctx, id)
	case ChoiceCancel:
		res, err = r.Cancel(id)
	default:
		return nil, ResolutionOutput{}, fmt.Errorf("%w: %q", ErrUnknownChoice, input.Choice)
	}
	return s.resolutionResult(res, err)
}

// handleFaqMatch handles the faq_match tool invocation.
func (s *Server) handleFaqMatch(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FaqMatchInput,
) (*mcp.CallToolResult, FaqMatchOutput, error) {
	m, ok := s.ports.Corpus.FindBestMatch(input.Question)
	if !ok {
		return nil, FaqMatchOutput{}, nil
	}
	return nil, FaqMatchOutput{Matched: true, Match: faqSuggestion(m)}, nil
}

// resolutionResult maps a resolver step to tool output. A failed remote call
// is a normal result carrying the error text; other errors fail the call.
func (s *Server) resolutionResult(res domain.Resolution, err error) (*mcp.CallToolResult, ResolutionOutput, error) {
	if err != nil && res.Kind != domain.ResolutionFailed {
		return nil, ResolutionOutput{}, err
	}
	return nil, toOutput(res), nil
}

func toOutput(res domain.Resolution) ResolutionOutput {
	out := ResolutionOutput{
		State:        res.Kind.String(),
		Question:     res.Question,
		SuggestionID: res.SuggestionID,
		Banner:       res.Banner(),
		Answer:       res.Answer,
		Note:         res.Note(),
	}

	switch res.Kind {
	case domain.ResolutionAwaitingFaqChoice:
		out.Choices = []string{ChoiceFaqJA, ChoiceFaqEN, ChoiceAskAnyway, ChoiceCancel}
		out.Faq = faqSuggestion(*res.Faq)
	case domain.ResolutionAwaitingCacheChoice:
		out.Choices = []string{ChoiceUseCache, ChoiceAskRemote, ChoiceCancel}
		out.Cache = cacheSuggestion(*res.Cache)
	case domain.ResolutionFromSimilarCache:
		out.Cache = cacheSuggestion(*res.Cache)
	case domain.ResolutionFailed:
		if res.Err != nil {
			out.Error = res.Err.Error()
		}
	}

	if res.Kind.IsTerminal() && res.Kind != domain.ResolutionFailed {
		out.Disclaimer = domain.DisclaimerBlock()
	}
	return out
}

func faqSuggestion(m domain.FaqMatch) *FaqSuggestion {
	return &FaqSuggestion{
		Title:    m.Group.Title,
		Phrasing: m.Phrasing,
		Score:    m.Score,
		AnswerJA: m.Group.Answers.JA,
		AnswerEN: m.Group.Answers.EN,
	}
}

func cacheSuggestion(m domain.CacheMatch) *CacheSuggestion {
	return &CacheSuggestion{
		Question: m.Entry.Question,
		Answer:   m.Entry.Answer,
		SavedAt:  m.Entry.SavedTime().Format(time.RFC3339),
		Score:    m.Score,
	}
}
