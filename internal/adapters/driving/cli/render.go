package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/faqdesk/internal/core/domain"
)

const savedAtLayout = "2006-01-02 15:04"

// resolutionView is the JSON form of a resolution.
type resolutionView struct {
	State        string          `json:"state"`
	Question     string          `json:"question"`
	SuggestionID string          `json:"suggestion_id,omitempty"`
	Faq          *faqView        `json:"faq,omitempty"`
	Cache        *cacheMatchView `json:"cache,omitempty"`
	Language     string          `json:"language,omitempty"`
	Answer       string          `json:"answer,omitempty"`
	RemoteCalled bool            `json:"remote_called"`
	Error        string          `json:"error,omitempty"`
	Disclaimers  []string        `json:"disclaimers,omitempty"`
}

type faqView struct {
	Title    string  `json:"title"`
	Language string  `json:"language"`
	Phrasing string  `json:"phrasing"`
	Score    float64 `json:"score"`
}

type cacheMatchView struct {
	Question string  `json:"question"`
	SavedAt  string  `json:"saved_at"`
	Score    float64 `json:"score"`
}

func newResolutionView(r domain.Resolution) resolutionView {
	v := resolutionView{
		State:        r.Kind.String(),
		Question:     r.Question,
		SuggestionID: r.SuggestionID,
		Language:     r.Language.String(),
		Answer:       r.Answer,
		RemoteCalled: r.RemoteCalled(),
	}
	if r.Faq != nil {
		v.Faq = &faqView{
			Title:    r.Faq.Group.Title,
			Language: r.Faq.Language.String(),
			Phrasing: r.Faq.Phrasing,
			Score:    r.Faq.Score,
		}
	}
	if r.Cache != nil {
		v.Cache = &cacheMatchView{
			Question: r.Cache.Entry.Question,
			SavedAt:  r.Cache.Entry.SavedTime().Format(savedAtLayout),
			Score:    r.Cache.Score,
		}
	}
	if r.Err != nil {
		v.Error = r.Err.Error()
	}
	if r.Kind.IsTerminal() && r.Kind != domain.ResolutionFailed {
		v.Disclaimers = domain.Disclaimers
	}
	return v
}

// printResolution writes a resolution the way the one-shot ask command shows it.
func printResolution(w io.Writer, r domain.Resolution) {
	switch r.Kind {
	case domain.ResolutionAwaitingFaqChoice:
		fmt.Fprintln(w, "A matching FAQ entry was found.")
		fmt.Fprintf(w, "  FAQ:        %s\n", r.Faq.Group.Title)
		fmt.Fprintf(w, "  Matched:    %s\n", r.Faq.Phrasing)
		fmt.Fprintf(w, "  Similarity: %.2f\n", r.Faq.Score)
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.Note())
		fmt.Fprintln(w, "  --lang ja      use the Japanese answer")
		fmt.Fprintln(w, "  --lang en      use the English answer")
		fmt.Fprintln(w, "  --ask-anyway   skip the FAQ and ask the remote service")
	case domain.ResolutionAwaitingCacheChoice:
		fmt.Fprintln(w, "A similar question was answered before.")
		fmt.Fprintf(w, "  Question:   %s\n", r.Cache.Entry.Question)
		fmt.Fprintf(w, "  Saved at:   %s\n", r.Cache.Entry.SavedTime().Format(savedAtLayout))
		fmt.Fprintf(w, "  Similarity: %.2f\n", r.Cache.Score)
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.Note())
		fmt.Fprintln(w, "  --use-cache    use the saved answer (no API call)")
		fmt.Fprintln(w, "  --ask-remote   ask the remote service instead")
	case domain.ResolutionFailed:
		fmt.Fprintf(w, "Error: %v\n", r.Err)
	default:
		if !r.Kind.IsTerminal() {
			return
		}
		printAnswer(w, r)
	}
}

func printAnswer(w io.Writer, r domain.Resolution) {
	if banner := r.Banner(); banner != "" {
		fmt.Fprintln(w, banner)
	}
	if r.Kind == domain.ResolutionFromSimilarCache && r.Cache != nil {
		fmt.Fprintf(w, "Matched question: %s\n", r.Cache.Entry.Question)
		fmt.Fprintf(w, "Saved at: %s\n", r.Cache.Entry.SavedTime().Format(savedAtLayout))
		fmt.Fprintf(w, "Similarity: %.2f\n", r.Cache.Score)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.TrimSpace(r.Answer))
	fmt.Fprintln(w)
	if note := r.Note(); note != "" {
		fmt.Fprintln(w, note)
	}
	fmt.Fprintln(w, "----")
	fmt.Fprintln(w, domain.DisclaimerBlock())
}
