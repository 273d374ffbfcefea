package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for faqdesk resources.
	uriScheme = "faqdesk://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "faq",
		Name:        "faq",
		Description: "Built-in FAQ groups with their phrasings",
		MIMEType:    "application/json",
	}, s.handleFaqResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "faq/{index}",
		Name:        "faq-group",
		Description: "Japanese and English answers of one FAQ group",
		MIMEType:    "text/plain",
	}, s.handleFaqGroupResource)
}

// handleFaqResource lists the FAQ groups.
func (s *Server) handleFaqResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type groupInfo struct {
		Index       int      `json:"index"`
		Title       string   `json:"title"`
		QuestionsJA []string `json:"questions_ja"`
		QuestionsEN []string `json:"questions_en"`
	}

	groups := s.ports.Corpus.Groups()
	infos := make([]groupInfo, len(groups))
	for i, g := range groups {
		infos[i] = groupInfo{
			Index:       i,
			Title:       g.Title,
			QuestionsJA: g.Questions.JA,
			QuestionsEN: g.Questions.EN,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling faq groups: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFaqGroupResource returns the answers of one group.
func (s *Server) handleFaqGroupResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	groups := s.ports.Corpus.Groups()

	index, ok := extractGroupIndex(req.Params.URI)
	if !ok || index >= len(groups) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	g := groups[index]

	var b strings.Builder
	b.WriteString(g.Title)
	b.WriteString("\n\n[JA]\n")
	b.WriteString(g.Answers.JA)
	b.WriteString("\n\n[EN]\n")
	b.WriteString(g.Answers.EN)

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     b.String(),
		}},
	}, nil
}

// extractGroupIndex extracts the group index from a URI like faqdesk://faq/{index}.
func extractGroupIndex(uri string) (int, bool) {
	const prefix = uriScheme + "faq/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}

	index, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}
