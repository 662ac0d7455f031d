package knowledge

import (
	"fmt"
	"strings"

	"campus-ai-be/internal/entity"
)

// RenderContext serializes a knowledge base into the grounding text fed to
// the text-inference prompt. The format is a contract with the system
// instruction: "[CATEGORY] Title: Content URL:<link>", items separated by a
// blank line, category upper-cased, URL segment omitted when there is no
// link. Output is byte-identical for identical input.
func RenderContext(items []entity.KnowledgeItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		line := fmt.Sprintf("[%s] %s: %s", strings.ToUpper(string(item.Category)), item.Title, item.Content)
		if item.Link != "" {
			line += " URL:" + item.Link
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n\n")
}

// ExpandPayload turns one remote document's payload strings into knowledge
// items, one per string, ids suffixed with the payload index.
func ExpandPayload(doc *entity.RagDocument, contents []string) []entity.KnowledgeItem {
	items := make([]entity.KnowledgeItem, 0, len(contents))
	for i, text := range contents {
		items = append(items, entity.KnowledgeItem{
			Id:       fmt.Sprintf("%s_%d", doc.Id, i),
			Category: doc.Category,
			Title:    doc.Title,
			Content:  text,
		})
	}
	return items
}
