package knowledge

import (
	"strings"
	"testing"

	"campus-ai-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRenderContextFormat(t *testing.T) {
	items := []entity.KnowledgeItem{
		{Id: "a", Category: entity.KnowledgeCategoryTimetable, Title: "COMP Sem 3: Data Structures", Content: "Stacks and Queues.", Link: "https://kjsce.somaiya.edu/media/pdf/DS.pdf"},
		{Id: "b", Category: entity.KnowledgeCategoryPolicy, Title: "Attendance Requirement", Content: "Minimum 75% attendance."},
	}

	got := RenderContext(items)

	want := "[TIMETABLE] COMP Sem 3: Data Structures: Stacks and Queues. URL:https://kjsce.somaiya.edu/media/pdf/DS.pdf" +
		"\n\n" +
		"[POLICY] Attendance Requirement: Minimum 75% attendance."
	assert.Equal(t, want, got)
}

func TestRenderContextDeterministic(t *testing.T) {
	items := Catalog()

	first := RenderContext(items)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, RenderContext(items), "same knowledge base must render byte-identical output")
	}
}

func TestRenderContextEmpty(t *testing.T) {
	assert.Equal(t, "", RenderContext(nil))
}

func TestRenderContextOmitsURLWhenNoLink(t *testing.T) {
	items := []entity.KnowledgeItem{
		{Id: "p", Category: entity.KnowledgeCategoryPolicy, Title: "Hostel Gate Policy", Content: "Return by 10:00 PM."},
	}
	got := RenderContext(items)
	assert.False(t, strings.Contains(got, "URL:"))
}

func TestExpandPayloadIndexedIds(t *testing.T) {
	doc := &entity.RagDocument{
		Id:       uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		Title:    "Infra Policy",
		Category: entity.KnowledgeCategoryPolicy,
	}

	items := ExpandPayload(doc, []string{"first", "second"})

	assert.Len(t, items, 2)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555_0", items[0].Id)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555_1", items[1].Id)
	assert.Equal(t, "first", items[0].Content)
	assert.Equal(t, doc.Title, items[1].Title)
	assert.Equal(t, doc.Category, items[1].Category)
}

func TestCatalogIsStable(t *testing.T) {
	a := Catalog()
	b := Catalog()
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}
