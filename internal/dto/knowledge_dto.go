package dto

type KnowledgeItemDTO struct {
	Id       string `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Link     string `json:"link,omitempty"`
}

type KnowledgeContextResponse struct {
	Items []KnowledgeItemDTO `json:"items"`
	// Source is "live" when remote documents were merged in, "base" when the
	// static catalog alone is serving.
	Source string `json:"source"`
}
