package template

type CreateTemplateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsPublic    bool   `json:"is_public"`
}

type ListTemplatesQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}
