package domain

type CompanyIndustry struct {
	ID                  int64  `json:"industry_id"`
	Name                string `json:"industry_name"`
	CategoryName        string `json:"category_name"`
	CategoryDescription string `json:"-"`
	Description         string `json:"description"`
}

type CompanyIndustryGroup struct {
	CategoryName string            `json:"category_name"`
	Description  string            `json:"desc"`
	Industries   []CompanyIndustry `json:"industries"`
}

type CompanyIndustryHierarchy struct {
	IndustryGroups []CompanyIndustryGroup `json:"industry_groups"`
}
