package service

import (
	"context"

	"github.com/Harshitk-cp/tenancy/internal/domain"
)

type IndustryService struct {
	industries domain.IndustryStore
}

func NewIndustryService(is domain.IndustryStore) *IndustryService {
	return &IndustryService{industries: is}
}

// Hierarchy groups the industry catalog by category, keeping the order in
// which categories first appear.
func (s *IndustryService) Hierarchy(ctx context.Context) (*domain.CompanyIndustryHierarchy, error) {
	industries, err := s.industries.List(ctx)
	if err != nil {
		return nil, err
	}

	h := &domain.CompanyIndustryHierarchy{IndustryGroups: []domain.CompanyIndustryGroup{}}
	index := make(map[string]int)
	for _, ind := range industries {
		i, ok := index[ind.CategoryName]
		if !ok {
			i = len(h.IndustryGroups)
			index[ind.CategoryName] = i
			h.IndustryGroups = append(h.IndustryGroups, domain.CompanyIndustryGroup{
				CategoryName: ind.CategoryName,
				Description:  ind.CategoryDescription,
			})
		}
		h.IndustryGroups[i].Industries = append(h.IndustryGroups[i].Industries, ind)
	}
	return h, nil
}
