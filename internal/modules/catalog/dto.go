package catalog

import "github.com/caffeine-junky/jobconnect/internal/pkg/optional"

type CreateServiceRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"required,max=1000"`
}

type UpdateServiceRequest struct {
	Description optional.Value[string] `json:"description"`
}

type ListQuery struct {
	Name  string
	Skip  int
	Limit int
}
