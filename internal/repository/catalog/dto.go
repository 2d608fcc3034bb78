package catalog

import "github.com/kailas-cloud/studentnest/internal/domain/faq"

type catalogFile struct {
	Records []recordDTO `yaml:"records"`
}

type recordDTO struct {
	ID       string   `yaml:"id"`
	Question string   `yaml:"question"`
	Answer   string   `yaml:"answer"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
}

func (d recordDTO) toDomain() (faq.Record, error) {
	return faq.New(d.ID, d.Question, d.Answer, faq.Category(d.Category), d.Tags)
}
