package faqrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
	apperrors "github.com/yanqian/faq-chatbot/pkg/errors"
)

// FileRepository loads the FAQ catalog from a JSON file on disk. The file is
// read once per call; the catalog is expected to change only with deploys.
type FileRepository struct {
	path string
}

// NewFileRepository constructs a repository for the given catalog file.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load reads and decodes the catalog. Entries keep their file order.
func (r *FileRepository) Load(_ context.Context) ([]faq.Entry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeResourceError,
			fmt.Sprintf("read catalog file %s", r.path), err)
	}

	var entries []faq.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidCatalog,
			fmt.Sprintf("parse catalog file %s", r.path), err)
	}
	return entries, nil
}

var _ faq.CatalogRepository = (*FileRepository)(nil)
