package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/importer"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/auth"
)

// BatchSize caps the writes of one atomic commit.
const BatchSize = 500

// UpsertBooks matches incoming books to stored ones by internal id and writes them
// in sequential batches. A matched book is overwritten in full at its existing id,
// anything else is inserted under a fresh id. Counts are returned only when every
// batch committed.
func (s *Service) UpsertBooks(ctx context.Context, sess auth.Session, books []model.BookInput) (model.UpsertResult, error) {
	if err := requireAdmin(sess); err != nil {
		return model.UpsertResult{}, err
	}

	wanted := make(map[string]struct{})
	for _, b := range books {
		if b.InternalID != "" {
			wanted[b.InternalID] = struct{}{}
		}
	}
	existing := make(map[string]string)
	if len(wanted) > 0 {
		refs, err := s.repo.InternalIDIndex(ctx)
		if err != nil {
			return model.UpsertResult{}, errors.Wrap(err, "internal id index")
		}
		existing = s.matchInternalIDs(refs, wanted)
	}

	now := s.now()
	docs := make([]model.Book, 0, len(books))
	overwrite := make([]bool, 0, len(books))
	for _, in := range books {
		id, ok := "", false
		if in.InternalID != "" {
			id, ok = existing[in.InternalID]
		}
		if !ok {
			id = s.newID()
		}
		doc := in.Book(id)
		if doc.DateAdded.IsZero() {
			doc.DateAdded = now
		}
		docs = append(docs, doc)
		overwrite = append(overwrite, ok)
	}

	var res model.UpsertResult
	for start := 0; start < len(docs); start += BatchSize {
		end := min(start+BatchSize, len(docs))
		batch := start/BatchSize + 1
		if err := s.repo.CommitBookBatch(ctx, docs[start:end]); err != nil {
			bookBatches.WithLabelValues("failed").Inc()
			s.log.Error("upsert aborted",
				zap.Int("batch", batch),
				zap.Int("committedAdded", res.Added),
				zap.Int("committedUpdated", res.Updated),
				zap.Int("uncommitted", len(docs)-start),
				zap.Error(err))
			return model.UpsertResult{}, errors.Wrapf(err, "commit batch %d", batch)
		}
		bookBatches.WithLabelValues("committed").Inc()
		for _, upd := range overwrite[start:end] {
			if upd {
				res.Updated++
			} else {
				res.Added++
			}
		}
	}

	upsertedBooks.WithLabelValues("added").Add(float64(res.Added))
	upsertedBooks.WithLabelValues("updated").Add(float64(res.Updated))
	s.log.Info("upsert done", zap.Int("added", res.Added), zap.Int("updated", res.Updated))
	return res, nil
}

// matchInternalIDs maps the wanted internal ids to stored book ids.
// When several stored books share an internal id the last one scanned wins.
func (s *Service) matchInternalIDs(refs []model.InternalIDRef, wanted map[string]struct{}) map[string]string {
	matched := make(map[string]string, len(wanted))
	for _, ref := range refs {
		if _, ok := wanted[ref.InternalID]; !ok {
			continue
		}
		if prev, dup := matched[ref.InternalID]; dup {
			s.log.Warn("duplicate internal id",
				zap.String("internalId", ref.InternalID),
				zap.String("dropped", prev),
				zap.String("kept", ref.ID))
		}
		matched[ref.InternalID] = ref.ID
	}
	return matched
}

// PreviewSheet decodes and validates a sheet without writing anything.
func (s *Service) PreviewSheet(r io.Reader, format importer.Format) ([]model.ParsedRow, error) {
	rows, err := importer.ReadSheet(r, format)
	if err != nil {
		return nil, err
	}
	return importer.ParseRows(rows), nil
}

// ImportSheet commits the valid rows of a sheet and reports the invalid ones.
func (s *Service) ImportSheet(ctx context.Context, sess auth.Session, r io.Reader, format importer.Format) (model.ImportReport, error) {
	if err := requireAdmin(sess); err != nil {
		return model.ImportReport{}, err
	}
	parsed, err := s.PreviewSheet(r, format)
	if err != nil {
		return model.ImportReport{}, err
	}
	valid := importer.ValidBooks(parsed)
	invalid := importer.InvalidRows(parsed)
	importedRows.WithLabelValues("valid").Add(float64(len(valid)))
	importedRows.WithLabelValues("invalid").Add(float64(len(invalid)))

	report := model.ImportReport{
		Errors:      len(invalid),
		InvalidRows: invalid,
	}
	if len(valid) == 0 {
		return report, nil
	}
	res, err := s.UpsertBooks(ctx, sess, valid)
	if err != nil {
		return model.ImportReport{}, err
	}
	report.Added, report.Updated = res.Added, res.Updated
	return report, nil
}

// ExportSheet writes the whole catalog in the import column layout.
func (s *Service) ExportSheet(ctx context.Context, w io.Writer, format importer.Format) error {
	books, err := s.repo.AllBooks(ctx)
	if err != nil {
		return err
	}
	return importer.WriteSheet(w, format, books)
}
