package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upsertedBooks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "catalog",
		Name:      "upserted_books_total",
		Help:      "Books written by the upsert reconciler, by outcome.",
	}, []string{"outcome"})

	bookBatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "catalog",
		Name:      "book_batches_total",
		Help:      "Book write batches, by status.",
	}, []string{"status"})

	importedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "catalog",
		Name:      "import_rows_total",
		Help:      "Parsed sheet rows, by validity.",
	}, []string{"validity"})
)
