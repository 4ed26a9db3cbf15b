package members

import (
	"context"
	"sync"

	"github.com/lindenb1/impress/internal/domain/entities"
	apperrors "github.com/lindenb1/impress/pkg/errors"
	"go.uber.org/zap"
)

// Source is the paging data source of access records.
type Source interface {
	FetchAccesses(ctx context.Context, docID, cursor string) (entities.AccessPage, error)
}

type Option func(*List)

func WithLogger(logger *zap.Logger) Option {
	return func(l *List) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// List accumulates the access pages of one document and exposes them as
// rows. At most one fetch is outstanding at any time, and responses issued
// for a previously opened document are dropped.
type List struct {
	source Source
	logger *zap.Logger

	mu         sync.Mutex
	docID      string
	generation uint64
	pages      []entities.AccessPage
	version    uint64
	loaded     bool
	hasNext    bool
	cursor     string
	fetching   bool
	err        error

	memoOK      bool
	memoVersion uint64
	accesses    []entities.Access
	rows        []Row
}

func NewList(source Source, opts ...Option) *List {
	l := &List{
		source: source,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open switches the list to docID, dropping everything accumulated so far,
// and fetches the first page.
func (l *List) Open(ctx context.Context, docID string) error {
	l.mu.Lock()
	l.generation++
	l.docID = docID
	l.pages = nil
	l.version++
	l.loaded = false
	l.hasNext = false
	l.cursor = ""
	l.err = nil
	l.fetching = true
	gen := l.generation
	l.mu.Unlock()

	return l.fetch(ctx, gen, docID, "")
}

// FetchNextPage requests the page after the last one received. It reports
// whether a request was issued: nothing is requested while another fetch is
// in flight, after an error, or once the last page has arrived.
func (l *List) FetchNextPage(ctx context.Context) (bool, error) {
	l.mu.Lock()
	if l.docID == "" || l.fetching || l.err != nil || !l.loaded || !l.hasNext {
		l.mu.Unlock()
		return false, nil
	}
	l.fetching = true
	gen, docID, cursor := l.generation, l.docID, l.cursor
	l.mu.Unlock()

	return true, l.fetch(ctx, gen, docID, cursor)
}

func (l *List) fetch(ctx context.Context, gen uint64, docID, cursor string) error {
	page, err := l.source.FetchAccesses(ctx, docID, cursor)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		l.logger.Debug("dropping response for a replaced document",
			zap.String("doc_id", docID),
			zap.Uint64("generation", gen),
		)
		return nil
	}

	l.fetching = false

	if err != nil {
		l.err = err
		l.logger.Warn("failed to fetch accesses",
			zap.String("doc_id", docID),
			zap.String("cursor", cursor),
			zap.Error(err),
		)
		return err
	}

	pages := make([]entities.AccessPage, len(l.pages), len(l.pages)+1)
	copy(pages, l.pages)
	l.pages = append(pages, page)
	l.version++
	l.loaded = true
	l.hasNext = page.HasNext()
	l.cursor = page.Next

	return nil
}

// View returns the current state. The returned rows are shared and must not
// be modified.
func (l *List) View() View {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil {
		return View{Status: StatusError, Causes: apperrors.Causes(l.err)}
	}

	if !l.loaded {
		return View{Status: StatusLoading}
	}

	l.derive()

	return View{
		Status:       StatusReady,
		Rows:         l.rows,
		FetchingMore: l.fetching,
		HasMore:      l.hasNext,
	}
}

// Accesses returns the accumulated accesses, including those without a user.
func (l *List) Accesses() []entities.Access {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.derive()

	return l.accesses
}

func (l *List) Document() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.docID
}

func (l *List) Fetching() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fetching
}

func (l *List) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err == nil && l.hasNext
}

// derive rebuilds accesses and rows when the page set has changed.
// Callers hold l.mu.
func (l *List) derive() {
	if l.memoOK && l.memoVersion == l.version {
		return
	}

	l.accesses = Accumulate(l.pages)
	l.rows = BuildRows(l.accesses)
	l.memoVersion = l.version
	l.memoOK = true
}
