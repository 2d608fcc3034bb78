// Package studentnest answers student questions from a curated FAQ catalog.
//
// A Client resolves free-text questions lexically: a clear winner is returned
// as a single answer, otherwise the closest few records are combined into one.
// An optional record store keeps community posts in collections such as
// housing, marketplace and opportunities.
package studentnest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/studentnest/internal/domain"
	"github.com/kailas-cloud/studentnest/internal/domain/faq"
	domrec "github.com/kailas-cloud/studentnest/internal/domain/record"
	dbRedis "github.com/kailas-cloud/studentnest/internal/db/redis"
	"github.com/kailas-cloud/studentnest/internal/db/sqlite"
	logpkg "github.com/kailas-cloud/studentnest/internal/logger"
	"github.com/kailas-cloud/studentnest/internal/metrics"
	"github.com/kailas-cloud/studentnest/internal/repository/catalog"
	recordrepo "github.com/kailas-cloud/studentnest/internal/repository/record"
	askuc "github.com/kailas-cloud/studentnest/internal/usecase/ask"
	browseuc "github.com/kailas-cloud/studentnest/internal/usecase/browse"
	recorduc "github.com/kailas-cloud/studentnest/internal/usecase/record"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "studentnest:"
)

// Errors returned by record operations. Use errors.Is.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrEmptyCatalog      = domain.ErrEmptyCatalog
	ErrDuplicateRecord   = domain.ErrDuplicateRecord
	ErrInvalidRecord     = domain.ErrInvalidRecord
	ErrInvalidCollection = domain.ErrInvalidCollection
	ErrNotImplemented    = domain.ErrNotImplemented
	ErrStoreUnavailable  = domain.ErrStoreUnavailable
)

// Client is the StudentNest entry point.
type Client struct {
	ask     *askuc.Service
	browse  *browseuc.Service
	records *recorduc.Service
	closer  func()
	logger  *zap.Logger
}

// New loads the catalog and, when a driver option is given, connects the record store.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{keyPrefix: defaultKeyPrefix}
	for _, o := range opts {
		o(cfg)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	var observer askuc.Observer
	if cfg.registry != nil {
		if err := metrics.RegisterAsk(cfg.registry); err != nil {
			return nil, fmt.Errorf("studentnest: register metrics: %w", err)
		}
		observer = metrics.AskObserver{}
	}

	repo, closer, err := openRecordStore(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		ask:     askuc.New(cat, nil, observer),
		browse:  browseuc.New(cat),
		records: recorduc.New(repo),
		closer:  closer,
		logger:  cfg.logger,
	}, nil
}

func loadCatalog(cfg *clientConfig) (faq.Catalog, error) {
	if !cfg.catalogSet {
		cat, err := catalog.Load(cfg.catalogPath)
		if err != nil {
			return faq.Catalog{}, fmt.Errorf("studentnest: %w", err)
		}
		return cat, nil
	}

	recs := make([]faq.Record, 0, len(cfg.records))
	for i, f := range cfg.records {
		r, err := f.toDomain()
		if err != nil {
			return faq.Catalog{}, fmt.Errorf("studentnest: record #%d: %w", i+1, err)
		}
		recs = append(recs, r)
	}
	cat, err := faq.NewCatalog(recs)
	if err != nil {
		return faq.Catalog{}, fmt.Errorf("studentnest: %w", err)
	}
	return cat, nil
}

func openRecordStore(ctx context.Context, cfg *clientConfig) (recorduc.Repository, func(), error) {
	switch cfg.driver {
	case "":
		return nil, func() {}, nil
	case "valkey", "redis":
		if len(cfg.addrs) == 0 || cfg.addrs[0] == "" {
			return nil, nil, errors.New("studentnest: database address required")
		}
		s, err := dbRedis.NewStore(dbRedis.Config{Addrs: cfg.addrs, Password: cfg.password})
		if err != nil {
			return nil, nil, fmt.Errorf("studentnest: create %s store: %w", cfg.driver, err)
		}
		if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, nil, fmt.Errorf("studentnest: database not ready: %w", err)
		}
		return recordrepo.New(s, cfg.keyPrefix), s.Close, nil
	case "sqlite":
		s, err := sqlite.Open(cfg.path)
		if err != nil {
			return nil, nil, fmt.Errorf("studentnest: %w", err)
		}
		repo, err := recordrepo.NewSQL(ctx, s.DB())
		if err != nil {
			s.Close()
			return nil, nil, fmt.Errorf("studentnest: %w", err)
		}
		return repo, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("studentnest: unknown driver %q", cfg.driver)
	}
}

// Close releases the record store, if any.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// Ask resolves a free-text question against the catalog.
func (c *Client) Ask(ctx context.Context, question string) Answer {
	if c.logger != nil {
		ctx = logpkg.ContextWithLogger(ctx, c.logger)
	}
	return answerFromDomain(c.ask.Ask(ctx, question))
}

// Browse lists catalog records containing term (case-insensitive) in the given category.
// An empty category or "all" matches every category.
func (c *Client) Browse(term, category string) []FAQ {
	return faqsFromDomain(c.browse.Filter(term, category))
}

// Get returns the catalog record with the given id.
func (c *Client) Get(id string) (FAQ, error) {
	r, err := c.browse.Get(id)
	if err != nil {
		return FAQ{}, err
	}
	return faqFromDomain(r), nil
}

// Categories lists the catalog categories in first-seen order.
func (c *Client) Categories() []string {
	cats := c.browse.Categories()
	out := make([]string, len(cats))
	for i, cat := range cats {
		out[i] = string(cat)
	}
	return out
}

// Insert stores a new record in collection. Without a record store it returns ErrNotImplemented.
func (c *Client) Insert(ctx context.Context, collection string, fields map[string]string) (Record, error) {
	r, err := c.records.Insert(ctx, collection, fields)
	if err != nil {
		return Record{}, err
	}
	return recordFromDomain(r), nil
}

// SelectAll returns every record in collection, ordered by field when orderBy is non-empty.
func (c *Client) SelectAll(ctx context.Context, collection, orderBy string, desc bool) ([]Record, error) {
	var order *domrec.Order
	if orderBy != "" {
		order = &domrec.Order{Field: orderBy, Desc: desc}
	}
	recs, err := c.records.SelectAll(ctx, collection, order)
	if err != nil {
		return nil, err
	}
	out := make([]Record, len(recs))
	for i, r := range recs {
		out[i] = recordFromDomain(r)
	}
	return out, nil
}
