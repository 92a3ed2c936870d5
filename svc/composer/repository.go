package composer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/mailblocks/pkg/kvstore"
	"github.com/dmitrymomot/mailblocks/pkg/logger"
)

// repository maps catalogs onto store keys through a codec.
type repository struct {
	store kvstore.Store
	codec Codec
	keys  Keys
	log   *slog.Logger
}

// load reads both catalogs. When the blocks key is missing the defaults are
// written and returned; a failed seed write still returns the defaults
// together with an ErrStorage error.
func (r *repository) load(ctx context.Context) ([]Block, []Template, error) {
	var blocks []Block
	err := r.read(ctx, r.keys.Blocks, &blocks)
	if errors.Is(err, kvstore.ErrNotFound) {
		return r.seed(ctx)
	}
	if err != nil {
		return nil, nil, err
	}

	var templates []Template
	err = r.read(ctx, r.keys.Templates, &templates)
	switch {
	case errors.Is(err, kvstore.ErrNotFound):
		templates = []Template{}
	case err != nil:
		return nil, nil, err
	}

	return normalizeBlocks(blocks), normalizeTemplates(templates), nil
}

func (r *repository) seed(ctx context.Context) ([]Block, []Template, error) {
	blocks, templates := DefaultBlocks(), DefaultTemplates()
	r.log.InfoContext(ctx, "seeding default catalogs",
		logger.Count(len(blocks)),
		slog.Int("templates", len(templates)),
	)

	err := errors.Join(
		r.saveBlocks(ctx, blocks),
		r.saveTemplates(ctx, templates),
	)
	return blocks, templates, err
}

func (r *repository) saveBlocks(ctx context.Context, blocks []Block) error {
	return r.write(ctx, r.keys.Blocks, normalizeBlocks(blocks))
}

func (r *repository) saveTemplates(ctx context.Context, templates []Template) error {
	return r.write(ctx, r.keys.Templates, normalizeTemplates(templates))
}

func (r *repository) read(ctx context.Context, key string, v any) error {
	data, err := r.store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return err
		}
		r.log.ErrorContext(ctx, "failed to load catalog", logger.StoreKey(key), logger.Error(err))
		return errors.Join(ErrStorage, err)
	}
	if err := r.codec.Unmarshal(data, v); err != nil {
		r.log.ErrorContext(ctx, "stored catalog is unreadable", logger.StoreKey(key), logger.Error(err))
		return errors.Join(ErrStorage, fmt.Errorf("decode %s as %s: %w", key, r.codec.Name(), err))
	}
	return nil
}

func (r *repository) write(ctx context.Context, key string, v any) error {
	data, err := r.codec.Marshal(v)
	if err != nil {
		return errors.Join(ErrStorage, fmt.Errorf("encode %s as %s: %w", key, r.codec.Name(), err))
	}
	if err := r.store.Save(ctx, key, data); err != nil {
		r.log.ErrorContext(ctx, "failed to save catalog", logger.StoreKey(key), logger.Error(err))
		return errors.Join(ErrStorage, err)
	}
	r.log.DebugContext(ctx, "catalog saved", logger.StoreKey(key), slog.Int("bytes", len(data)))
	return nil
}

// normalizeBlocks fills the default category and turns nil into an empty
// slice so empty catalogs encode as [] rather than null.
func normalizeBlocks(blocks []Block) []Block {
	out := cloneBlocks(blocks)
	for i := range out {
		if out[i].Category == "" {
			out[i].Category = CategoryCustom
		}
	}
	return out
}

func normalizeTemplates(templates []Template) []Template {
	return cloneTemplates(templates)
}
