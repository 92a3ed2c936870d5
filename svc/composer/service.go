package composer

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/mailblocks/pkg/kvstore"
	"github.com/dmitrymomot/mailblocks/pkg/logger"
	"github.com/dmitrymomot/mailblocks/pkg/sanitizer"
	"github.com/dmitrymomot/mailblocks/pkg/validator"
)

var (
	cleanText = sanitizer.Compose(sanitizer.NormalizeNewlines, sanitizer.Trim)
	cleanName = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine, sanitizer.Trim)
)

// MaxTemplateNameLength caps template names, counted in characters.
const MaxTemplateNameLength = 200

// Field names reported in validator.ValidationErrors.
const (
	FieldBlockText    = "block_text"
	FieldItemText     = "item_text"
	FieldTemplateName = "template_name"
)

// Service holds the block catalog, the template catalog and the email being
// composed. Catalog mutations are written through to the store; the email
// lives in memory only. All methods are safe for concurrent use.
type Service struct {
	mu        sync.Mutex
	blocks    []Block
	templates []Template
	email     []Item

	repo      repository
	ids       IDGenerator
	itemID    ItemIDFunc
	confirm   ConfirmFunc
	observers []Observer
	log       *slog.Logger
}

// NewService loads both catalogs from store, seeding the defaults into an
// empty store. If seeding cannot be written the service is still returned,
// holding the defaults, together with an ErrStorage error.
// Panics if store is nil.
func NewService(ctx context.Context, store kvstore.Store, opts ...ServiceOption) (*Service, error) {
	if store == nil {
		panic("composer: store is required")
	}

	s := &Service{
		repo: repository{
			store: store,
			codec: JSONCodec{},
			keys:  DefaultKeys(),
		},
		ids:     NewClockIDGenerator(nil),
		itemID:  NewItemID,
		confirm: AlwaysConfirm,
		log:     logger.Discard(),
		email:   []Item{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("composer"))
	s.repo.log = s.log

	blocks, templates, err := s.repo.load(ctx)
	if err != nil && blocks == nil {
		return nil, err
	}
	s.blocks, s.templates = blocks, templates

	s.log.DebugContext(ctx, "catalogs loaded",
		logger.Count(len(blocks)),
		slog.Int("templates", len(templates)),
		slog.String("codec", s.repo.codec.Name()),
	)
	return s, err
}

// Ping checks that the store behind the catalogs is reachable.
func (s *Service) Ping(ctx context.Context) error {
	if err := kvstore.Ping(ctx, s.repo.store); err != nil {
		s.log.WarnContext(ctx, "store unreachable", logger.Error(err))
		return errors.Join(ErrStoreUnreachable, err)
	}
	return nil
}

// Reload replaces both catalogs with what the store holds now. The email is
// left alone. On failure the in-memory catalogs are kept.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.Lock()
	blocks, templates, err := s.repo.load(ctx)
	if blocks == nil {
		s.mu.Unlock()
		return err
	}
	s.blocks, s.templates = blocks, templates
	blocksState, templatesState := s.stateLocked(), s.stateLocked()
	s.mu.Unlock()

	s.log.DebugContext(ctx, "catalogs reloaded", logger.Count(len(blocks)), slog.Int("templates", len(templates)))
	s.notify(ctx, Change{Kind: KindBlocks, State: blocksState})
	s.notify(ctx, Change{Kind: KindTemplates, State: templatesState})
	return err
}

// AddBlock appends a custom block with the trimmed text and persists the
// catalog. The block stays in memory even if persisting fails.
func (s *Service) AddBlock(ctx context.Context, text string) (Block, error) {
	text = cleanText(text)
	if err := validator.Apply(validator.Required(FieldBlockText, text)); err != nil {
		return Block{}, errors.Join(ErrValidation, err)
	}

	var block Block
	err := s.mutate(ctx, KindBlocks, func() error {
		block = Block{
			ID:       s.ids.Next(nextBlockFloor(s.blocks)),
			Text:     text,
			Category: CategoryCustom,
		}
		s.blocks = append(s.blocks, block)
		s.log.DebugContext(ctx, "block added", logger.BlockID(block.ID))
		return s.repo.saveBlocks(ctx, s.blocks)
	})
	return block, err
}

// DeleteBlock asks for confirmation, then removes the block and persists the
// catalog. Items already placed in the email are not affected.
func (s *Service) DeleteBlock(ctx context.Context, id int64) error {
	if _, err := s.Block(id); err != nil {
		return err
	}
	if !s.confirm(ctx, PromptDeleteBlock) {
		return ErrCancelled
	}

	return s.mutate(ctx, KindBlocks, func() error {
		i := slices.IndexFunc(s.blocks, func(b Block) bool { return b.ID == id })
		if i < 0 {
			return errSkip(ErrBlockNotFound)
		}
		s.blocks = slices.Delete(s.blocks, i, i+1)
		s.log.DebugContext(ctx, "block deleted", logger.BlockID(id))
		return s.repo.saveBlocks(ctx, s.blocks)
	})
}

// AppendToEmail places a copy of the block at the end of the email.
func (s *Service) AppendToEmail(ctx context.Context, blockID int64) (Item, error) {
	var item Item
	err := s.mutate(ctx, KindEmail, func() error {
		i := slices.IndexFunc(s.blocks, func(b Block) bool { return b.ID == blockID })
		if i < 0 {
			return errSkip(ErrBlockNotFound)
		}
		b := s.blocks[i]
		item = Item{ID: s.itemID(), Text: b.Text, Category: b.Category}
		s.email = append(s.email, item)
		s.log.DebugContext(ctx, "block placed", logger.BlockID(blockID), logger.ItemID(item.ID))
		return nil
	})
	return item, err
}

// RemoveFromEmail removes the item at index; later items shift left.
func (s *Service) RemoveFromEmail(ctx context.Context, index int) error {
	return s.mutate(ctx, KindEmail, func() error {
		if err := checkIndex(index, len(s.email)); err != nil {
			return errSkip(err)
		}
		s.email = slices.Delete(s.email, index, index+1)
		s.log.DebugContext(ctx, "item removed", logger.Index(index))
		return nil
	})
}

// EditItem replaces the text of the item at index. Empty text is rejected
// and leaves the item unchanged.
func (s *Service) EditItem(ctx context.Context, index int, text string) error {
	text = cleanText(text)
	return s.mutate(ctx, KindEmail, func() error {
		if err := checkIndex(index, len(s.email)); err != nil {
			return errSkip(err)
		}
		return s.editLocked(ctx, index, text)
	})
}

// EditItemByID replaces the text of the item with the given id, wherever it
// sits in the email now. It fails with ErrItemNotFound once the item has
// been removed or replaced.
func (s *Service) EditItemByID(ctx context.Context, id, text string) error {
	text = cleanText(text)
	return s.mutate(ctx, KindEmail, func() error {
		index := slices.IndexFunc(s.email, func(it Item) bool { return it.ID == id })
		if id == "" || index < 0 {
			return errSkip(ErrItemNotFound)
		}
		return s.editLocked(ctx, index, text)
	})
}

func (s *Service) editLocked(ctx context.Context, index int, text string) error {
	if err := validator.Apply(validator.Required(FieldItemText, text)); err != nil {
		return errSkip(errors.Join(ErrValidation, err))
	}
	s.email[index].Text = text
	s.log.DebugContext(ctx, "item edited", logger.Index(index), logger.ItemID(s.email[index].ID))
	return nil
}

// MoveItem moves the item at from so that it ends up at position to.
func (s *Service) MoveItem(ctx context.Context, from, to int) error {
	return s.mutate(ctx, KindEmail, func() error {
		if err := errors.Join(checkIndex(from, len(s.email)), checkIndex(to, len(s.email))); err != nil {
			return errSkip(err)
		}
		if from == to {
			return nil
		}
		item := s.email[from]
		s.email = slices.Insert(slices.Delete(s.email, from, from+1), to, item)
		s.log.DebugContext(ctx, "item moved", slog.Int("from", from), slog.Int("to", to))
		return nil
	})
}

// LoadTemplate replaces the email with one fresh item per template line.
func (s *Service) LoadTemplate(ctx context.Context, templateID int64) error {
	return s.mutate(ctx, KindEmail, func() error {
		i := slices.IndexFunc(s.templates, func(t Template) bool { return t.ID == templateID })
		if templateID == 0 || i < 0 {
			return errSkip(ErrTemplateNotFound)
		}
		content := s.templates[i].Content
		email := make([]Item, len(content))
		for j, text := range content {
			email[j] = Item{ID: s.itemID(), Text: text, Category: CategoryTemplate}
		}
		s.email = email
		s.log.DebugContext(ctx, "template loaded", logger.TemplateID(templateID), logger.Count(len(email)))
		return nil
	})
}

// SaveTemplate stores the current item texts under name and persists the
// template catalog.
func (s *Service) SaveTemplate(ctx context.Context, name string) (Template, error) {
	name = cleanName(name)

	var tpl Template
	err := s.mutate(ctx, KindTemplates, func() error {
		if len(s.email) == 0 {
			return errSkip(ErrNothingToSave)
		}
		if err := validator.Apply(
			validator.Required(FieldTemplateName, name),
			validator.MaxRunes(FieldTemplateName, name, MaxTemplateNameLength),
		); err != nil {
			return errSkip(errors.Join(ErrValidation, err))
		}
		tpl = Template{
			ID:      s.ids.Next(nextTemplateFloor(s.templates)),
			Name:    name,
			Content: texts(s.email),
		}
		s.templates = append(s.templates, tpl)
		s.log.DebugContext(ctx, "template saved", logger.TemplateID(tpl.ID), logger.Count(len(tpl.Content)))
		return s.repo.saveTemplates(ctx, s.templates)
	})
	if tpl.ID != 0 {
		tpl = cloneTemplate(tpl)
	}
	return tpl, err
}

// DeleteTemplate asks for confirmation, then removes the template and
// persists the catalog.
func (s *Service) DeleteTemplate(ctx context.Context, id int64) error {
	if _, err := s.Template(id); err != nil {
		return err
	}
	if !s.confirm(ctx, PromptDeleteTemplate) {
		return ErrCancelled
	}

	return s.mutate(ctx, KindTemplates, func() error {
		i := slices.IndexFunc(s.templates, func(t Template) bool { return t.ID == id })
		if i < 0 {
			return errSkip(ErrTemplateNotFound)
		}
		s.templates = slices.Delete(s.templates, i, i+1)
		s.log.DebugContext(ctx, "template deleted", logger.TemplateID(id))
		return s.repo.saveTemplates(ctx, s.templates)
	})
}

// ClearEmail asks for confirmation, then empties the email.
func (s *Service) ClearEmail(ctx context.Context) error {
	if !s.confirm(ctx, PromptClearEmail) {
		return ErrCancelled
	}
	return s.mutate(ctx, KindEmail, func() error {
		s.email = []Item{}
		s.log.DebugContext(ctx, "email cleared")
		return nil
	})
}

// Blocks returns a copy of the block catalog.
func (s *Service) Blocks() []Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneBlocks(s.blocks)
}

// Templates returns a copy of the template catalog.
func (s *Service) Templates() []Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTemplates(s.templates)
}

// Email returns a copy of the current email.
func (s *Service) Email() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.email)
}

// Snapshot returns a copy of the whole state.
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Block looks up a block by id.
func (s *Service) Block(id int64) (Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.blocks {
		if b.ID == id {
			return b, nil
		}
	}
	return Block{}, ErrBlockNotFound
}

// Template looks up a template by id.
func (s *Service) Template(id int64) (Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.templates {
		if t.ID == id {
			return cloneTemplate(t), nil
		}
	}
	return Template{}, ErrTemplateNotFound
}

// skipError marks a failure that happened before any state changed, so no
// observer is notified.
type skipError struct{ err error }

func (e skipError) Error() string { return e.err.Error() }
func (e skipError) Unwrap() error { return e.err }

func errSkip(err error) error { return skipError{err: err} }

// mutate runs fn under the lock and then notifies observers with a snapshot,
// unless fn failed before changing anything.
func (s *Service) mutate(ctx context.Context, kind Kind, fn func() error) error {
	s.mu.Lock()
	err := fn()
	var skip skipError
	if errors.As(err, &skip) {
		s.mu.Unlock()
		return skip.err
	}
	state := s.stateLocked()
	s.mu.Unlock()

	s.notify(ctx, Change{Kind: kind, State: state})
	return err
}

func (s *Service) notify(ctx context.Context, change Change) {
	for _, o := range s.observers {
		o.Notify(ctx, change)
	}
}

func (s *Service) stateLocked() State {
	return State{
		Blocks:    cloneBlocks(s.blocks),
		Templates: cloneTemplates(s.templates),
		Email:     cloneItems(s.email),
	}
}

func checkIndex(i, n int) error {
	if err := validator.Apply(validator.Index("index", i, n)); err != nil {
		return errors.Join(ErrIndexOutOfRange, err)
	}
	return nil
}
