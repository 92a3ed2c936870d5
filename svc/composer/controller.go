package composer

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/dmitrymomot/mailblocks/pkg/clipboard"
	"github.com/dmitrymomot/mailblocks/pkg/sanitizer"
)

// Controller turns view intents into service calls and keeps the state of
// the two dialogs a view shows: the item text editor and the template name
// prompt. Every intent returns an error suitable for Message.
type Controller struct {
	svc  *Service
	sink clipboard.Sink

	mu         sync.Mutex
	editing    string
	isEditing  bool
	saveDialog bool
}

// NewController wires a controller to svc. sink receives RequestedCopy
// output and may be nil, in which case copying fails with
// ErrNoSinkConfigured.
func NewController(svc *Service, sink clipboard.Sink) *Controller {
	if svc == nil {
		panic("composer: service is required")
	}
	return &Controller{svc: svc, sink: sink}
}

// Service returns the underlying service.
func (c *Controller) Service() *Service {
	return c.svc
}

// AddedBlockText adds a block to the catalog.
func (c *Controller) AddedBlockText(ctx context.Context, text string) (Block, error) {
	return c.svc.AddBlock(ctx, text)
}

// DeletedBlock removes a block from the catalog after confirmation.
func (c *Controller) DeletedBlock(ctx context.Context, id int64) error {
	return c.svc.DeleteBlock(ctx, id)
}

// DroppedBlock places a copy of the block at the end of the email.
func (c *Controller) DroppedBlock(ctx context.Context, id int64) (Item, error) {
	return c.svc.AppendToEmail(ctx, id)
}

// RemovedItem removes the item at index from the email.
func (c *Controller) RemovedItem(ctx context.Context, index int) error {
	return c.svc.RemoveFromEmail(ctx, index)
}

// MovedItem reorders the email.
func (c *Controller) MovedItem(ctx context.Context, from, to int) error {
	return c.svc.MoveItem(ctx, from, to)
}

// EditedItem opens the editor on the item at index and returns its text.
// The editor follows the item, not the position, so later moves keep it on
// the same item.
func (c *Controller) EditedItem(index int) (string, error) {
	email := c.svc.Email()
	if err := checkIndex(index, len(email)); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.editing, c.isEditing = email[index].ID, true
	return email[index].Text, nil
}

// Editing reports the current index of the item being edited. The index is
// -1 when the item has left the email since the editor was opened.
func (c *Controller) Editing() (int, bool) {
	c.mu.Lock()
	id, editing := c.editing, c.isEditing
	c.mu.Unlock()

	if !editing {
		return 0, false
	}
	return slices.IndexFunc(c.svc.Email(), func(it Item) bool { return it.ID == id }), true
}

// CommitEdit applies text to the item being edited and closes the editor.
// Blank text closes the editor without touching the item. It fails with
// ErrItemNotFound when the item was removed in the meantime.
func (c *Controller) CommitEdit(ctx context.Context, text string) error {
	c.mu.Lock()
	id, editing := c.editing, c.isEditing
	c.editing, c.isEditing = "", false
	c.mu.Unlock()

	if !editing {
		return ErrNotEditing
	}
	if sanitizer.Trim(text) == "" {
		return nil
	}
	return c.svc.EditItemByID(ctx, id, text)
}

// CancelEdit closes the editor.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editing, c.isEditing = "", false
}

// SelectedTemplate replaces the email with the template's lines. Id 0 is the
// placeholder entry of a template picker and does nothing.
func (c *Controller) SelectedTemplate(ctx context.Context, id int64) error {
	if id == 0 {
		return nil
	}
	return c.svc.LoadTemplate(ctx, id)
}

// DeletedTemplate removes a template after confirmation.
func (c *Controller) DeletedTemplate(ctx context.Context, id int64) error {
	return c.svc.DeleteTemplate(ctx, id)
}

// RequestedSaveTemplate opens the name prompt, or fails with
// ErrNothingToSave when the email is empty.
func (c *Controller) RequestedSaveTemplate() error {
	if len(c.svc.Email()) == 0 {
		return ErrNothingToSave
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.saveDialog = true
	return nil
}

// SaveDialogOpen reports whether the name prompt is open.
func (c *Controller) SaveDialogOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveDialog
}

// ConfirmedSaveTemplate saves the email under name. A missing or too long
// name keeps the prompt open so the user can retry; any other outcome
// closes it.
func (c *Controller) ConfirmedSaveTemplate(ctx context.Context, name string) (Template, error) {
	if !c.SaveDialogOpen() {
		return Template{}, ErrNoTemplateDialog
	}

	tpl, err := c.svc.SaveTemplate(ctx, name)
	if errors.Is(err, ErrValidation) {
		return tpl, err
	}

	c.CancelSaveTemplate()
	return tpl, err
}

// CancelSaveTemplate closes the name prompt.
func (c *Controller) CancelSaveTemplate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saveDialog = false
}

// RequestedCopy writes the composed email to the configured sink.
func (c *Controller) RequestedCopy(ctx context.Context) (string, error) {
	return c.svc.Copy(ctx, c.sink)
}

// RequestedClear empties the email after confirmation.
func (c *Controller) RequestedClear(ctx context.Context) error {
	return c.svc.ClearEmail(ctx)
}

// RequestedStatus checks that the store is reachable.
func (c *Controller) RequestedStatus(ctx context.Context) error {
	return c.svc.Ping(ctx)
}

// RequestedReload re-reads the catalogs from the store.
func (c *Controller) RequestedReload(ctx context.Context) error {
	return c.svc.Reload(ctx)
}
