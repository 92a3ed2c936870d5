package composer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblocks/svc/composer"
)

func TestMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"cancelled", composer.ErrCancelled, ""},
		{"nothing to save", composer.ErrNothingToSave, composer.MsgNothingToSave},
		{"nothing to copy", composer.ErrEmptyComposition, composer.MsgNothingToCopy},
		{"storage", errors.Join(composer.ErrStorage, errors.New("disk full")), composer.MsgStorageFailed},
		{"unreachable", errors.Join(composer.ErrStoreUnreachable, errors.New("dial tcp")), composer.MsgStoreUnreachable},
		{"export", errors.Join(composer.ErrExportFailed, errors.New("xclip")), composer.MsgExportFailed},
		{"no sink", composer.ErrNoSinkConfigured, composer.MsgExportFailed},
		{"index", composer.ErrIndexOutOfRange, composer.MsgNoSuchPosition},
		{"block", composer.ErrBlockNotFound, composer.MsgBlockNotFound},
		{"template", composer.ErrTemplateNotFound, composer.MsgTemplateNotFound},
		{"item", composer.ErrItemNotFound, composer.MsgItemNotFound},
		{"not editing", composer.ErrNotEditing, composer.MsgNotEditing},
		{"no dialog", composer.ErrNoTemplateDialog, composer.MsgNoTemplateDialog},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, composer.Message(tt.err))
		})
	}
}

func TestMessage_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.AddBlock(ctx, "")
	assert.Equal(t, composer.MsgEnterBlockText, composer.Message(err))

	_, err = svc.AppendToEmail(ctx, 1)
	require.NoError(t, err)

	err = svc.EditItem(ctx, 0, " ")
	assert.Equal(t, composer.MsgEnterItemText, composer.Message(err))

	_, err = svc.SaveTemplate(ctx, "")
	assert.Equal(t, composer.MsgEnterTemplateName, composer.Message(err))

	_, err = svc.SaveTemplate(ctx, strings.Repeat("é", composer.MaxTemplateNameLength+1))
	assert.Equal(t, composer.MsgTemplateNameTooLong, composer.Message(err))

	_, err = svc.SaveTemplate(ctx, strings.Repeat("é", composer.MaxTemplateNameLength))
	assert.NoError(t, err, "the limit counts characters, not bytes")
}
