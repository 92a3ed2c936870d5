package composer

import (
	"errors"

	"github.com/dmitrymomot/mailblocks/pkg/validator"
)

// User-facing messages, in the language of the stored content.
const (
	MsgEnterBlockText      = "Voer tekst in voor het nieuwe blok"
	MsgEnterItemText       = "Voer tekst in voor dit blok"
	MsgEnterTemplateName   = "Voer een naam in voor het template"
	MsgTemplateNameTooLong = "De naam van het template is te lang"
	MsgNothingToSave       = "Er is geen e-mail om op te slaan als template"
	MsgNothingToCopy       = "Er is geen e-mail om te kopiëren"
	MsgTemplateSaved       = "Template opgeslagen!"
	MsgCopied              = "E-mail gekopieerd naar klembord!"
	MsgEmptyCanvas         = "Sleep blokken hierheen om je e-mail te bouwen"
	MsgChooseTemplate      = "Kies een template..."
	MsgStorageFailed       = "Opslaan is mislukt, de wijziging staat alleen in het geheugen"
	MsgStoreUnreachable    = "De opslag is niet bereikbaar"
	MsgStoreReachable      = "De opslag is bereikbaar"
	MsgExportFailed        = "Kopiëren is mislukt"
	MsgBlockNotFound       = "Dit blok bestaat niet (meer)"
	MsgTemplateNotFound    = "Dit template bestaat niet (meer)"
	MsgNoSuchPosition      = "Deze positie bestaat niet in de e-mail"
	MsgItemNotFound        = "Dit blok staat niet meer in de e-mail"
	MsgNotEditing          = "Er wordt geen blok bewerkt"
	MsgNoTemplateDialog    = "Klik eerst op opslaan als template"
)

// Message returns the text to show the user for an error returned by the
// service or the controller. It returns "" for nil and for ErrCancelled.
func Message(err error) string {
	switch {
	case err == nil, errors.Is(err, ErrCancelled):
		return ""
	case errors.Is(err, ErrNothingToSave):
		return MsgNothingToSave
	case errors.Is(err, ErrEmptyComposition):
		return MsgNothingToCopy
	case errors.Is(err, ErrStoreUnreachable):
		return MsgStoreUnreachable
	case errors.Is(err, ErrStorage):
		return MsgStorageFailed
	case errors.Is(err, ErrExportFailed), errors.Is(err, ErrNoSinkConfigured):
		return MsgExportFailed
	case errors.Is(err, ErrIndexOutOfRange):
		return MsgNoSuchPosition
	case errors.Is(err, ErrBlockNotFound):
		return MsgBlockNotFound
	case errors.Is(err, ErrTemplateNotFound):
		return MsgTemplateNotFound
	case errors.Is(err, ErrItemNotFound):
		return MsgItemNotFound
	case errors.Is(err, ErrNotEditing):
		return MsgNotEditing
	case errors.Is(err, ErrNoTemplateDialog):
		return MsgNoTemplateDialog
	case errors.Is(err, ErrValidation):
		return validationMessage(validator.ExtractValidationErrors(err), err)
	default:
		return err.Error()
	}
}

func validationMessage(errs validator.ValidationErrors, err error) string {
	switch {
	case errs.Has(FieldBlockText):
		return MsgEnterBlockText
	case errs.Has(FieldItemText):
		return MsgEnterItemText
	case errs.Has(FieldTemplateName):
		for _, e := range errs.GetErrors(FieldTemplateName) {
			if e.TranslationKey == "validation.max_length" {
				return MsgTemplateNameTooLong
			}
		}
		return MsgEnterTemplateName
	default:
		return err.Error()
	}
}
