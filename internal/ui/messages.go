package ui

import (
	"errors"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/nittu/baby-flashcards/internal/model"
)

// errInvalidNumber marks a numeric form field that did not parse
var errInvalidNumber = errors.New("invalid number")

// userMessageKey picks the localized message for an operation error.
// capacityKey names the limit that applies to the failed operation.
func userMessageKey(err error, capacityKey string) string {
	switch {
	case errors.Is(err, errInvalidNumber):
		return KeyInvalidNumber
	case errors.Is(err, model.ErrCapacity):
		return capacityKey
	case errors.Is(err, model.ErrIndex):
		return KeyPlaylistMissing
	case errors.Is(err, model.ErrPersistence):
		return KeySaveFailed
	case errors.Is(err, model.ErrValidation):
		return KeyInvalidValue
	default:
		return KeyUnexpectedError
	}
}

// showError reports err to the user and logs it
func showError(window fyne.Window, localization *Localization, logger *slog.Logger, err error, capacityKey string) {
	logger.Warn("operation failed", "error", err)
	if window == nil {
		return
	}
	dialog.ShowInformation(
		localization.GetText(KeyAppTitle),
		localization.GetText(userMessageKey(err, capacityKey)),
		window,
	)
}

// showToast shows a short-lived message over the window content
func showToast(window fyne.Window, message string) {
	if window == nil {
		return
	}
	popUp := widget.NewPopUp(widget.NewLabel(message), window.Canvas())
	size := window.Canvas().Size()
	popUp.Move(fyne.NewPos((size.Width-popUp.MinSize().Width)/2, size.Height-popUp.MinSize().Height*2))
	popUp.Show()

	go func() {
		<-time.After(ToastAutoHide)
		fyne.Do(popUp.Hide)
	}()
}
